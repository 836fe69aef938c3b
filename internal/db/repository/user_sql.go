package repository

import (
	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	dom "usersvc/internal/domain/user"
)

const (
	usersTable      = "users"
	columnID        = "id"
	columnCreatedAt = "created_at"
)

var userColumns = []string{columnID, dom.ColumnName, dom.ColumnEmail, columnCreatedAt}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.Postgres)
}

func listUsersQuery() (string, []any) {
	return builder().
		Select(userColumns...).
		From(entsql.Table(usersTable)).
		OrderBy(columnID).
		Query()
}

func getUserQuery(id int64) (string, []any) {
	return builder().
		Select(userColumns...).
		From(entsql.Table(usersTable)).
		Where(entsql.EQ(columnID, id)).
		Query()
}

// lockUserQuery is getUserQuery with a row lock held until the transaction ends.
func lockUserQuery(id int64) (string, []any) {
	return builder().
		Select(userColumns...).
		From(entsql.Table(usersTable)).
		Where(entsql.EQ(columnID, id)).
		ForUpdate().
		Query()
}

func insertUserQuery(name, email string) (string, []any) {
	return builder().
		Insert(usersTable).
		Columns(dom.ColumnName, dom.ColumnEmail).
		Values(name, email).
		Returning(userColumns...).
		Query()
}

// updateUserQuery renders the planned assignments. set must not be empty.
func updateUserQuery(id int64, set []dom.Assignment) (string, []any) {
	u := builder().Update(usersTable)
	for _, a := range set {
		u = u.Set(a.Column, a.Value)
	}
	return u.
		Where(entsql.EQ(columnID, id)).
		Returning(userColumns...).
		Query()
}

func deleteUserQuery(id int64) (string, []any) {
	return builder().
		Delete(usersTable).
		Where(entsql.EQ(columnID, id)).
		Query()
}
