package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"usersvc/internal/db"
	dom "usersvc/internal/domain/user"
	"usersvc/internal/logging"
)

type UserRepository struct {
	pool   db.Pool
	logger logging.Logger
}

func NewUserRepository(pool db.Pool, logger logging.Logger) *UserRepository {
	return &UserRepository{
		pool:   pool,
		logger: logger.With("component", "user_repo"),
	}
}

var _ dom.Repository = (*UserRepository)(nil)

func (r *UserRepository) List(ctx context.Context) ([]dom.User, error) {
	users := make([]dom.User, 0)

	err := r.pool.WithConn(ctx, func(ctx context.Context, conn db.Conn) error {
		query, args := listUsersQuery()
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var u dom.User
			if err := scanUser(rows, &u); err != nil {
				return err
			}
			users = append(users, u)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*dom.User, error) {
	var u dom.User

	err := r.pool.WithConn(ctx, func(ctx context.Context, conn db.Conn) error {
		query, args := getUserQuery(id)
		return scanUser(conn.QueryRow(ctx, query, args...), &u)
	})
	if err != nil {
		if errors.Is(err, db.ErrNoRows) {
			return nil, dom.ErrNotFound
		}
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return &u, nil
}

// Create inserts u and fills in the storage-assigned fields.
func (r *UserRepository) Create(ctx context.Context, u *dom.User) error {
	err := r.pool.WithConn(ctx, func(ctx context.Context, conn db.Conn) error {
		query, args := insertUserQuery(u.Name, u.Email)
		return scanUser(conn.QueryRow(ctx, query, args...), u)
	})
	if err != nil {
		if db.IsUniqueViolation(err, dom.ColumnEmail) {
			return dom.ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// Update locks the row, merges p into it and writes only the supplied columns.
func (r *UserRepository) Update(ctx context.Context, id int64, p dom.Patch) (*dom.User, error) {
	var updated dom.User

	err := r.pool.WithTx(ctx, func(ctx context.Context, tx db.Conn) error {
		var prior dom.User
		query, args := lockUserQuery(id)
		if err := scanUser(tx.QueryRow(ctx, query, args...), &prior); err != nil {
			return err
		}

		merged, set := dom.Plan(prior, p)
		if len(set) == 0 {
			updated = merged
			return nil
		}

		query, args = updateUserQuery(id, set)
		// No row here means it vanished after the existence check.
		return scanUser(tx.QueryRow(ctx, query, args...), &updated)
	})
	if err != nil {
		switch {
		case errors.Is(err, db.ErrNoRows):
			return nil, dom.ErrNotFound
		case db.IsUniqueViolation(err, dom.ColumnEmail):
			return nil, dom.ErrEmailTaken
		}
		return nil, fmt.Errorf("update user %d: %w", id, err)
	}
	return &updated, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	var affected int64

	err := r.pool.WithConn(ctx, func(ctx context.Context, conn db.Conn) error {
		query, args := deleteUserQuery(id)
		tag, err := conn.Exec(ctx, query, args...)
		if err != nil {
			return err
		}
		affected = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	if affected == 0 {
		return dom.ErrNotFound
	}
	return nil
}

// scanUser is the single place that knows the column order of userColumns.
func scanUser(row pgx.Row, u *dom.User) error {
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt); err != nil {
		return db.MapError(err)
	}
	return nil
}
