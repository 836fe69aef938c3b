package db

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE unique_violation.
const codeUniqueViolation = "23505"

// ErrNoRows is returned when a single-row query matched nothing.
var ErrNoRows = errors.New("db: no rows")

// UniqueViolationError reports that a write collided with a unique constraint.
type UniqueViolationError struct {
	Table      string
	Constraint string
	Column     string
	Cause      error
}

func (e *UniqueViolationError) Error() string {
	return fmt.Sprintf("db: unique violation on %s.%s (%s): %v", e.Table, e.Column, e.Constraint, e.Cause)
}

func (e *UniqueViolationError) Unwrap() error { return e.Cause }

// On reports whether the violated constraint covers column.
func (e *UniqueViolationError) On(column string) bool {
	return e.Column == column
}

// IsUniqueViolation reports whether err is a unique violation on column.
func IsUniqueViolation(err error, column string) bool {
	var uv *UniqueViolationError
	return errors.As(err, &uv) && uv.On(column)
}

// MapError translates pgx driver errors into the package's tagged errors.
// Errors it does not recognise are returned unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	// Already mapped; do not double-wrap.
	var uv *UniqueViolationError
	if errors.As(err, &uv) || errors.Is(err, ErrNoRows) {
		return err
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %w", ErrNoRows, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation {
		return &UniqueViolationError{
			Table:      pgErr.TableName,
			Constraint: pgErr.ConstraintName,
			Column:     violatedColumn(pgErr),
			Cause:      err,
		}
	}

	return err
}

// violatedColumn reads the column from the detail line
// ("Key (email)=(a@b) already exists.") and falls back to the
// <table>_<column>_key constraint naming Postgres uses by default.
func violatedColumn(e *pgconn.PgError) string {
	if e.ColumnName != "" {
		return e.ColumnName
	}
	if _, rest, ok := strings.Cut(e.Detail, "Key ("); ok {
		if col, _, ok := strings.Cut(rest, ")="); ok && !strings.Contains(col, ",") {
			return col
		}
	}
	name := strings.TrimSuffix(e.ConstraintName, "_key")
	if e.TableName != "" {
		name = strings.TrimPrefix(name, e.TableName+"_")
	}
	return name
}
