package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapError_UniqueViolation(t *testing.T) {
	tests := []struct {
		name   string
		pgErr  *pgconn.PgError
		column string
	}{
		{
			name: "column from detail",
			pgErr: &pgconn.PgError{
				Code:           "23505",
				TableName:      "users",
				ConstraintName: "users_email_key",
				Detail:         "Key (email)=(u1@example.com) already exists.",
			},
			column: "email",
		},
		{
			name: "column from constraint name",
			pgErr: &pgconn.PgError{
				Code:           "23505",
				TableName:      "users",
				ConstraintName: "users_email_key",
			},
			column: "email",
		},
		{
			name: "explicit column name",
			pgErr: &pgconn.PgError{
				Code:       "23505",
				ColumnName: "email",
			},
			column: "email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := MapError(fmt.Errorf("insert: %w", tt.pgErr))

			var uv *UniqueViolationError
			require.ErrorAs(t, err, &uv)
			assert.Equal(t, tt.column, uv.Column)
			assert.True(t, uv.On("email"))
			assert.False(t, uv.On("name"))
			assert.True(t, IsUniqueViolation(err, "email"))

			// The driver error stays reachable.
			var pgErr *pgconn.PgError
			assert.ErrorAs(t, err, &pgErr)
		})
	}
}

func TestMapError_DoesNotDoubleWrap(t *testing.T) {
	first := MapError(&pgconn.PgError{Code: "23505", ColumnName: "email"})
	assert.Same(t, first, MapError(first))
}

func TestMapError_NoRows(t *testing.T) {
	err := MapError(pgx.ErrNoRows)
	assert.ErrorIs(t, err, ErrNoRows)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestMapError_PassThrough(t *testing.T) {
	assert.NoError(t, MapError(nil))

	plain := errors.New("connection refused")
	assert.Same(t, plain, MapError(plain))

	fk := &pgconn.PgError{Code: "23503"}
	assert.Same(t, error(fk), MapError(fk))
	assert.False(t, IsUniqueViolation(fk, "email"))
}
