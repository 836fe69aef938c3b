package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

type TxFunc func(ctx context.Context, tx Conn) error

// WithTx runs fn in a transaction on a single acquired connection.
// The connection is released after commit or rollback.
func (c *Client) WithTx(ctx context.Context, fn TxFunc) error {
	conn, err := c.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	tx, err := conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("start tx: %w", err)
	}

	// If fn panics, rollback before the connection goes back to the pool.
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(context.WithoutCancel(ctx))
			panic(p)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(context.WithoutCancel(ctx)); rbErr != nil {
			return fmt.Errorf("tx rollback: %v (original error: %w)", rbErr, MapError(err))
		}
		return MapError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("tx commit: %w", MapError(err))
	}
	return nil
}
