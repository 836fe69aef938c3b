package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"usersvc/internal/config"
	"usersvc/internal/logging"
)

// Conn is the statement surface shared by pooled connections and transactions.
type Conn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ConnFunc runs against a connection that is only valid for the duration of the call.
type ConnFunc func(ctx context.Context, conn Conn) error

// Pool hands out scoped connections. *Client is the production implementation.
type Pool interface {
	Transactor
	WithConn(ctx context.Context, fn ConnFunc) error
}

type Client struct {
	pool   *pgxpool.Pool
	logger logging.Logger
}

var _ Pool = (*Client)(nil)

// NewClient creates a bounded pgx connection pool and verifies connectivity.
func NewClient(ctx context.Context, cfg config.PostgresConfig, logger logging.Logger) (*Client, error) {
	logger = logger.With("component", "db_client")

	pcfg, err := pgxpool.ParseConfig(cfg.EffectiveDSN())
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}
	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		pcfg.MinConns = cfg.MinConns
	}
	if cfg.MaxConnLifetime > 0 {
		pcfg.MaxConnLifetime = cfg.MaxConnLifetime
	}
	if cfg.MaxConnIdleTime > 0 {
		pcfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	}
	if cfg.HealthCheckPeriod > 0 {
		pcfg.HealthCheckPeriod = cfg.HealthCheckPeriod
	}
	if cfg.LogQueries {
		pcfg.ConnConfig.Tracer = newQueryTracer(logger)
	}

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}

	logger.Info("postgres pool ready",
		"max_conns", pcfg.MaxConns,
		"host", pcfg.ConnConfig.Host,
		"database", pcfg.ConnConfig.Database,
	)

	return &Client{pool: pool, logger: logger}, nil
}

// WithConn acquires one connection, runs fn and releases the connection on
// every exit path. Acquisition blocks until a connection frees up or ctx ends.
// Errors returned by fn pass through MapError.
func (c *Client) WithConn(ctx context.Context, fn ConnFunc) error {
	conn, err := c.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	return MapError(fn(ctx, conn))
}

// Close closes the pool, waiting for acquired connections to be released.
func (c *Client) Close() {
	c.pool.Close()
}

// Ping is used by health checks.
func (c *Client) Ping(ctx context.Context) error {
	return c.pool.Ping(ctx)
}

// PoolStats is a point-in-time snapshot of pool usage.
type PoolStats struct {
	MaxConns      int32 `json:"max_conns"`
	TotalConns    int32 `json:"total_conns"`
	AcquiredConns int32 `json:"acquired_conns"`
	IdleConns     int32 `json:"idle_conns"`
}

func (c *Client) Stats() PoolStats {
	s := c.pool.Stat()
	return PoolStats{
		MaxConns:      s.MaxConns(),
		TotalConns:    s.TotalConns(),
		AcquiredConns: s.AcquiredConns(),
		IdleConns:     s.IdleConns(),
	}
}
