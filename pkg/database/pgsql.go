package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPgxPool creates a new PostgreSQL connection pool and verifies it with a ping.
func NewPgxPool(ctx context.Context, databaseURL string, logger *slog.Logger) (*pgxpool.Pool, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL cannot be empty")
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config from URL: %w", err)
	}
	config.ConnConfig.ConnectTimeout = 10 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Successfully connected to PostgreSQL database",
		slog.String("host", config.ConnConfig.Host),
		slog.String("database", config.ConnConfig.Database))
	return pool, nil
}

// ClosePgxPool closes the PostgreSQL connection pool.
func ClosePgxPool(pool *pgxpool.Pool, logger *slog.Logger) {
	if pool != nil {
		pool.Close()
		logger.Info("PostgreSQL connection pool closed")
	}
}

// optionalColumns are added on startup for databases created before the
// column existed. Failures are logged and ignored.
var optionalColumns = []string{
	`ALTER TABLE finance_transactions ADD COLUMN IF NOT EXISTS payment_mode VARCHAR(40)`,
}

// EnsureOptionalColumns applies best-effort schema additions.
func EnsureOptionalColumns(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) {
	for _, stmt := range optionalColumns {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			logger.Warn("Optional schema step failed", slog.String("statement", stmt), slog.String("error", err.Error()))
		}
	}
}
