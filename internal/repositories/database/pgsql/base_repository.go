package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/personal_os/internal/apperrors"
	portsrepo "github.com/SscSPs/personal_os/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is the query surface shared by *pgxpool.Pool and pgx.Tx, so the same
// repository code runs standalone or inside a unit of work.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
	// DB is the pool, or the open transaction when bound to a unit of work.
	DB DBTX
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to begin transaction: %v", apperrors.ErrInternal, err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: failed to commit transaction: %v", apperrors.ErrInternal, err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("%w: failed to rollback transaction: %v", apperrors.ErrInternal, err)
	}
	return nil
}

// unitOfWork opens one pgx.Tx per WithinTx call and binds a fresh
// RepositoryProvider to it.
type unitOfWork struct {
	BaseRepository
}

func (u *unitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, repos portsrepo.RepositoryProvider) error) (err error) {
	tx, err := u.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			_ = u.Rollback(context.WithoutCancel(ctx), tx)
			panic(p)
		}
	}()

	if err := fn(ctx, newProvider(u.Pool, tx, true)); err != nil {
		if rbErr := u.Rollback(context.WithoutCancel(ctx), tx); rbErr != nil {
			return errors.Join(err, rbErr)
		}
		return err
	}
	return u.Commit(ctx, tx)
}

// joinedUnit runs nested units of work on the enclosing transaction.
type joinedUnit struct {
	pool *pgxpool.Pool
	tx   pgx.Tx
}

func (j joinedUnit) WithinTx(ctx context.Context, fn func(ctx context.Context, repos portsrepo.RepositoryProvider) error) error {
	return fn(ctx, newProvider(j.pool, j.tx, true))
}

// isUniqueViolation reports a Postgres 23505 error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// isForeignKeyViolation reports a Postgres 23503 error.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
