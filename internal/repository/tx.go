package repository

import (
	"context"
	"errors"
	"fmt"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/cartsave-demo/internal/db"
	"github.com/rs/zerolog"
)

func withTx[T any](ctx context.Context, pool *pgxpool.Pool, q *db.Queries, fn func(q *db.Queries) (T, error)) (_ T, txErr error) {
	var zero T

	// If we're already in a transaction (pool is nil), just use the existing queries
	if pool == nil {
		return fn(q)
	}

	logger := zerolog.Ctx(ctx)

	// The acquired connection is the session; it goes back to the pool on every path
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return zero, fmt.Errorf("pool.Acquire: %w", err)
	}
	defer func() {
		conn.Release()
		logger.Debug().Msg("session released")
	}()
	logger.Debug().Msg("session acquired")

	tx, err := conn.Begin(ctx)
	if err != nil {
		return zero, fmt.Errorf("conn.Begin: %w", err)
	}

	defer func() {
		if txErr != nil {
			rollbackErr := tx.Rollback(ctx)
			if rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				txErr = errors.Join(txErr, fmt.Errorf("tx.Rollback: %w", rollbackErr))
			}
			logger.Debug().Msg("transaction rolled back")
		}
	}()

	result, err := fn(q.WithTx(tx))
	if err != nil {
		return zero, err
	}

	if err := tx.Commit(ctx); err != nil {
		return zero, fmt.Errorf("tx.Commit: %w", err)
	}
	logger.Debug().Msg("transaction committed")

	return result, nil
}
