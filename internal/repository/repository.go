package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/cartsave-demo/internal/db"
	"github.com/nikolayk812/cartsave-demo/internal/domain"
	"github.com/nikolayk812/cartsave-demo/internal/migrations"
	"github.com/nikolayk812/cartsave-demo/internal/port"
)

var ErrCartNotFound = errors.New("cart not found")

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Open connects to the store named by driver. The returned repository owns
// the underlying pool or database handle.
func Open(ctx context.Context, driver, source string) (port.CartRepository, error) {
	switch driver {
	case DriverPostgres:
		pool, err := pgxpool.New(ctx, source)
		if err != nil {
			return nil, fmt.Errorf("pgxpool.New: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("pool.Ping: %w", err)
		}
		if _, err := pool.Exec(ctx, migrations.Postgres); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}

		return &cartRepository{q: db.New(pool), pool: pool, ownsPool: true}, nil
	case DriverSQLite:
		return NewSQLite(ctx, source)
	default:
		return nil, fmt.Errorf("driver[%s] is not supported", driver)
	}
}

// cartRef resolves the cart_id stored for item. An item pointing at the cart
// being saved gets its freshly generated ID; a nil back-reference stays NULL.
func cartRef(item *domain.Item, saving *domain.Cart, savingID uuid.UUID) uuid.NullUUID {
	switch {
	case item.Cart == nil:
		return uuid.NullUUID{}
	case item.Cart == saving:
		return uuid.NullUUID{UUID: savingID, Valid: true}
	default:
		return uuid.NullUUID{UUID: item.Cart.ID, Valid: true}
	}
}
