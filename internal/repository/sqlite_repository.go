package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/cartsave-demo/internal/domain"
	"github.com/nikolayk812/cartsave-demo/internal/migrations"
	"github.com/nikolayk812/cartsave-demo/internal/port"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"
)

const sqlitePragmas = "_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"

type sqliteRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLite opens the database file at path and applies the schema.
func NewSQLite(ctx context.Context, path string) (port.CartRepository, error) {
	if path == "" {
		return nil, fmt.Errorf("path is empty")
	}

	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}

	sqlDB, err := sql.Open("sqlite", path+sep+sqlitePragmas)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if _, err := sqlDB.ExecContext(ctx, migrations.SQLite); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &sqliteRepository{db: sqlDB, now: time.Now}, nil
}

func (r *sqliteRepository) Save(ctx context.Context, cart *domain.Cart, items ...*domain.Item) (txErr error) {
	if cart == nil {
		return fmt.Errorf("cart is nil")
	}

	logger := zerolog.Ctx(ctx)

	conn, err := r.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("db.Conn: %w", err)
	}
	defer func() {
		_ = conn.Close()
		logger.Debug().Msg("session released")
	}()
	logger.Debug().Msg("session acquired")

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("conn.BeginTx: %w", err)
	}
	defer func() {
		if txErr != nil {
			rollbackErr := tx.Rollback()
			if rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
				txErr = errors.Join(txErr, fmt.Errorf("tx.Rollback: %w", rollbackErr))
			}
			logger.Debug().Msg("transaction rolled back")
		}
	}()

	createdAt := r.now().UTC().Truncate(time.Millisecond)

	cartID := uuid.New()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO carts (id, name, total, created_at) VALUES (?, ?, ?, ?)`,
		cartID.String(), cart.Name, cart.Total.String(), createdAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("insert cart: %w", err)
	}

	itemIDs := make([]uuid.UUID, len(items))
	for i, item := range items {
		if item == nil {
			return fmt.Errorf("item[%d] is nil", i)
		}

		var cartCol sql.NullString
		if ref := cartRef(item, cart, cartID); ref.Valid {
			cartCol = sql.NullString{String: ref.UUID.String(), Valid: true}
		}

		itemIDs[i] = uuid.New()
		_, err = tx.ExecContext(ctx,
			`INSERT INTO items (id, product_code, price, quantity, cart_id, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
			itemIDs[i].String(), item.ProductCode, item.Price.String(), item.Quantity, cartCol, createdAt.UnixMilli())
		if err != nil {
			return fmt.Errorf("insert item[%s]: %w", item.ProductCode, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit: %w", err)
	}
	logger.Debug().Msg("transaction committed")

	cart.ID = cartID
	cart.CreatedAt = createdAt
	for i, item := range items {
		item.ID = itemIDs[i]
		item.CreatedAt = createdAt
	}

	return nil
}

func (r *sqliteRepository) GetCart(ctx context.Context, id uuid.UUID) (*domain.Cart, error) {
	var (
		cart      = &domain.Cart{ID: id}
		total     string
		createdAt int64
	)

	err := r.db.QueryRowContext(ctx,
		`SELECT name, total, created_at FROM carts WHERE id = ?`, id.String()).
		Scan(&cart.Name, &total, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCartNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select cart: %w", err)
	}

	if cart.Total, err = decimal.NewFromString(total); err != nil {
		return nil, fmt.Errorf("total[%s] is not valid: %w", total, err)
	}
	cart.CreatedAt = time.UnixMilli(createdAt).UTC()

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, product_code, price, quantity, created_at FROM items WHERE cart_id = ? ORDER BY rowid`, id.String())
	if err != nil {
		return nil, fmt.Errorf("select items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		item, err := scanSQLiteItem(rows, cart)
		if err != nil {
			return nil, fmt.Errorf("scanSQLiteItem: %w", err)
		}
		cart.AddItem(item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return cart, nil
}

func (r *sqliteRepository) CountCarts(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM carts`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count carts: %w", err)
	}

	return count, nil
}

func (r *sqliteRepository) Close() error {
	return r.db.Close()
}

func scanSQLiteItem(rows *sql.Rows, cart *domain.Cart) (*domain.Item, error) {
	var (
		item      = &domain.Item{Cart: cart}
		id        string
		price     string
		createdAt int64
		err       error
	)

	if err := rows.Scan(&id, &item.ProductCode, &price, &item.Quantity, &createdAt); err != nil {
		return nil, err
	}

	if item.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("id[%s] is not valid: %w", id, err)
	}
	if item.Price, err = decimal.NewFromString(price); err != nil {
		return nil, fmt.Errorf("price[%s] is not valid: %w", price, err)
	}
	item.CreatedAt = time.UnixMilli(createdAt).UTC()

	return item, nil
}
