package repository

import (
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/cartsave-demo/internal/db"
	"github.com/nikolayk812/cartsave-demo/internal/domain"
	"github.com/nikolayk812/cartsave-demo/internal/port"
)

type cartRepository struct {
	q        *db.Queries
	pool     *pgxpool.Pool
	ownsPool bool
}

func NewCart(pool *pgxpool.Pool) port.CartRepository {
	return &cartRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewCartWithTx(tx pgx.Tx) port.CartRepository {
	return &cartRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

type savedRows struct {
	cart  db.InsertCartRow
	items []db.InsertItemRow
}

func (r *cartRepository) Save(ctx context.Context, cart *domain.Cart, items ...*domain.Item) error {
	if cart == nil {
		return fmt.Errorf("cart is nil")
	}

	saved, err := withTx(ctx, r.pool, r.q, func(q *db.Queries) (savedRows, error) {
		var rows savedRows

		cartRow, err := q.InsertCart(ctx, db.InsertCartParams{
			Name:  cart.Name,
			Total: cart.Total,
		})
		if err != nil {
			return savedRows{}, fmt.Errorf("q.InsertCart: %w", err)
		}
		rows.cart = cartRow

		for i, item := range items {
			if item == nil {
				return savedRows{}, fmt.Errorf("item[%d] is nil", i)
			}

			itemRow, err := q.InsertItem(ctx, db.InsertItemParams{
				ProductCode: item.ProductCode,
				Price:       item.Price,
				Quantity:    item.Quantity,
				CartID:      cartRef(item, cart, cartRow.ID),
			})
			if err != nil {
				return savedRows{}, fmt.Errorf("q.InsertItem[%s]: %w", item.ProductCode, err)
			}
			rows.items = append(rows.items, itemRow)
		}

		return rows, nil
	})
	if err != nil {
		return err
	}

	cart.ID = saved.cart.ID
	cart.CreatedAt = saved.cart.CreatedAt
	for i, item := range items {
		item.ID = saved.items[i].ID
		item.CreatedAt = saved.items[i].CreatedAt
	}

	return nil
}

func (r *cartRepository) GetCart(ctx context.Context, id uuid.UUID) (*domain.Cart, error) {
	dbCart, err := r.q.GetCart(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCartNotFound
		}
		return nil, fmt.Errorf("q.GetCart: %w", err)
	}

	dbItems, err := r.q.GetCartItems(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("q.GetCartItems: %w", err)
	}

	cart := mapCartToDomain(dbCart)
	for _, row := range dbItems {
		cart.AddItem(mapGetCartItemsRowToDomain(row, cart))
	}

	return cart, nil
}

func (r *cartRepository) CountCarts(ctx context.Context) (int64, error) {
	count, err := r.q.CountCarts(ctx)
	if err != nil {
		return 0, fmt.Errorf("q.CountCarts: %w", err)
	}

	return count, nil
}

func (r *cartRepository) Close() error {
	if r.ownsPool && r.pool != nil {
		r.pool.Close()
	}
	return nil
}

func mapCartToDomain(row db.Cart) *domain.Cart {
	return &domain.Cart{
		ID:        row.ID,
		Name:      row.Name,
		Total:     row.Total,
		CreatedAt: row.CreatedAt,
	}
}

func mapGetCartItemsRowToDomain(row db.GetCartItemsRow, cart *domain.Cart) *domain.Item {
	return &domain.Item{
		ID:          row.ID,
		ProductCode: row.ProductCode,
		Price:       row.Price,
		Quantity:    row.Quantity,
		Cart:        cart,
		CreatedAt:   row.CreatedAt,
	}
}
