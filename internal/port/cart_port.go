package port

import (
	"context"
	"github.com/google/uuid"
	"github.com/nikolayk812/cartsave-demo/internal/domain"
)

type CartRepository interface {
	// Save stores the cart and then each item in one transaction.
	// Generated IDs are set on the objects only after commit.
	Save(ctx context.Context, cart *domain.Cart, items ...*domain.Item) error
	GetCart(ctx context.Context, id uuid.UUID) (*domain.Cart, error)
	CountCarts(ctx context.Context) (int64, error)
	Close() error
}
