// Package dao is the persistence gateway: it saves a cart and its items in one
// unit of work and logs the outcome instead of propagating failures.
package dao

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/cartsave-demo/internal/domain"
	"github.com/nikolayk812/cartsave-demo/internal/port"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Result reports the outcome of SaveData. Err is nil on success.
type Result struct {
	CartID uuid.UUID
	Err    error
}

func (r Result) OK() bool {
	return r.Err == nil
}

type Gateway struct {
	repo   port.CartRepository
	logger zerolog.Logger
}

func New(repo port.CartRepository, logger zerolog.Logger) *Gateway {
	return &Gateway{
		repo:   repo,
		logger: logger,
	}
}

// SaveData persists cart and then items in argument order. A failed save is
// logged with its stack and returned in the Result; it never panics.
func (g *Gateway) SaveData(ctx context.Context, cart *domain.Cart, items ...*domain.Item) Result {
	logCtx := g.logger.With().Int("items", len(items))
	if cart != nil {
		logCtx = logCtx.Str("cart", cart.Name)
	}
	logger := logCtx.Logger()
	ctx = logger.WithContext(ctx)

	logger.Info().Msg("saving cart")

	if err := g.repo.Save(ctx, cart, items...); err != nil {
		err = errors.WithStack(err)
		logger.Error().Stack().Err(err).Msg("exception occurred, save abandoned")
		return Result{Err: err}
	}

	logger.Info().Str("cart_id", cart.ID.String()).Msg("transaction committed")

	return Result{CartID: cart.ID}
}
