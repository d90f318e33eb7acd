// Package app assembles the example cart and hands it to the gateway once.
package app

import (
	"context"
	"io"

	"github.com/nikolayk812/cartsave-demo/internal/dao"
	"github.com/nikolayk812/cartsave-demo/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Saver interface {
	SaveData(ctx context.Context, cart *domain.Cart, items ...*domain.Item) dao.Result
}

// ExampleCart returns cart "cart" holding I10 (10 × 1) and I20 (20 × 2).
// Total is set by hand, not derived from the items.
func ExampleCart() (*domain.Cart, []*domain.Item) {
	cart := domain.NewCart("cart")

	item1 := domain.NewItem("I10", decimal.NewFromInt(10), 1, cart)
	item2 := domain.NewItem("I20", decimal.NewFromInt(20), 2, cart)
	cart.Items = domain.NewItemSet(item1, item2)
	cart.Total = decimal.NewFromInt(10*1 + 20*2)

	return cart, []*domain.Item{item1, item2}
}

// Run saves the example cart and writes a one-line summary to out.
func Run(ctx context.Context, saver Saver, out io.Writer) dao.Result {
	cart, items := ExampleCart()

	result := saver.SaveData(ctx, cart, items...)

	p := message.NewPrinter(language.English)
	if !result.OK() {
		_, _ = p.Fprintf(out, "cart %q not saved: %v\n", cart.Name, result.Err)
		return result
	}

	_, _ = p.Fprintf(out, "cart %q saved as %s: %d items, total %s (items sum %s)\n",
		cart.Name, result.CartID, cart.Items.Len(),
		cart.Total.StringFixed(2), cart.ComputedTotal().StringFixed(2))

	return result
}
