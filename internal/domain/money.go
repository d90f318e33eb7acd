package domain

import (
	"github.com/shopspring/decimal"
)

// LineTotal is Price × Quantity.
func (i *Item) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt32(i.Quantity))
}

// ComputedTotal sums the line totals of the cart's items. It does not
// change Total, which stays whatever the caller set.
func (c *Cart) ComputedTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items.All() {
		total = total.Add(item.LineTotal())
	}
	return total
}
