package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"time"
)

type Cart struct {
	ID    uuid.UUID
	Name  string
	Total decimal.Decimal
	Items ItemSet

	CreatedAt time.Time
}

// Item is a single product line. Cart is a back-reference, an item does not own its cart.
type Item struct {
	ID          uuid.UUID
	ProductCode string
	Price       decimal.Decimal
	Quantity    int32
	Cart        *Cart

	CreatedAt time.Time
}

func NewCart(name string) *Cart {
	return &Cart{Name: name}
}

func NewItem(productCode string, price decimal.Decimal, quantity int32, cart *Cart) *Item {
	return &Item{
		ProductCode: productCode,
		Price:       price,
		Quantity:    quantity,
		Cart:        cart,
	}
}

// AddItem puts item into the cart's item set without touching Total.
func (c *Cart) AddItem(item *Item) bool {
	return c.Items.Add(item)
}

// ItemSet holds items by pointer identity: two items with equal fields are
// still two members. Iteration follows insertion order.
type ItemSet struct {
	order []*Item
	index map[*Item]struct{}
}

func NewItemSet(items ...*Item) ItemSet {
	var s ItemSet
	for _, item := range items {
		s.Add(item)
	}
	return s
}

func (s *ItemSet) Add(item *Item) bool {
	if item == nil {
		return false
	}
	if s.index == nil {
		s.index = make(map[*Item]struct{})
	}
	if _, ok := s.index[item]; ok {
		return false
	}

	s.index[item] = struct{}{}
	s.order = append(s.order, item)
	return true
}

func (s ItemSet) Contains(item *Item) bool {
	_, ok := s.index[item]
	return ok
}

func (s ItemSet) Len() int {
	return len(s.order)
}

// All returns a copy of the members in insertion order.
func (s ItemSet) All() []*Item {
	if len(s.order) == 0 {
		return nil
	}

	out := make([]*Item, len(s.order))
	copy(out, s.order)
	return out
}
