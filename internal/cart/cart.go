// Package cart holds the shopper's selected products and derives the money
// totals shown at checkout.
package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MikeMC777/loop-storefront/internal/product"
)

// ErrCorrupt is returned by stores whose persisted payload cannot be decoded.
// New treats it as an empty cart.
var ErrCorrupt = errors.New("cart payload corrupt")

const (
	policyIncludesShipping = "includes shipping"
	policyEstimate         = "estimate"
)

// Item is a product plus its quantity. It serializes as the product object
// with an extra quantity field.
type Item struct {
	product.Product
	Quantity int `json:"quantity"`
}

// Store persists the full cart state.
type Store interface {
	Load(ctx context.Context) ([]Item, error)
	Save(ctx context.Context, items []Item) error
}

// Cart is not safe for concurrent use; one session mutates it at a time.
type Cart struct {
	store Store
	items []Item
}

// New loads the persisted state once.
func New(ctx context.Context, store Store) (*Cart, error) {
	items, err := store.Load(ctx)
	if err != nil && !errors.Is(err, ErrCorrupt) {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if errors.Is(err, ErrCorrupt) {
		items = nil
	}
	return &Cart{store: store, items: normalize(items)}, nil
}

// Add inserts the product with quantity 1 or bumps the existing line.
func (c *Cart) Add(ctx context.Context, p product.Product) error {
	next := c.Items()
	if i := indexOf(next, p.ID); i >= 0 {
		next[i].Quantity++
	} else {
		next = append(next, Item{Product: p, Quantity: 1})
	}
	return c.commit(ctx, next)
}

// Remove is a no-op for unknown ids.
func (c *Cart) Remove(ctx context.Context, productID string) error {
	i := indexOf(c.items, productID)
	if i < 0 {
		return nil
	}
	next := c.Items()
	next = append(next[:i], next[i+1:]...)
	return c.commit(ctx, next)
}

// SetQuantity replaces the quantity; q <= 0 removes the line. Unknown ids
// are ignored.
func (c *Cart) SetQuantity(ctx context.Context, productID string, q int) error {
	if q <= 0 {
		return c.Remove(ctx, productID)
	}
	i := indexOf(c.items, productID)
	if i < 0 {
		return nil
	}
	next := c.Items()
	next[i].Quantity = q
	return c.commit(ctx, next)
}

func (c *Cart) Clear(ctx context.Context) error {
	return c.commit(ctx, []Item{})
}

// Items returns a copy of the current lines in insertion order.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int { return len(c.items) }

func (c *Cart) TotalItems() int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range c.items {
		sum = sum.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return sum
}

// ShippingTotal only counts lines whose policy says shipping is included.
func (c *Cart) ShippingTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range c.items {
		if !hasPolicy(it.IncludeShip, policyIncludesShipping) {
			continue
		}
		sum = sum.Add(it.Shipping.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return sum
}

// HasPendingShippingEstimate reports a line whose shipping is still to be
// quoted. It never changes the totals.
func (c *Cart) HasPendingShippingEstimate() bool {
	for _, it := range c.items {
		if hasPolicy(it.IncludeShip, policyEstimate) {
			return true
		}
	}
	return false
}

func (c *Cart) GrandTotal() decimal.Decimal {
	return c.Subtotal().Add(c.ShippingTotal())
}

// Totals is the derived summary of a cart.
type Totals struct {
	TotalItems              int
	Subtotal                decimal.Decimal
	ShippingTotal           decimal.Decimal
	GrandTotal              decimal.Decimal
	PendingShippingEstimate bool
}

func (c *Cart) Totals() Totals {
	sub, ship := c.Subtotal(), c.ShippingTotal()
	return Totals{
		TotalItems:              c.TotalItems(),
		Subtotal:                sub,
		ShippingTotal:           ship,
		GrandTotal:              sub.Add(ship),
		PendingShippingEstimate: c.HasPendingShippingEstimate(),
	}
}

// commit persists next and only then adopts it.
func (c *Cart) commit(ctx context.Context, next []Item) error {
	if err := c.store.Save(ctx, next); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	c.items = next
	return nil
}

func indexOf(items []Item, productID string) int {
	for i, it := range items {
		if it.ID == productID {
			return i
		}
	}
	return -1
}

func hasPolicy(policy, phrase string) bool {
	return strings.Contains(strings.ToLower(policy), phrase)
}

// normalize merges duplicate ids and drops non-positive quantities that may
// come from hand-edited payloads.
func normalize(in []Item) []Item {
	out := make([]Item, 0, len(in))
	for _, it := range in {
		if it.Quantity <= 0 || it.ID == "" {
			continue
		}
		if i := indexOf(out, it.ID); i >= 0 {
			out[i].Quantity += it.Quantity
			continue
		}
		out = append(out, it)
	}
	return out
}
