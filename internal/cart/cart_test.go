package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/loop-storefront/internal/product"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type brokenStore struct {
	MemoryStore
	failSave bool
	loadErr  error
}

func (b *brokenStore) Load(ctx context.Context) ([]Item, error) {
	if b.loadErr != nil {
		return nil, b.loadErr
	}
	return b.MemoryStore.Load(ctx)
}

func (b *brokenStore) Save(ctx context.Context, items []Item) error {
	if b.failSave {
		return errors.New("quota exceeded")
	}
	return b.MemoryStore.Save(ctx, items)
}

func newCart(t *testing.T, s Store) *Cart {
	t.Helper()
	c, err := New(context.Background(), s)
	require.NoError(t, err)
	return c
}

func TestCart_MixedShippingScenario(t *testing.T) {
	ctx := context.Background()
	c := newCart(t, NewMemoryStore())

	a := product.Product{ID: "a", Price: dec("10.00"), IncludeShip: "Includes Shipping", Shipping: dec("5.00")}
	b := product.Product{ID: "b", Price: dec("20.00"), IncludeShip: "Estimate on arrival"}
	require.NoError(t, c.Add(ctx, a))
	require.NoError(t, c.Add(ctx, a))
	require.NoError(t, c.Add(ctx, b))

	assert.Equal(t, "40.00", c.Subtotal().StringFixed(2))
	assert.Equal(t, "10.00", c.ShippingTotal().StringFixed(2))
	assert.True(t, c.HasPendingShippingEstimate())
	assert.Equal(t, "50.00", c.GrandTotal().StringFixed(2))
	assert.Equal(t, 3, c.TotalItems())

	resp := NewResponse(c)
	assert.Equal(t, "50.00", resp.GrandTotal)
	assert.Len(t, resp.Items, 2)
}

func TestCart_EstimateWithShippingCostContributesNothing(t *testing.T) {
	c := newCart(t, NewMemoryStore())
	require.NoError(t, c.Add(context.Background(), product.Product{
		ID: "x", Price: dec("1"), IncludeShip: "Estimate on arrival", Shipping: dec("15"),
	}))
	assert.True(t, c.ShippingTotal().IsZero())
	assert.True(t, c.HasPendingShippingEstimate())
}

func TestCart_AddTwiceIsOneLine(t *testing.T) {
	ctx := context.Background()
	c := newCart(t, NewMemoryStore())
	p := product.Product{ID: "p", Price: dec("3.50")}
	require.NoError(t, c.Add(ctx, p))
	require.NoError(t, c.Add(ctx, p))

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestCart_SetQuantity(t *testing.T) {
	ctx := context.Background()
	c := newCart(t, NewMemoryStore())
	require.NoError(t, c.Add(ctx, product.Product{ID: "p", Price: dec("2")}))
	require.NoError(t, c.Add(ctx, product.Product{ID: "q", Price: dec("3")}))

	require.NoError(t, c.SetQuantity(ctx, "p", 4))
	assert.Equal(t, "11", c.Subtotal().String())

	require.NoError(t, c.SetQuantity(ctx, "nope", 9))
	assert.Equal(t, 5, c.TotalItems())

	require.NoError(t, c.SetQuantity(ctx, "p", 0))
	require.Len(t, c.Items(), 1)
	assert.Equal(t, "q", c.Items()[0].ID)
	assert.Equal(t, "3", c.Subtotal().String())

	require.NoError(t, c.Remove(ctx, "absent"))
	require.NoError(t, c.Clear(ctx))
	assert.Zero(t, c.TotalItems())
	assert.True(t, c.GrandTotal().IsZero())
}

func TestCart_NoDriftOverManyAdds(t *testing.T) {
	ctx := context.Background()
	c := newCart(t, NewMemoryStore())
	penny := product.Product{ID: "penny", Price: dec("0.01")}
	for i := 0; i < 10000; i++ {
		require.NoError(t, c.Add(ctx, penny))
	}
	assert.Equal(t, "100.00", c.Subtotal().StringFixed(2))
	assert.True(t, c.Subtotal().Equal(dec("100")))
}

func TestCart_PersistsAndReloads(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	c := newCart(t, store)
	require.NoError(t, c.Add(ctx, product.Product{ID: "p", Name: "Kente", Price: dec("12.5")}))

	again := newCart(t, store)
	require.Len(t, again.Items(), 1)
	assert.Equal(t, "Kente", again.Items()[0].Name)
	assert.Equal(t, "12.50", again.Subtotal().StringFixed(2))
}

func TestCart_FailedSaveKeepsState(t *testing.T) {
	ctx := context.Background()
	store := &brokenStore{}
	c := newCart(t, store)
	require.NoError(t, c.Add(ctx, product.Product{ID: "p", Price: dec("5")}))

	store.failSave = true
	assert.Error(t, c.Add(ctx, product.Product{ID: "p", Price: dec("5")}))
	assert.Error(t, c.Clear(ctx))
	assert.Equal(t, 1, c.TotalItems())
	assert.Equal(t, "5", c.Subtotal().String())
}

func TestNew_LoadErrors(t *testing.T) {
	_, err := New(context.Background(), &brokenStore{loadErr: errors.New("disk gone")})
	assert.Error(t, err)

	c, err := New(context.Background(), &brokenStore{loadErr: ErrCorrupt})
	require.NoError(t, err)
	assert.Zero(t, c.Len())
}

func TestNew_NormalizesPayload(t *testing.T) {
	store := NewMemoryStore(
		Item{Product: product.Product{ID: "a", Price: dec("1")}, Quantity: 1},
		Item{Product: product.Product{ID: "a", Price: dec("1")}, Quantity: 2},
		Item{Product: product.Product{ID: "b"}, Quantity: 0},
	)
	c := newCart(t, store)
	require.Len(t, c.Items(), 1)
	assert.Equal(t, 3, c.TotalItems())
}
