package recordstore

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_FindByField(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	m.Insert("Customers", "recA", Fields{"Customer ID": "C-1", "Name": "Ama"})
	m.Insert("Customers", "recB", Fields{"Customer ID": "C-2"})

	rec, err := m.FindByField(ctx, "Customers", "Customer ID", "C-2")
	require.NoError(t, err)
	assert.Equal(t, "recB", rec.ID)

	_, err = m.FindByField(ctx, "Customers", "Customer ID", "C-3")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = m.FindByField(ctx, "Customers", "Customer Id", "C-1")
	assert.ErrorIs(t, err, ErrUnknownField)

	m.Declare("Customers", "Customer Id")
	_, err = m.FindByField(ctx, "Customers", "Customer Id", "C-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_ListSortedDesc(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	m.Insert("Orders", "", Fields{"Checkout Number": 3})
	m.Insert("Orders", "", Fields{"Checkout Number": 12.0})
	m.Insert("Orders", "", Fields{"comments": "no number"})
	m.Insert("Orders", "", Fields{"Checkout Number": json.Number("7")})

	recs, err := m.List(ctx, "Orders", Query{
		MaxRecords: 1,
		Sort:       []Sort{{Field: "Checkout Number", Direction: Desc}},
		Fields:     []string{"Checkout Number"},
	})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, int64(12), recs[0].Fields.Int64("Checkout Number"))

	all, err := m.List(ctx, "Orders", Query{Sort: []Sort{{Field: "Checkout Number", Direction: Desc}}})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Nil(t, all[3].Fields["Checkout Number"], "empty cells sort last")
}

func TestMemory_FindReturnsCopy(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	m.Insert("Products", "rec1", Fields{"Product Name": "Shea Butter"})

	rec, err := m.Find(ctx, "Products", "rec1")
	require.NoError(t, err)
	rec.Fields["Product Name"] = "changed"

	again, err := m.Find(ctx, "Products", "rec1")
	require.NoError(t, err)
	assert.Equal(t, "Shea Butter", again.Fields.String("Product Name"))

	_, err = m.Find(ctx, "Products", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_CreateMany(t *testing.T) {
	m := NewMemory()
	recs, err := m.CreateMany(context.Background(), "Orders", []Fields{{"a": 1}, {"a": 2}})
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.NotEqual(t, recs[0].ID, recs[1].ID)
	assert.Len(t, recs[0].ID, 17)
	assert.Len(t, m.Records("Orders"), 2)
}

func TestFields_Helpers(t *testing.T) {
	f := Fields{
		"Product Type": []any{"BUNDLES", "Other"},
		"Empty":        []any{},
		"Unit Price":   "12.50",
		"shipping":     4.25,
		"Count":        json.Number("42"),
		"images": []any{
			map[string]any{"id": "att1", "url": "https://cdn.example/a.jpg", "width": 640.0},
			map[string]any{"id": "att2", "url": ""},
			map[string]any{"id": "att3", "url": "https://cdn.example/b.jpg"},
		},
	}

	assert.Equal(t, "BUNDLES", f.First("Product Type"))
	assert.Nil(t, f.First("Empty"))
	assert.True(t, decimal.RequireFromString("12.5").Equal(f.Decimal("Unit Price")))
	assert.True(t, decimal.RequireFromString("4.25").Equal(f.Decimal("shipping")))
	assert.True(t, f.Decimal("missing").IsZero())
	assert.Equal(t, int64(42), f.Int64("Count"))
	assert.Equal(t, "", f.String("Product Type"))

	atts := f.Attachments("images")
	require.Len(t, atts, 3)
	assert.Equal(t, 640, atts[0].Width)
	assert.Equal(t, []string{"https://cdn.example/a.jpg", "https://cdn.example/b.jpg"}, f.URLs("images"))
	assert.Nil(t, f.Attachments("nope"))
}
