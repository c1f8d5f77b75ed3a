package recordstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/MikeMC777/loop-storefront/internal/customer"
	"github.com/MikeMC777/loop-storefront/internal/order"
	"github.com/MikeMC777/loop-storefront/internal/recordstore"
)

func setupTestDB(t *testing.T) (*recordstore.PGStore, string) {
	if testing.Short() {
		t.Skip("postgres container tests skipped in -short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	require.NoError(t, recordstore.Migrate(dsn))
	pool, err := recordstore.OpenPG(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return recordstore.NewPGStore(pool), dsn
}

func TestPGX5URL(t *testing.T) {
	assert.Equal(t, "pgx5://u:p@db:5432/x?sslmode=disable", recordstore.PGX5URL("postgres://u:p@db:5432/x?sslmode=disable"))
	assert.Equal(t, "pgx5://u@db/x", recordstore.PGX5URL("postgresql://u@db/x"))
	assert.Equal(t, "pgx5://already", recordstore.PGX5URL("pgx5://already"))
}

func TestPGStore_MigrateTwice(t *testing.T) {
	_, dsn := setupTestDB(t)
	assert.NoError(t, recordstore.Migrate(dsn))
}

func TestPGStore_CreateAndFind(t *testing.T) {
	st, _ := setupTestDB(t)
	ctx := context.Background()

	created, err := st.CreateMany(ctx, "Products", []recordstore.Fields{
		{"Product Name": "Kente Scarf", "Unit Price": 45.5},
		{"Product Name": "Shea Butter"},
	})
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.NotEmpty(t, created[0].ID)
	assert.False(t, created[0].CreatedTime.IsZero())

	rec, err := st.Find(ctx, "Products", created[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Kente Scarf", rec.Fields.String("Product Name"))
	assert.True(t, rec.Fields.Decimal("Unit Price").Equal(decimal.RequireFromString("45.5")))

	_, err = st.Find(ctx, "Products", "recMissing")
	assert.ErrorIs(t, err, recordstore.ErrNotFound)

	// same id, other table
	_, err = st.Find(ctx, "Orders", created[0].ID)
	assert.ErrorIs(t, err, recordstore.ErrNotFound)
}

func TestPGStore_ListSortedDescending(t *testing.T) {
	st, _ := setupTestDB(t)
	ctx := context.Background()

	_, err := st.CreateMany(ctx, "Order Table", []recordstore.Fields{
		{"Checkout Number": 9, "comments": "a"},
		{"comments": "no number"},
		{"Checkout Number": 10, "comments": "b"},
		{"Checkout Number": 2, "comments": "c"},
	})
	require.NoError(t, err)

	top, err := st.List(ctx, "Order Table", recordstore.Query{
		Fields:     []string{"Checkout Number"},
		MaxRecords: 1,
		Sort:       []recordstore.Sort{{Field: "Checkout Number", Direction: recordstore.Desc}},
	})
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, int64(10), top[0].Fields.Int64("Checkout Number"))
	assert.NotContains(t, top[0].Fields, "comments")

	all, err := st.List(ctx, "Order Table", recordstore.Query{
		Sort: []recordstore.Sort{{Field: "Checkout Number", Direction: recordstore.Asc}},
	})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, int64(2), all[0].Fields.Int64("Checkout Number"))
	assert.Equal(t, int64(10), all[2].Fields.Int64("Checkout Number"))
	assert.Equal(t, "no number", all[3].Fields.String("comments"))

	empty, err := st.List(ctx, "Checkout Table", recordstore.Query{MaxRecords: 1})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestPGStore_FindByField(t *testing.T) {
	st, _ := setupTestDB(t)
	ctx := context.Background()

	_, err := st.CreateMany(ctx, "Customer Table", []recordstore.Fields{
		{"Customer ID": "C-1", "Name": "Ama"},
		{"Customer ID": "C-2", "Name": "Kofi"},
	})
	require.NoError(t, err)

	rec, err := st.FindByField(ctx, "Customer Table", "Customer ID", "C-2")
	require.NoError(t, err)
	assert.Equal(t, "Kofi", rec.Fields.String("Name"))

	_, err = st.FindByField(ctx, "Customer Table", "Customer ID", "C-9")
	assert.ErrorIs(t, err, recordstore.ErrNotFound)

	_, err = st.FindByField(ctx, "Customer Table", "Customer Id", "C-1")
	assert.ErrorIs(t, err, recordstore.ErrUnknownField)
}

func TestPGStore_CreateManyIsAtomic(t *testing.T) {
	st, _ := setupTestDB(t)
	ctx := context.Background()

	_, err := st.CreateMany(ctx, "Order Table", []recordstore.Fields{
		{"Checkout Number": 1},
		{"Checkout Number": make(chan int)}, // cannot be encoded
	})
	require.Error(t, err)

	recs, err := st.List(ctx, "Order Table", recordstore.Query{})
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestPGStore_CheckoutAllocatesSequentially(t *testing.T) {
	st, _ := setupTestDB(t)
	ctx := context.Background()

	_, err := st.CreateMany(ctx, "Customer Table", []recordstore.Fields{{"Customer ID": "C-1"}})
	require.NoError(t, err)

	co := order.NewCheckout(order.Options{
		Store:         st,
		Customers:     customer.NewResolver(st, "Customer Table", nil),
		OrdersTable:   "Order Table",
		CheckoutTable: "Checkout Table",
	})
	orders := []order.Order{{
		CustomerID: "C-1",
		Products: []order.LineItem{
			{ProductID: "recA", ProductName: "Kente Scarf", Quantity: 2, Price: decimal.RequireFromString("10.00")},
			{ProductID: "recB", ProductName: "Shea Butter", Quantity: 1, Price: decimal.RequireFromString("20.00")},
		},
		TotalShipping: decimal.RequireFromString("10.00"),
	}}

	first, err := co.Submit(ctx, orders, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.CheckoutNumber)
	assert.Len(t, first.OrderIDs, 2)
	assert.True(t, first.SummaryWritten)

	second, err := co.Submit(ctx, orders, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.CheckoutNumber)

	next, err := order.MaxPlusOne{Store: st, Table: "Order Table"}.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), next)

	summaries, err := st.List(ctx, "Checkout Table", recordstore.Query{
		Sort: []recordstore.Sort{{Field: "Checkout Number", Direction: recordstore.Asc}},
	})
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.True(t, summaries[0].Fields.Decimal("Total Amount").Equal(decimal.RequireFromString("40.00")))

	_, err = co.Submit(ctx, []order.Order{{CustomerID: "C-404", Products: orders[0].Products}}, 0)
	assert.ErrorIs(t, err, order.ErrCustomerNotFound)
}
