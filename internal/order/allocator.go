package order

import (
	"context"
	"fmt"

	"github.com/MikeMC777/loop-storefront/internal/recordstore"
)

// Allocator hands out checkout numbers.
type Allocator interface {
	Next(ctx context.Context) (int64, error)
}

// MaxPlusOne reads the highest checkout number in the orders table and adds
// one, or returns 1 for an empty table. The read and the later write are not
// atomic: two concurrent checkouts can receive the same number.
type MaxPlusOne struct {
	Store recordstore.Store
	Table string
}

func (a MaxPlusOne) Next(ctx context.Context) (int64, error) {
	recs, err := a.Store.List(ctx, a.Table, recordstore.Query{
		Fields:     []string{FieldCheckoutNumber},
		MaxRecords: 1,
		Sort:       []recordstore.Sort{{Field: FieldCheckoutNumber, Direction: recordstore.Desc}},
	})
	if err != nil {
		return 0, fmt.Errorf("read last checkout number: %w", err)
	}
	if len(recs) == 0 {
		return 1, nil
	}
	return recs[0].Fields.Int64(FieldCheckoutNumber) + 1, nil
}
