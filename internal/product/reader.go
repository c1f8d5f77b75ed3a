// Package product reads the catalog from the record store and maps rows to
// the normalized Product shape.
package product

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/MikeMC777/loop-storefront/internal/recordstore"
)

// fetchTimeout bounds a shared list fetch, which outlives any one caller.
const fetchTimeout = 10 * time.Second

var (
	ErrNotFound      = errors.New("product not found")
	ErrNotConfigured = errors.New("catalog not configured")
)

// Field names of the products table.
const (
	FieldName        = "Product Name"
	FieldDescription = "Product INFO"
	FieldPrice       = "Unit Price"
	FieldImages      = "images"
	FieldType        = "Product Type"
	FieldProductID   = "Product Id"
	FieldIncludeShip = "Include ship?"
	FieldShipping    = "shipping"
)

// Reader is the catalog read path. A nil store means the backend is not
// configured and the demo dataset is served instead.
type Reader struct {
	store recordstore.Store
	table string
	view  string
	log   *zap.Logger
	sfg   singleflight.Group // collapses concurrent list fetches
}

func NewReader(store recordstore.Store, table, view string, log *zap.Logger) *Reader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Reader{store: store, table: table, view: view, log: log}
}

// List never fails: any backend problem degrades to the demo dataset so the
// storefront always renders something.
func (r *Reader) List(ctx context.Context) []Product {
	if r.store == nil {
		r.log.Warn("record store not configured, serving demo products")
		return DemoProducts()
	}

	v, err, _ := r.sfg.Do("list", func() (any, error) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), fetchTimeout)
		defer cancel()
		recs, err := r.store.List(ctx, r.table, recordstore.Query{View: r.view})
		if err != nil {
			return nil, err
		}
		out := make([]Product, 0, len(recs))
		for _, rec := range recs {
			out = append(out, FromRecord(rec))
		}
		return out, nil
	})
	if err != nil {
		r.log.Error("list products failed, serving demo products", zap.Error(err))
		return DemoProducts()
	}
	shared := v.([]Product)
	return append([]Product(nil), shared...)
}

// Get reads one product. ErrNotFound and transport errors stay distinct.
func (r *Reader) Get(ctx context.Context, id string) (*Product, error) {
	if r.store == nil {
		return nil, ErrNotConfigured
	}
	rec, err := r.store.Find(ctx, r.table, id)
	if errors.Is(err, recordstore.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get product %s: %w", id, err)
	}
	p := FromRecord(*rec)
	return &p, nil
}

// FromRecord maps a products-table row, defaulting absent cells.
func FromRecord(rec recordstore.Record) Product {
	f := rec.Fields
	category := CategoryGeneral
	if c, ok := f.First(FieldType).(string); ok && c != "" {
		category = c
	}
	images := f.URLs(FieldImages)
	p := Product{
		ID:          rec.ID,
		ProductID:   ExternalID(f.String(FieldProductID)),
		Name:        f.String(FieldName),
		Description: f.String(FieldDescription),
		Price:       f.Decimal(FieldPrice).Round(2),
		Images:      images,
		Category:    category,
		InStock:     true, // the products table has no stock column
		IncludeShip: f.String(FieldIncludeShip),
		Shipping:    f.Decimal(FieldShipping).Round(2),
	}
	if len(images) > 0 {
		p.Image = images[0]
	}
	return p
}
