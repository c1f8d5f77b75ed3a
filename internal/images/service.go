// Package images looks up a record's current attachment urls and relays
// image bytes for the storefront.
package images

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/MikeMC777/loop-storefront/internal/product"
	"github.com/MikeMC777/loop-storefront/internal/recordstore"
)

var ErrNotFound = errors.New("record not found")

// Response is the image list of one record.
// swagger:model
type Response struct {
	Images       []string `json:"images"`
	PrimaryImage string   `json:"primaryImage,omitempty"`
	TotalImages  int      `json:"totalImages"`
}

func NewResponse(urls []string) Response {
	r := Response{Images: urls, TotalImages: len(urls)}
	if r.Images == nil {
		r.Images = []string{}
	}
	if len(urls) > 0 {
		r.PrimaryImage = urls[0]
	}
	return r
}

// Service always reads the record again so image edits show up without a
// catalog refresh.
type Service struct {
	store recordstore.Store
	table string
	log   *zap.Logger
}

func NewService(store recordstore.Store, productsTable string, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, table: productsTable, log: log}
}

// Resolve returns the product's image urls; an empty list when it has none
// and ErrNotFound when the record does not exist.
func (s *Service) Resolve(ctx context.Context, recordID string) ([]string, error) {
	if s.store == nil {
		p, ok := product.DemoProduct(recordID)
		if !ok {
			return nil, ErrNotFound
		}
		return append([]string{}, p.Images...), nil
	}
	return s.ResolveField(ctx, s.table, recordID, product.FieldImages)
}

// ResolveField reads any attachment field of any table.
func (s *Service) ResolveField(ctx context.Context, table, recordID, field string) ([]string, error) {
	if s.store == nil {
		return nil, ErrNotFound
	}
	rec, err := s.store.Find(ctx, table, recordID)
	if errors.Is(err, recordstore.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch %s/%s: %w", table, recordID, err)
	}
	urls := rec.Fields.URLs(field)
	if urls == nil {
		urls = []string{}
	}
	s.log.Debug("images resolved", zap.String("record_id", recordID), zap.Int("count", len(urls)))
	return urls, nil
}
