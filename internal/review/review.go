// Package review reads customer reviews for the storefront's review wall.
package review

import (
	"context"
	"fmt"
	"time"

	"github.com/araddon/dateparse"
	"go.uber.org/zap"

	"github.com/MikeMC777/loop-storefront/internal/recordstore"
)

const (
	FieldComments     = "Comments"
	FieldReviewImage  = "Review Image"
	FieldCustomerName = "Customer Name"
	FieldRating       = "Rating"
	FieldDate         = "Date"
)

type Review struct {
	ID           string     `json:"id"`
	Comments     string     `json:"comments"`
	ReviewImage  string     `json:"reviewImage,omitempty"`
	CustomerName string     `json:"customerName,omitempty"`
	Rating       int        `json:"rating,omitempty"`
	Date         *time.Time `json:"date,omitempty"`
	CreatedTime  time.Time  `json:"createdTime"`
}

// ListResponse wraps the review list.
// swagger:model
type ListResponse struct {
	Reviews []Review `json:"reviews"`
}

type Reader struct {
	store recordstore.Store
	table string
	log   *zap.Logger
}

func NewReader(store recordstore.Store, table string, log *zap.Logger) *Reader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Reader{store: store, table: table, log: log}
}

// List returns every review, or none when no store is configured.
func (r *Reader) List(ctx context.Context) ([]Review, error) {
	if r.store == nil {
		return []Review{}, nil
	}
	recs, err := r.store.List(ctx, r.table, recordstore.Query{})
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	out := make([]Review, 0, len(recs))
	for _, rec := range recs {
		out = append(out, r.fromRecord(rec))
	}
	return out, nil
}

func (r *Reader) fromRecord(rec recordstore.Record) Review {
	f := rec.Fields
	rv := Review{
		ID:           rec.ID,
		Comments:     firstNonEmpty(f.String(FieldComments), f.String("comments")),
		CustomerName: f.String(FieldCustomerName),
		Rating:       int(f.Int64(FieldRating)),
		CreatedTime:  rec.CreatedTime,
	}
	urls := f.URLs(FieldReviewImage)
	if len(urls) == 0 {
		urls = f.URLs("reviewImage")
	}
	if len(urls) > 0 {
		rv.ReviewImage = urls[0]
	}
	if raw := f.String(FieldDate); raw != "" {
		// hand-typed dates come in many shapes
		if t, err := dateparse.ParseAny(raw); err == nil {
			rv.Date = &t
		} else {
			r.log.Debug("unparseable review date", zap.String("id", rec.ID), zap.String("date", raw))
		}
	}
	return rv
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
