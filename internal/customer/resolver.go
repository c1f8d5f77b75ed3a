// Package customer resolves the identifier a shopper types in to the
// record reference of the matching customer row.
package customer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/MikeMC777/loop-storefront/internal/recordstore"
)

var ErrNotFound = errors.New("customer not found")

// DefaultFields are the column names the customer identifier has been stored
// under over time. They are tried in this order.
var DefaultFields = []string{"Customer Id", "Customer ID", "customer id", "ID"}

// Strategy is one way of finding a customer row. Implementations return
// recordstore.ErrNotFound or recordstore.ErrUnknownField to let the next
// strategy run; any other error stops resolution.
type Strategy interface {
	Find(ctx context.Context, customerID string) (*recordstore.Record, error)
}

// FieldMatch finds the first row whose Field equals the identifier exactly.
type FieldMatch struct {
	Store recordstore.Store
	Table string
	Field string
}

func (m FieldMatch) Find(ctx context.Context, customerID string) (*recordstore.Record, error) {
	return m.Store.FindByField(ctx, m.Table, m.Field, customerID)
}

type Resolver struct {
	strategies []Strategy
	log        *zap.Logger
}

// NewResolver builds one FieldMatch per field name, DefaultFields when none given.
func NewResolver(store recordstore.Store, table string, log *zap.Logger, fields ...string) *Resolver {
	if len(fields) == 0 {
		fields = DefaultFields
	}
	ss := make([]Strategy, 0, len(fields))
	for _, f := range fields {
		ss = append(ss, FieldMatch{Store: store, Table: table, Field: f})
	}
	return NewResolverWith(log, ss...)
}

func NewResolverWith(log *zap.Logger, strategies ...Strategy) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{strategies: strategies, log: log}
}

// Resolve returns the record reference of the customer.
func (r *Resolver) Resolve(ctx context.Context, customerID string) (string, error) {
	rec, err := r.find(ctx, customerID)
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

// Lookup is Resolve plus the contact details of the row.
func (r *Resolver) Lookup(ctx context.Context, customerID string) (*Customer, error) {
	rec, err := r.find(ctx, customerID)
	if err != nil {
		return nil, err
	}
	f := rec.Fields
	return &Customer{
		Ref:        rec.ID,
		CustomerID: customerID,
		Name:       firstOf(f, "Customer Name", "Name", "Full Name"),
		Email:      firstOf(f, "Email", "email"),
		Phone:      firstOf(f, "Phone", "Phone Number"),
		Address:    firstOf(f, "Address", "Delivery Address"),
	}, nil
}

func (r *Resolver) find(ctx context.Context, customerID string) (*recordstore.Record, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrNotFound
	}
	for _, s := range r.strategies {
		rec, err := s.Find(ctx, customerID)
		switch {
		case err == nil:
			return rec, nil
		case errors.Is(err, recordstore.ErrNotFound), errors.Is(err, recordstore.ErrUnknownField):
			r.log.Debug("customer strategy missed", zap.String("customer_id", customerID), zap.Error(err))
			continue
		default:
			return nil, fmt.Errorf("resolve customer %q: %w", customerID, err)
		}
	}
	return nil, ErrNotFound
}

func firstOf(f recordstore.Fields, names ...string) string {
	for _, n := range names {
		if s := f.String(n); s != "" {
			return s
		}
	}
	return ""
}
