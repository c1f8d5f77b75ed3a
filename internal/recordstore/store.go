// Package recordstore is a typed accessor over a spreadsheet-style tabular
// record store. The hosted REST API client is the production backend; the
// Postgres and in-memory backends implement the same Store port.
package recordstore

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrUnknownField  = errors.New("unknown field")
	ErrNotConfigured = errors.New("record store not configured")
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

type Sort struct {
	Field     string
	Direction Direction
}

// Query narrows a List call. Zero MaxRecords means all records.
type Query struct {
	View       string
	Fields     []string
	MaxRecords int
	Sort       []Sort
}

// Store is the repository port every backend implements.
type Store interface {
	Find(ctx context.Context, table, id string) (*Record, error)
	List(ctx context.Context, table string, q Query) ([]Record, error)
	// FindByField returns the first record whose field equals value exactly.
	// It reports ErrUnknownField when the table has no such field.
	FindByField(ctx context.Context, table, field, value string) (*Record, error)
	CreateMany(ctx context.Context, table string, rows []Fields) ([]Record, error)
}
