package product

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// Catalog partitions routed to dedicated views.
const (
	CategoryGhana   = "Available In Ghana"
	CategoryBundles = "BUNDLES"
	CategoryGeneral = "General"
)

type Product struct {
	ID          string     `json:"id"`
	ProductID   ExternalID `json:"productId,omitempty" swaggertype:"string"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	// Money is kept as decimal and serialized as a string to avoid rounding errors.
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image,omitempty"`
	Images      []string        `json:"images,omitempty"`
	Category    string          `json:"category"`
	InStock     bool            `json:"inStock"`
	IncludeShip string          `json:"includeShip,omitempty"`
	Shipping    decimal.Decimal `json:"shipping"`
}

// ListResponse is the product listing payload.
// swagger:model
type ListResponse struct {
	// view applied: all, main, ghana or bundles
	View string `json:"view,omitempty"`
	// search query applied
	Q          string    `json:"q,omitempty"`
	Products   []Product `json:"products"`
	Categories []string  `json:"categories"`
}

// ExternalID is the shop's own product code. Older cart payloads carry it as
// a JSON number, so both numbers and strings decode.
type ExternalID string

func (id *ExternalID) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*id = ""
		return nil
	}
	var v any
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return err
	}
	if n, ok := v.(json.Number); ok {
		*id = ExternalID(n.String())
		return nil
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return err
	}
	*id = ExternalID(s)
	return nil
}
