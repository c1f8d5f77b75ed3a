package recordstore

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// Fields holds a record's named cell values exactly as the store returned them.
type Fields map[string]any

// Record is one row of a table.
type Record struct {
	ID          string    `json:"id"`
	CreatedTime time.Time `json:"createdTime"`
	Fields      Fields    `json:"fields"`
}

// Attachment is one element of an attachment field.
type Attachment struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	Type     string `json:"type"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// First returns the first element of a multi-valued field, or the value
// itself when the field is scalar.
func (f Fields) First(name string) any {
	switch v := f[name].(type) {
	case []any:
		if len(v) == 0 {
			return nil
		}
		return v[0]
	case []string:
		if len(v) == 0 {
			return nil
		}
		return v[0]
	default:
		return v
	}
}

// String returns the field as a string; numbers are formatted, anything
// else that cannot be represented yields "".
func (f Fields) String(name string) string {
	if n, ok := f[name].(json.Number); ok {
		return n.String()
	}
	s, err := cast.ToStringE(f[name])
	if err != nil {
		return ""
	}
	return s
}

// Decimal returns the field as a decimal, zero when absent or not numeric.
func (f Fields) Decimal(name string) decimal.Decimal {
	switch v := f[name].(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return v
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return decimal.Zero
		}
		return d
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		fl, err := cast.ToFloat64E(v)
		if err != nil {
			return decimal.Zero
		}
		return decimal.NewFromFloat(fl)
	}
}

// Int64 returns the field as an integer, zero when absent or not numeric.
func (f Fields) Int64(name string) int64 {
	if n, ok := f[name].(json.Number); ok {
		i, err := n.Int64()
		if err != nil {
			fl, _ := n.Float64()
			return int64(fl)
		}
		return i
	}
	i, err := cast.ToInt64E(f[name])
	if err != nil {
		return 0
	}
	return i
}

// Attachments decodes an attachment field. Malformed or absent values yield nil.
func (f Fields) Attachments(name string) []Attachment {
	raw, ok := f[name]
	if !ok || raw == nil {
		return nil
	}
	if typed, ok := raw.([]Attachment); ok {
		return append([]Attachment(nil), typed...)
	}
	var out []Attachment
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           &out,
	})
	if err != nil {
		return nil
	}
	if err := dec.Decode(raw); err != nil {
		return nil
	}
	return out
}

// URLs returns the non-empty urls of an attachment field in order.
func (f Fields) URLs(name string) []string {
	var urls []string
	for _, a := range f.Attachments(name) {
		if a.URL != "" {
			urls = append(urls, a.URL)
		}
	}
	return urls
}

func (f Fields) clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

func (f Fields) project(names []string) Fields {
	if len(names) == 0 {
		return f
	}
	out := make(Fields, len(names))
	for _, n := range names {
		if v, ok := f[n]; ok {
			out[n] = v
		}
	}
	return out
}

// newRecordID mimics the "rec" + 14 character shape of hosted record ids.
func newRecordID() string {
	return "rec" + strings.ReplaceAll(uuid.NewString(), "-", "")[:14]
}
