package recordstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
)

const (
	DefaultBaseURL = "https://api.airtable.com/v0"
	// createBatchSize is the most records the hosted API accepts per create call.
	createBatchSize = 10
	pageSize        = 100
)

// APIError is a non-2xx answer from the hosted API.
type APIError struct {
	Status  int
	Type    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("record store: %d %s: %s", e.Status, e.Type, e.Message)
	}
	return fmt.Sprintf("record store: %d %s", e.Status, e.Type)
}

func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		// a missing table or base is a configuration fault, not a missing record
		return e.Status == http.StatusNotFound && e.Type == "NOT_FOUND"
	case ErrUnknownField:
		return e.Status == http.StatusUnprocessableEntity &&
			(e.Type == "INVALID_FILTER_BY_FORMULA" || e.Type == "UNKNOWN_FIELD_NAME")
	}
	return false
}

type ClientOptions struct {
	BaseURL string
	BaseID  string
	APIKey  string
	Timeout time.Duration
	HTTP    *http.Client
}

// Client talks to the hosted tabular API. It never retries; a run of
// transport or 5xx failures opens the breaker and fails fast for a while.
type Client struct {
	http    *http.Client
	baseURL string
	baseID  string
	apiKey  string
	timeout time.Duration
	cb      *gobreaker.CircuitBreaker[*http.Response]
}

func NewClient(o ClientOptions) *Client {
	if o.BaseURL == "" {
		o.BaseURL = DefaultBaseURL
	}
	if o.Timeout <= 0 {
		o.Timeout = 10 * time.Second
	}
	if o.HTTP == nil {
		o.HTTP = &http.Client{Timeout: o.Timeout}
	}
	return &Client{
		http:    o.HTTP,
		baseURL: strings.TrimRight(o.BaseURL, "/"),
		baseID:  o.BaseID,
		apiKey:  o.APIKey,
		timeout: o.Timeout,
		cb: gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
			Name:    "recordstore",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(c gobreaker.Counts) bool {
				return c.ConsecutiveFailures >= 5
			},
		}),
	}
}

type listResponse struct {
	Records []Record `json:"records"`
	Offset  string   `json:"offset"`
}

type createRequest struct {
	Records []createRow `json:"records"`
}

type createRow struct {
	Fields Fields `json:"fields"`
}

func (c *Client) Find(ctx context.Context, table, id string) (*Record, error) {
	var rec Record
	if err := c.do(ctx, http.MethodGet, tablePath(table)+"/"+url.PathEscape(id), nil, nil, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *Client) List(ctx context.Context, table string, q Query) ([]Record, error) {
	return c.list(ctx, table, q, "")
}

func (c *Client) FindByField(ctx context.Context, table, field, value string) (*Record, error) {
	formula := fmt.Sprintf("{%s} = '%s'", field, escapeFormula(value))
	recs, err := c.list(ctx, table, Query{MaxRecords: 1}, formula)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, ErrNotFound
	}
	return &recs[0], nil
}

// CreateMany writes rows in batches. When a later batch fails the records of
// earlier batches are already committed; they are returned with the error.
func (c *Client) CreateMany(ctx context.Context, table string, rows []Fields) ([]Record, error) {
	created := make([]Record, 0, len(rows))
	for start := 0; start < len(rows); start += createBatchSize {
		end := min(start+createBatchSize, len(rows))
		req := createRequest{Records: make([]createRow, 0, end-start)}
		for _, f := range rows[start:end] {
			req.Records = append(req.Records, createRow{Fields: f})
		}
		var res listResponse
		if err := c.do(ctx, http.MethodPost, tablePath(table), nil, req, &res); err != nil {
			return created, fmt.Errorf("create %s rows %d-%d: %w", table, start, end-1, err)
		}
		created = append(created, res.Records...)
	}
	return created, nil
}

func (c *Client) list(ctx context.Context, table string, q Query, formula string) ([]Record, error) {
	var out []Record
	offset := ""
	for {
		v := url.Values{}
		if q.View != "" {
			v.Set("view", q.View)
		}
		if formula != "" {
			v.Set("filterByFormula", formula)
		}
		size := pageSize
		if q.MaxRecords > 0 {
			v.Set("maxRecords", strconv.Itoa(q.MaxRecords))
			size = min(size, q.MaxRecords)
		}
		v.Set("pageSize", strconv.Itoa(size))
		for _, f := range q.Fields {
			v.Add("fields[]", f)
		}
		for i, s := range q.Sort {
			v.Set(fmt.Sprintf("sort[%d][field]", i), s.Field)
			dir := s.Direction
			if dir == "" {
				dir = Asc
			}
			v.Set(fmt.Sprintf("sort[%d][direction]", i), string(dir))
		}
		if offset != "" {
			v.Set("offset", offset)
		}

		var page listResponse
		if err := c.do(ctx, http.MethodGet, tablePath(table), v, nil, &page); err != nil {
			return nil, err
		}
		out = append(out, page.Records...)
		if page.Offset == "" || (q.MaxRecords > 0 && len(out) >= q.MaxRecords) {
			break
		}
		offset = page.Offset
	}
	if q.MaxRecords > 0 && len(out) > q.MaxRecords {
		out = out[:q.MaxRecords]
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, q url.Values, in, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}
	u := c.baseURL + "/" + url.PathEscape(c.baseID) + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.cb.Execute(func() (*http.Response, error) {
		res, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		if res.StatusCode >= http.StatusInternalServerError {
			defer res.Body.Close()
			return nil, decodeAPIError(res)
		}
		return res, nil
	})
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return decodeAPIError(res)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeAPIError(res *http.Response) error {
	apiErr := &APIError{Status: res.StatusCode, Type: http.StatusText(res.StatusCode)}
	var env struct {
		Error json.RawMessage `json:"error"`
	}
	raw, _ := io.ReadAll(io.LimitReader(res.Body, 64<<10))
	if err := json.Unmarshal(raw, &env); err != nil || len(env.Error) == 0 {
		return apiErr
	}
	var detail struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(env.Error, &detail); err == nil {
		apiErr.Type = detail.Type
		apiErr.Message = detail.Message
		return apiErr
	}
	var code string
	if err := json.Unmarshal(env.Error, &code); err == nil {
		apiErr.Type = code
	}
	return apiErr
}

func tablePath(table string) string {
	return "/" + url.PathEscape(table)
}

func escapeFormula(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	return strings.ReplaceAll(v, `'`, `\'`)
}
