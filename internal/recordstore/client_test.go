package recordstore

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI emulates the hosted REST API closely enough for the client.
type fakeAPI struct {
	mu       sync.Mutex
	requests []*http.Request
	handler  func(w http.ResponseWriter, r *http.Request, body []byte)
}

func newFakeAPI(t *testing.T, h func(w http.ResponseWriter, r *http.Request, body []byte)) (*httptest.Server, *fakeAPI) {
	t.Helper()
	f := &fakeAPI{handler: h}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if r.Body != nil {
			body, _ = io.ReadAll(r.Body)
		}
		f.mu.Lock()
		f.requests = append(f.requests, r)
		f.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		f.handler(w, r, body)
	}))
	t.Cleanup(srv.Close)
	return srv, f
}

func (f *fakeAPI) seen() []*http.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*http.Request(nil), f.requests...)
}

func newTestClient(url string) *Client {
	return NewClient(ClientOptions{BaseURL: url, BaseID: "appTEST", APIKey: "key123", Timeout: 2 * time.Second})
}

func TestClient_ListFollowsOffset(t *testing.T) {
	srv, api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request, _ []byte) {
		assert.Equal(t, "/appTEST/Order Table", r.URL.Path)
		assert.Equal(t, "Bearer key123", r.Header.Get("Authorization"))
		if r.URL.Query().Get("offset") == "" {
			_, _ = w.Write([]byte(`{"records":[{"id":"rec1","createdTime":"2024-05-01T10:00:00.000Z","fields":{"Checkout Number":9}}],"offset":"itrNext"}`))
			return
		}
		assert.Equal(t, "itrNext", r.URL.Query().Get("offset"))
		_, _ = w.Write([]byte(`{"records":[{"id":"rec2","fields":{"Checkout Number":8}}]}`))
	})

	recs, err := newTestClient(srv.URL).List(context.Background(), "Order Table", Query{
		View: "Grid view",
		Sort: []Sort{{Field: "Checkout Number", Direction: Desc}},
	})
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "rec1", recs[0].ID)
	assert.Equal(t, int64(9), recs[0].Fields.Int64("Checkout Number"))
	assert.Equal(t, 2024, recs[0].CreatedTime.Year())

	q := api.seen()[0].URL.Query()
	assert.Equal(t, "Grid view", q.Get("view"))
	assert.Equal(t, "Checkout Number", q.Get("sort[0][field]"))
	assert.Equal(t, "desc", q.Get("sort[0][direction]"))
}

func TestClient_ListStopsAtMaxRecords(t *testing.T) {
	srv, api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request, _ []byte) {
		_, _ = w.Write([]byte(`{"records":[{"id":"rec1","fields":{}}],"offset":"more"}`))
	})

	recs, err := newTestClient(srv.URL).List(context.Background(), "Order Table", Query{
		MaxRecords: 1,
		Fields:     []string{"Checkout Number"},
	})
	require.NoError(t, err)
	assert.Len(t, recs, 1)
	require.Len(t, api.seen(), 1)
	q := api.seen()[0].URL.Query()
	assert.Equal(t, "1", q.Get("maxRecords"))
	assert.Equal(t, "1", q.Get("pageSize"))
	assert.Equal(t, []string{"Checkout Number"}, q["fields[]"])
}

func TestClient_FindByFieldEscapesFormula(t *testing.T) {
	srv, api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request, _ []byte) {
		_, _ = w.Write([]byte(`{"records":[{"id":"recCust","fields":{"Customer ID":"O'Neil"}}]}`))
	})

	rec, err := newTestClient(srv.URL).FindByField(context.Background(), "Customer Table", "Customer ID", "O'Neil")
	require.NoError(t, err)
	assert.Equal(t, "recCust", rec.ID)
	assert.Equal(t, `{Customer ID} = 'O\'Neil'`, api.seen()[0].URL.Query().Get("filterByFormula"))
}

func TestClient_FindByFieldErrors(t *testing.T) {
	srv, _ := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request, _ []byte) {
		if strings.Contains(r.URL.Query().Get("filterByFormula"), "{ID}") {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"error":{"type":"INVALID_FILTER_BY_FORMULA","message":"Unknown field names: id"}}`))
			return
		}
		_, _ = w.Write([]byte(`{"records":[]}`))
	})
	c := newTestClient(srv.URL)

	_, err := c.FindByField(context.Background(), "Customer Table", "ID", "C-1")
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = c.FindByField(context.Background(), "Customer Table", "Customer ID", "C-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_FindNotFound(t *testing.T) {
	srv, _ := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request, _ []byte) {
		if strings.HasSuffix(r.URL.Path, "/recGood") {
			_, _ = w.Write([]byte(`{"id":"recGood","fields":{"Product Name":"Kente Scarf"}}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"NOT_FOUND"}`))
	})
	c := newTestClient(srv.URL)

	rec, err := c.Find(context.Background(), "Products", "recGood")
	require.NoError(t, err)
	assert.Equal(t, "Kente Scarf", rec.Fields.String("Product Name"))

	_, err = c.Find(context.Background(), "Products", "recMissing")
	assert.ErrorIs(t, err, ErrNotFound)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "NOT_FOUND", apiErr.Type)
}

func TestClient_CreateManyBatchesByTen(t *testing.T) {
	var n int
	srv, api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request, body []byte) {
		var req createRequest
		assert.NoError(t, json.Unmarshal(body, &req))
		resp := listResponse{}
		for range req.Records {
			n++
			resp.Records = append(resp.Records, Record{ID: "rec" + strconv.Itoa(n)})
		}
		_ = json.NewEncoder(w).Encode(resp)
	})

	rows := make([]Fields, 23)
	for i := range rows {
		rows[i] = Fields{"Order Quantity": i + 1}
	}
	recs, err := newTestClient(srv.URL).CreateMany(context.Background(), "Order Table", rows)
	require.NoError(t, err)
	assert.Len(t, recs, 23)
	require.Len(t, api.seen(), 3)
	for _, r := range api.seen() {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
	}
}

func TestClient_CreateManyPartialFailure(t *testing.T) {
	var calls int
	srv, _ := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request, body []byte) {
		calls++
		if calls == 2 {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"error":{"type":"INVALID_VALUE_FOR_COLUMN","message":"bad"}}`))
			return
		}
		var req createRequest
		_ = json.Unmarshal(body, &req)
		resp := listResponse{}
		for i := range req.Records {
			resp.Records = append(resp.Records, Record{ID: "rec" + strconv.Itoa(i)})
		}
		_ = json.NewEncoder(w).Encode(resp)
	})

	rows := make([]Fields, 15)
	for i := range rows {
		rows[i] = Fields{}
	}
	recs, err := newTestClient(srv.URL).CreateMany(context.Background(), "Order Table", rows)
	require.Error(t, err)
	assert.Len(t, recs, 10, "first batch stays committed")
}

func TestClient_BreakerOpensAfterServerErrors(t *testing.T) {
	srv, api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request, _ []byte) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	c := newTestClient(srv.URL)

	for i := 0; i < 5; i++ {
		_, err := c.Find(context.Background(), "Products", "rec1")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusServiceUnavailable, apiErr.Status)
	}
	_, err := c.Find(context.Background(), "Products", "rec1")
	require.Error(t, err)
	assert.Len(t, api.seen(), 5, "open breaker must not reach the server")
}

func TestClient_MissingTableIsNotNotFound(t *testing.T) {
	srv, _ := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request, _ []byte) {
		w.WriteHeader(http.StatusNotFound)
		if strings.Contains(r.URL.Path, "Customer Tabel") {
			_, _ = w.Write([]byte(`{"error":{"type":"TABLE_NOT_FOUND","message":"Could not find table Customer Tabel"}}`))
			return
		}
		_, _ = w.Write([]byte(`{"error":{"type":"MODEL_ID_NOT_FOUND","message":"Invalid model id"}}`))
	})
	c := newTestClient(srv.URL)
	ctx := context.Background()

	_, err := c.FindByField(ctx, "Customer Tabel", "Customer ID", "C-1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "TABLE_NOT_FOUND", apiErr.Type)

	_, err = c.Find(ctx, "Products", "recAny")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "MODEL_ID_NOT_FOUND", apiErr.Type)
	assert.NotErrorIs(t, err, ErrNotFound)
}
