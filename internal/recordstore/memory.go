package recordstore

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cast"
)

// Memory is an in-process Store. A field is known to a table once it was
// declared or appears on any of its records; FindByField on any other field
// reports ErrUnknownField like the hosted API does.
type Memory struct {
	mu       sync.RWMutex
	tables   map[string][]Record
	declared map[string]map[string]struct{}
}

func NewMemory() *Memory {
	return &Memory{
		tables:   make(map[string][]Record),
		declared: make(map[string]map[string]struct{}),
	}
}

// Declare registers field names on a table without inserting a record.
func (m *Memory) Declare(table string, fields ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	set, ok := m.declared[table]
	if !ok {
		set = make(map[string]struct{})
		m.declared[table] = set
	}
	for _, f := range fields {
		set[f] = struct{}{}
	}
}

// Insert adds one record. An empty id is replaced by a generated one.
func (m *Memory) Insert(table, id string, f Fields) Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.insertLocked(table, id, f)
}

// Records returns a copy of every record of a table in insertion order.
func (m *Memory) Records(table string) []Record {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return copyRecords(m.tables[table])
}

func (m *Memory) Find(_ context.Context, table, id string) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.tables[table] {
		if r.ID == id {
			cp := r
			cp.Fields = r.Fields.clone()
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) List(_ context.Context, table string, q Query) ([]Record, error) {
	m.mu.RLock()
	out := copyRecords(m.tables[table])
	m.mu.RUnlock()

	if len(q.Sort) > 0 {
		sort.SliceStable(out, func(i, j int) bool {
			for _, s := range q.Sort {
				c := compareValues(out[i].Fields[s.Field], out[j].Fields[s.Field], s.Direction)
				if c != 0 {
					return c < 0
				}
			}
			return false
		})
	}
	if q.MaxRecords > 0 && len(out) > q.MaxRecords {
		out = out[:q.MaxRecords]
	}
	for i := range out {
		out[i].Fields = out[i].Fields.project(q.Fields)
	}
	return out, nil
}

func (m *Memory) FindByField(_ context.Context, table, field, value string) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.knownLocked(table, field) {
		return nil, ErrUnknownField
	}
	for _, r := range m.tables[table] {
		if v, ok := r.Fields[field]; ok && toString(v) == value {
			cp := r
			cp.Fields = r.Fields.clone()
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) CreateMany(_ context.Context, table string, rows []Fields) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Record, 0, len(rows))
	for _, f := range rows {
		out = append(out, m.insertLocked(table, "", f))
	}
	return out, nil
}

func (m *Memory) insertLocked(table, id string, f Fields) Record {
	if id == "" {
		id = newRecordID()
	}
	rec := Record{ID: id, CreatedTime: time.Now().UTC(), Fields: f.clone()}
	m.tables[table] = append(m.tables[table], rec)
	cp := rec
	cp.Fields = rec.Fields.clone()
	return cp
}

func (m *Memory) knownLocked(table, field string) bool {
	if _, ok := m.declared[table][field]; ok {
		return true
	}
	for _, r := range m.tables[table] {
		if _, ok := r.Fields[field]; ok {
			return true
		}
	}
	return false
}

func copyRecords(in []Record) []Record {
	out := make([]Record, len(in))
	for i, r := range in {
		out[i] = r
		out[i].Fields = r.Fields.clone()
	}
	return out
}

// compareValues orders numbers numerically and everything else as text.
// Empty cells sort last in both directions.
func compareValues(a, b any, dir Direction) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return 1
		default:
			return -1
		}
	}
	var c int
	fa, okA := toFloat(a)
	fb, okB := toFloat(b)
	if okA && okB {
		switch {
		case fa < fb:
			c = -1
		case fa > fb:
			c = 1
		}
	} else {
		c = strings.Compare(toString(a), toString(b))
	}
	if dir == Desc {
		c = -c
	}
	return c
}

func toFloat(v any) (float64, bool) {
	if n, ok := v.(json.Number); ok {
		f, err := n.Float64()
		return f, err == nil
	}
	if _, ok := v.(string); ok {
		return 0, false
	}
	f, err := cast.ToFloat64E(v)
	return f, err == nil
}

func toString(v any) string {
	if n, ok := v.(json.Number); ok {
		return n.String()
	}
	return cast.ToString(v)
}
