package cart

import (
	"context"
	"sync"
)

// MemoryStore keeps the state in process. Safe for concurrent use.
type MemoryStore struct {
	mu    sync.Mutex
	items []Item
}

func NewMemoryStore(items ...Item) *MemoryStore {
	return &MemoryStore{items: append([]Item(nil), items...)}
}

func (m *MemoryStore) Load(context.Context) ([]Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Item(nil), m.items...), nil
}

func (m *MemoryStore) Save(_ context.Context, items []Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append([]Item(nil), items...)
	return nil
}

// Factory returns the store for one session's cart.
type Factory func(sessionID string) Store

// MemoryFactory hands out one MemoryStore per session id.
func MemoryFactory() Factory {
	var mu sync.Mutex
	stores := make(map[string]*MemoryStore)
	return func(id string) Store {
		mu.Lock()
		defer mu.Unlock()
		s, ok := stores[id]
		if !ok {
			s = NewMemoryStore()
			stores[id] = s
		}
		return s
	}
}
