package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketCarts = []byte("carts")

// CLIKey is the fixed key of the single command-line cart.
const CLIKey = "cart"

// OpenBolt opens (creating if needed) the cart database file.
func OpenBolt(path string) (*bolt.DB, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open cart db %s: %w", path, err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketCarts)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init cart db: %w", err)
	}
	return db, nil
}

// BoltStore keeps one cart as a JSON value under key in the carts bucket.
type BoltStore struct {
	db  *bolt.DB
	key []byte
}

func NewBoltStore(db *bolt.DB, key string) *BoltStore {
	return &BoltStore{db: db, key: []byte(key)}
}

// BoltFactory stores each session cart under "session:<id>".
func BoltFactory(db *bolt.DB) Factory {
	return func(id string) Store { return NewBoltStore(db, "session:"+id) }
}

func (s *BoltStore) Load(context.Context) ([]Item, error) {
	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketCarts)
		if b == nil {
			return nil
		}
		if v := b.Get(s.key); v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return items, nil
}

func (s *BoltStore) Save(_ context.Context, items []Item) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketCarts)
		if err != nil {
			return err
		}
		return b.Put(s.key, raw)
	})
}
