package review

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/loop-storefront/internal/recordstore"
)

type downStore struct{ recordstore.Store }

func (downStore) List(context.Context, string, recordstore.Query) ([]recordstore.Record, error) {
	return nil, errors.New("503")
}

func TestReader_List(t *testing.T) {
	m := recordstore.NewMemory()
	m.Insert("Reviews", "rev1", recordstore.Fields{
		FieldComments:     "Lovely fabric",
		FieldCustomerName: "Efua",
		FieldRating:       5,
		FieldDate:         "3/14/2024",
		FieldReviewImage:  []any{map[string]any{"url": "https://x/r.jpg"}},
	})
	m.Insert("Reviews", "rev2", recordstore.Fields{
		"comments": "Fast delivery",
		FieldDate:  "sometime last spring",
	})

	got, err := NewReader(m, "Reviews", nil).List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "Lovely fabric", got[0].Comments)
	assert.Equal(t, "https://x/r.jpg", got[0].ReviewImage)
	assert.Equal(t, 5, got[0].Rating)
	require.NotNil(t, got[0].Date)
	assert.Equal(t, time.March, got[0].Date.Month())
	assert.Equal(t, 14, got[0].Date.Day())

	assert.Equal(t, "Fast delivery", got[1].Comments)
	assert.Nil(t, got[1].Date)
	assert.Empty(t, got[1].ReviewImage)
}

func TestReader_Unconfigured(t *testing.T) {
	got, err := NewReader(nil, "Reviews", nil).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestReader_TransportError(t *testing.T) {
	_, err := NewReader(downStore{}, "Reviews", nil).List(context.Background())
	assert.Error(t, err)
}
