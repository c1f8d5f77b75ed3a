package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MikeMC777/loop-storefront/internal/recordstore"
)

type toggleStore struct {
	recordstore.Store
	down bool
}

func (s *toggleStore) List(context.Context, string, recordstore.Query) ([]recordstore.Record, error) {
	if s.down {
		return nil, errors.New("no route to host")
	}
	return nil, nil
}

func check(t *testing.T, c *Checker, service string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	res, err := c.Server().Check(context.Background(), &healthpb.HealthCheckRequest{Service: service})
	require.NoError(t, err)
	return res.GetStatus()
}

func TestChecker_TracksStore(t *testing.T) {
	st := &toggleStore{}
	c := New(st, "Products", 0, nil)
	assert.Equal(t, healthpb.HealthCheckResponse_UNKNOWN, check(t, c, ServiceRecordStore))

	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, c.RunOnce(context.Background()))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, c, ServiceRecordStore))

	st.down = true
	c.RunOnce(context.Background())
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, c, ServiceRecordStore))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, c, ""))
}

func TestChecker_Unconfigured(t *testing.T) {
	c := New(nil, "Products", 0, nil)
	require.NoError(t, c.Start())
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, c, ServiceRecordStore))

	c.Stop()
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, c, ""))
}

func TestChecker_WithMemoryStore(t *testing.T) {
	c := New(recordstore.NewMemory(), "Products", 0, nil)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, c.RunOnce(context.Background()))
}
