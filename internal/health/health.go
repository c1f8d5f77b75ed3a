// Package health reports record store reachability over the standard gRPC
// health protocol.
package health

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MikeMC777/loop-storefront/internal/recordstore"
)

// ServiceRecordStore is the health service name of the record store probe.
const ServiceRecordStore = "storefront.RecordStore"

const probeSchedule = "@every 30s"

type Checker struct {
	srv     *health.Server
	store   recordstore.Store
	table   string
	timeout time.Duration
	sched   *cron.Cron
	log     *zap.Logger
}

// New probes by listing one record of table. A nil store is reported as
// NOT_SERVING.
func New(store recordstore.Store, table string, timeout time.Duration, log *zap.Logger) *Checker {
	if log == nil {
		log = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	c := &Checker{
		srv:     health.NewServer(),
		store:   store,
		table:   table,
		timeout: timeout,
		log:     log,
	}
	c.srv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	c.srv.SetServingStatus(ServiceRecordStore, healthpb.HealthCheckResponse_UNKNOWN)
	return c
}

func (c *Checker) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, c.srv)
}

func (c *Checker) Server() *health.Server { return c.srv }

// RunOnce probes the store and records the outcome.
func (c *Checker) RunOnce(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if c.store == nil {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	} else {
		ctx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()
		if _, err := c.store.List(ctx, c.table, recordstore.Query{MaxRecords: 1}); err != nil {
			c.log.Warn("record store probe failed", zap.String("table", c.table), zap.Error(err))
			status = healthpb.HealthCheckResponse_NOT_SERVING
		}
	}
	c.srv.SetServingStatus(ServiceRecordStore, status)
	return status
}

// Start probes now and then on a fixed schedule until Stop.
func (c *Checker) Start() error {
	c.RunOnce(context.Background())
	c.sched = cron.New()
	if _, err := c.sched.AddFunc(probeSchedule, func() {
		defer func() {
			if err := recover(); err != nil {
				c.log.Error("record store probe panicked", zap.Any("panic", err))
			}
		}()
		c.RunOnce(context.Background())
	}); err != nil {
		return err
	}
	c.sched.Start()
	return nil
}

// Stop halts the schedule and marks everything NOT_SERVING.
func (c *Checker) Stop() {
	if c.sched != nil {
		<-c.sched.Stop().Done()
	}
	c.srv.Shutdown()
}
