package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/MikeMC777/loop-storefront/internal/cart"
	"github.com/MikeMC777/loop-storefront/internal/config"
)

func newServeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the gRPC health service",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, c)
		},
	}
}

func serve(ctx context.Context, c *cli) error {
	a, err := c.application(ctx)
	if err != nil {
		return err
	}
	carts, closeCarts, err := openCartFactory(ctx, c.cfg, c.log)
	if err != nil {
		return err
	}
	defer closeCarts()

	if err := a.health.Start(); err != nil {
		return err
	}
	defer a.health.Stop()

	if c.cfg.GRPCAddr != "" {
		lis, err := net.Listen("tcp", c.cfg.GRPCAddr)
		if err != nil {
			return err
		}
		gs := grpc.NewServer()
		a.health.Register(gs)
		go func() {
			c.log.Info("grpc health listening", zap.String("addr", c.cfg.GRPCAddr))
			if err := gs.Serve(lis); err != nil {
				c.log.Error("grpc server stopped", zap.Error(err))
			}
		}()
		defer gs.GracefulStop()
	}

	srv := &http.Server{
		Addr:              c.cfg.HTTPAddr,
		Handler:           newRouter(a, carts),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		c.log.Info("storefront listening", zap.String("addr", c.cfg.HTTPAddr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	c.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openCartFactory prefers Redis when REDIS_ADDR is set, else the bbolt file.
func openCartFactory(ctx context.Context, cfg config.Config, log *zap.Logger) (cart.Factory, func(), error) {
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		log.Info("session carts in redis", zap.String("addr", cfg.RedisAddr), zap.Duration("ttl", cfg.CartTTL))
		return cart.RedisFactory(client, cfg.CartTTL), func() { _ = client.Close() }, nil
	}
	db, err := cart.OpenBolt(cfg.CartDBPath)
	if err != nil {
		return nil, nil, err
	}
	log.Info("session carts in bbolt", zap.String("path", cfg.CartDBPath))
	return cart.BoltFactory(db), func() { _ = db.Close() }, nil
}
