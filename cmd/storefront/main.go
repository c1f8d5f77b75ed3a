// Command storefront serves the storefront API and offers a small CLI over
// the same catalog, cart and checkout services.
//
// @title        Loop Storefront API
// @version      1.0
// @description  Catalog, cart and checkout backed by a tabular record store.
// @BasePath     /
package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/MikeMC777/loop-storefront/internal/config"
	"github.com/MikeMC777/loop-storefront/internal/logging"
)

// cli carries what every subcommand needs; fields already set are kept.
type cli struct {
	cfg config.Config
	log *zap.Logger
	a   *app
}

func (c *cli) setup() error {
	if c.log != nil {
		return nil
	}
	c.cfg = config.Load()
	log, err := logging.New(logging.Options{Mode: c.cfg.LogMode, File: c.cfg.LogFile})
	if err != nil {
		return err
	}
	c.log = log
	c.log.Info("config loaded", c.cfg.LogFields()...)
	return nil
}

func (c *cli) application(ctx context.Context) (*app, error) {
	if c.a != nil {
		return c.a, nil
	}
	a, err := newApp(ctx, c.cfg, c.log)
	if err != nil {
		return nil, err
	}
	c.a = a
	return a, nil
}

func (c *cli) close() {
	if c.a != nil {
		c.a.Close()
	}
	if c.log != nil {
		_ = c.log.Sync()
	}
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "storefront",
		Short:         "Storefront API server and cart/checkout CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},
	}
	root.AddCommand(newServeCmd(c), newProductsCmd(c), newCartCmd(c), newCheckoutCmd(c))
	return root
}

func main() {
	c := &cli{}
	err := newRootCmd(c).Execute()
	if err != nil {
		if c.log != nil {
			c.log.Error("command failed", zap.Error(err))
		} else {
			os.Stderr.WriteString(err.Error() + "\n")
		}
	}
	c.close()
	if err != nil {
		os.Exit(1)
	}
}
