package main

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/MikeMC777/loop-storefront/internal/config"
	"github.com/MikeMC777/loop-storefront/internal/customer"
	"github.com/MikeMC777/loop-storefront/internal/health"
	"github.com/MikeMC777/loop-storefront/internal/images"
	"github.com/MikeMC777/loop-storefront/internal/order"
	"github.com/MikeMC777/loop-storefront/internal/product"
	"github.com/MikeMC777/loop-storefront/internal/recordstore"
	"github.com/MikeMC777/loop-storefront/internal/review"
)

// app is the wired set of services shared by the server and the CLI.
type app struct {
	cfg config.Config
	log *zap.Logger

	store     recordstore.Store // nil in demo mode
	products  *product.Reader
	customers *customer.Resolver // nil in demo mode
	checkout  *order.Checkout
	images    *images.Service
	proxy     *images.Proxy
	reviews   *review.Reader
	health    *health.Checker

	closers []func()
}

func newApp(ctx context.Context, cfg config.Config, log *zap.Logger) (*app, error) {
	a := &app{cfg: cfg, log: log}
	store, err := a.openStore(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.wire(store)
	return a, nil
}

// wire builds every service on top of store; nil means demo mode.
func (a *app) wire(store recordstore.Store) {
	t := a.cfg.Tables
	a.store = store
	a.products = product.NewReader(store, t.Products, t.ProductsView, a.log.Named("catalog"))
	if store != nil {
		a.customers = customer.NewResolver(store, t.Customers, a.log.Named("customer"))
	}
	opts := order.Options{
		Store:         store,
		OrdersTable:   t.Orders,
		CheckoutTable: t.Checkout,
		Log:           a.log.Named("checkout"),
	}
	if a.customers != nil {
		opts.Customers = a.customers
	}
	a.checkout = order.NewCheckout(opts)
	a.images = images.NewService(store, t.Products, a.log.Named("images"))
	a.proxy = images.NewProxy(a.cfg.ImageProxyHosts, a.cfg.RequestTimeout)
	a.reviews = review.NewReader(store, t.Reviews, a.log.Named("reviews"))
	a.health = health.New(store, t.Products, a.cfg.RequestTimeout, a.log.Named("health"))
}

func (a *app) openStore(ctx context.Context) (recordstore.Store, error) {
	switch a.cfg.RecordStore {
	case config.BackendMemory:
		m := recordstore.NewMemory()
		seedMemory(m, a.cfg.Tables)
		a.log.Info("using in-memory record store with demo data")
		return m, nil

	case config.BackendPostgres:
		if err := recordstore.Migrate(a.cfg.PostgresDSN); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		pool, err := recordstore.OpenPG(ctx, a.cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, pool.Close)
		return recordstore.NewPGStore(pool), nil

	case config.BackendAirtable:
		if !a.cfg.AirtableConfigured() {
			a.log.Warn("AIRTABLE_API_KEY or AIRTABLE_BASE_ID missing, running in demo mode")
			return nil, nil
		}
		return recordstore.NewClient(recordstore.ClientOptions{
			BaseURL: a.cfg.AirtableAPIURL,
			BaseID:  a.cfg.AirtableBaseID,
			APIKey:  a.cfg.AirtableAPIKey,
			Timeout: a.cfg.RequestTimeout,
		}), nil

	default:
		return nil, fmt.Errorf("unknown RECORD_STORE %q", a.cfg.RecordStore)
	}
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

// DemoCustomerID resolves in the seeded memory store.
const DemoCustomerID = "DEMO-001"

// seedMemory loads the demo catalog and one customer so a local run can go
// all the way through checkout.
func seedMemory(m *recordstore.Memory, t config.Tables) {
	m.Declare(t.Customers, customer.DefaultFields...)
	m.Declare(t.Orders, order.FieldCheckoutNumber)
	m.Insert(t.Customers, "", recordstore.Fields{
		"Customer ID": DemoCustomerID,
		"Name":        "Demo Customer",
		"Email":       "demo@example.com",
	})
	for _, p := range product.DemoProducts() {
		atts := make([]recordstore.Attachment, 0, len(p.Images))
		for _, u := range p.Images {
			atts = append(atts, recordstore.Attachment{URL: u})
		}
		m.Insert(t.Products, p.ID, recordstore.Fields{
			product.FieldName:        p.Name,
			product.FieldDescription: p.Description,
			product.FieldPrice:       json.Number(p.Price.String()),
			product.FieldType:        []any{p.Category},
			product.FieldImages:      atts,
			product.FieldIncludeShip: "Includes shipping",
			product.FieldShipping:    json.Number("5.00"),
		})
	}
}
