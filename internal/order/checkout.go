// Package order turns a cart snapshot into order-line and checkout-summary
// records.
package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/MikeMC777/loop-storefront/internal/cart"
	"github.com/MikeMC777/loop-storefront/internal/customer"
	"github.com/MikeMC777/loop-storefront/internal/recordstore"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrNoRecords means nothing was left to write; no write was attempted.
	ErrNoRecords = errors.New("no order records to create")
)

// CustomerResolver maps a shopper-entered id to a customer record reference.
type CustomerResolver interface {
	Resolve(ctx context.Context, customerID string) (string, error)
}

type Options struct {
	// Store nil switches to demo mode: nothing is written.
	Store         recordstore.Store
	Customers     CustomerResolver
	Allocator     Allocator
	OrdersTable   string
	CheckoutTable string
	Log           *zap.Logger
	Node          *snowflake.Node
}

type Checkout struct {
	store         recordstore.Store
	customers     CustomerResolver
	alloc         Allocator
	ordersTable   string
	checkoutTable string
	log           *zap.Logger
	node          *snowflake.Node
}

func NewCheckout(o Options) *Checkout {
	c := &Checkout{
		store:         o.Store,
		customers:     o.Customers,
		alloc:         o.Allocator,
		ordersTable:   o.OrdersTable,
		checkoutTable: o.CheckoutTable,
		log:           o.Log,
		node:          o.Node,
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	if c.alloc == nil && c.store != nil {
		c.alloc = MaxPlusOne{Store: c.store, Table: c.ordersTable}
	}
	if c.node == nil {
		c.node, _ = snowflake.NewNode(1)
	}
	return c
}

type resolvedOrder struct {
	Order
	ref string
}

// Submit writes one order line per product under a single checkout number,
// then a summary row. checkoutNumber 0 means allocate one.
//
// Orders whose customer cannot be resolved are skipped. A failed line write
// fails the call; a failed summary write does not and is reported in the
// Result.
func (c *Checkout) Submit(ctx context.Context, orders []Order, checkoutNumber int64) (*Result, error) {
	if c.store == nil {
		return c.demo(orders), nil
	}

	res := &Result{}
	var kept []resolvedOrder
	lines := 0
	for _, o := range orders {
		ref, err := c.customers.Resolve(ctx, o.CustomerID)
		if errors.Is(err, customer.ErrNotFound) {
			c.log.Warn("customer not found, skipping order", zap.String("customer_id", o.CustomerID))
			res.Skipped = append(res.Skipped, o.CustomerID)
			continue
		}
		if err != nil {
			return nil, err
		}
		kept = append(kept, resolvedOrder{Order: o, ref: ref})
		lines += len(o.Products)
	}

	if lines == 0 {
		if len(orders) > 0 && len(res.Skipped) == len(orders) {
			return res, fmt.Errorf("%w: %w", ErrNoRecords, ErrCustomerNotFound)
		}
		return res, ErrNoRecords
	}

	number := checkoutNumber
	if number == 0 {
		n, err := c.alloc.Next(ctx)
		if err != nil {
			return nil, err
		}
		number = n
	}
	res.CheckoutNumber = number

	rows := make([]recordstore.Fields, 0, lines)
	for _, o := range kept {
		for _, li := range o.Products {
			rows = append(rows, recordstore.Fields{
				FieldCustomerRef:    []string{o.ref},
				FieldProductRef:     []string{li.ProductID},
				FieldQuantity:       li.Quantity,
				FieldCheckoutNumber: number,
				FieldComments:       o.Comments,
			})
		}
	}
	created, err := c.store.CreateMany(ctx, c.ordersTable, rows)
	if err != nil {
		return nil, fmt.Errorf("write order lines: %w", err)
	}
	for _, r := range created {
		res.OrderIDs = append(res.OrderIDs, r.ID)
	}
	res.LinesWritten = len(created)

	if err := c.writeSummary(ctx, number, kept); err != nil {
		// Lines stay committed; the summary row is simply missing.
		c.log.Error("checkout summary not written",
			zap.Int64("checkout_number", number), zap.Error(err))
		res.SummaryError = err
	} else {
		res.SummaryWritten = true
	}

	c.log.Info("checkout recorded",
		zap.Int64("checkout_number", number),
		zap.Int("lines", res.LinesWritten),
		zap.Bool("summary", res.SummaryWritten))
	return res, nil
}

func (c *Checkout) writeSummary(ctx context.Context, number int64, orders []resolvedOrder) error {
	total, shipping := decimal.Zero, decimal.Zero
	var names []string
	for _, o := range orders {
		for _, li := range o.Products {
			total = total.Add(li.Price.Mul(decimal.NewFromInt(int64(li.Quantity))))
			names = append(names, li.ProductName)
		}
		shipping = shipping.Add(o.TotalShipping)
	}
	_, err := c.store.CreateMany(ctx, c.checkoutTable, []recordstore.Fields{{
		FieldCheckoutNumber:  number,
		FieldSummaryCustomer: []string{orders[0].ref},
		FieldTotalAmount:     json.Number(total.StringFixed(2)),
		FieldTotalShipping:   json.Number(shipping.StringFixed(2)),
		FieldProducts:        strings.Join(names, ", "),
	}})
	return err
}

func (c *Checkout) demo(orders []Order) *Result {
	c.log.Warn("record store not configured, order not saved", zap.Int("orders", len(orders)))
	ids := make([]string, len(orders))
	for i := range orders {
		ids[i] = fmt.Sprintf("demo-order-%d", i)
	}
	return &Result{
		CheckoutNumber: c.node.Generate().Int64(),
		OrderIDs:       ids,
		SummaryWritten: false,
		Demo:           true,
	}
}

// SubmitCart checks out the whole cart as one order and clears it only after
// the lines were written. On any failure the cart is left as it was.
func (c *Checkout) SubmitCart(ctx context.Context, ct *cart.Cart, customerID, comments string) (*Result, error) {
	items := ct.Items()
	if len(items) == 0 {
		return nil, ErrNoRecords
	}
	o := Order{
		CustomerID:    customerID,
		Comments:      comments,
		TotalAmount:   ct.Subtotal(),
		TotalShipping: ct.ShippingTotal(),
	}
	for _, it := range items {
		o.Products = append(o.Products, LineItem{
			ProductID:   it.ID,
			ProductName: it.Name,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}

	res, err := c.Submit(ctx, []Order{o}, 0)
	if err != nil {
		return res, err
	}
	if err := ct.Clear(ctx); err != nil {
		c.log.Warn("order placed but cart not cleared",
			zap.Int64("checkout_number", res.CheckoutNumber), zap.Error(err))
	}
	return res, nil
}
