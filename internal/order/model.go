package order

import "github.com/shopspring/decimal"

// Field names of the orders and checkout tables.
const (
	FieldCustomerRef    = "Customer Idd"
	FieldProductRef     = "Product Id"
	FieldQuantity       = "Order Quantity"
	FieldCheckoutNumber = "Checkout Number"
	FieldComments       = "comments"

	FieldSummaryCustomer = "Customer Id"
	FieldTotalAmount     = "Total Amount"
	FieldTotalShipping   = "Total Shipping"
	FieldProducts        = "Products"
)

// LineItem is a cart line captured at checkout time. ProductID is the
// product's record id; Price is never re-read from the catalog.
type LineItem struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

type Order struct {
	CustomerID     string
	Comments       string
	Products       []LineItem
	TotalAmount    decimal.Decimal
	TotalShipping  decimal.Decimal
	CheckoutNumber int64
}

// Result separates the committed order lines from the best-effort summary.
type Result struct {
	CheckoutNumber int64
	OrderIDs       []string
	LinesWritten   int
	SummaryWritten bool
	SummaryError   error
	// Skipped lists customer ids whose orders were dropped because the
	// customer could not be resolved.
	Skipped []string
	Demo    bool
}
