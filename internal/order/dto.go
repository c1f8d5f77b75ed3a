package order

import "github.com/shopspring/decimal"

// CreateOrderRequest is the checkout payload posted by the storefront.
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	CustomerID    string          `json:"customerId" example:"AMA-7"`
	Comments      string          `json:"comments" example:"Leave at the gate"`
	Products      []LineItem      `json:"products"`
	TotalAmount   decimal.Decimal `json:"totalAmount" swaggertype:"number" example:"40"`
	TotalShipping decimal.Decimal `json:"totalShipping" swaggertype:"number" example:"10"`
	// optional; allocated when omitted
	CheckoutNumber int64 `json:"checkoutNumber,omitempty"`
}

// CreateOrderResponse is returned with 201.
// swagger:model CreateOrderResponse
type CreateOrderResponse struct {
	Success        bool     `json:"success"`
	OrderIDs       []string `json:"orderIds"`
	CheckoutNumber int64    `json:"checkoutNumber" example:"1042"`
	SummaryWritten bool     `json:"summaryWritten"`
}

// CheckoutCartRequest checks out the session cart.
// swagger:model CheckoutCartRequest
type CheckoutCartRequest struct {
	CustomerID string `json:"customerId" example:"AMA-7"`
	Comments   string `json:"comments"`
}

func (r CreateOrderRequest) Order() Order {
	return Order{
		CustomerID:     r.CustomerID,
		Comments:       r.Comments,
		Products:       r.Products,
		TotalAmount:    r.TotalAmount,
		TotalShipping:  r.TotalShipping,
		CheckoutNumber: r.CheckoutNumber,
	}
}

func NewCreateOrderResponse(res *Result) CreateOrderResponse {
	ids := res.OrderIDs
	if ids == nil {
		ids = []string{}
	}
	return CreateOrderResponse{
		Success:        true,
		OrderIDs:       ids,
		CheckoutNumber: res.CheckoutNumber,
		SummaryWritten: res.SummaryWritten,
	}
}
