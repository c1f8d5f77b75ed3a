package cart

// Response is the cart as returned over HTTP. Money is fixed to 2 decimals.
// swagger:model
type Response struct {
	Items                      []Item `json:"items"`
	TotalItems                 int    `json:"totalItems"`
	Subtotal                   string `json:"subtotal" example:"40.00"`
	ShippingTotal              string `json:"shippingTotal" example:"10.00"`
	GrandTotal                 string `json:"grandTotal" example:"50.00"`
	HasPendingShippingEstimate bool   `json:"hasPendingShippingEstimate"`
}

// AddItemRequest adds one unit of a catalog product.
// swagger:model
type AddItemRequest struct {
	ProductID string `json:"productId" example:"recA1b2C3d4E5f6G7"`
}

// SetQuantityRequest replaces a line's quantity; 0 or less removes it.
// swagger:model
type SetQuantityRequest struct {
	Quantity int `json:"quantity" example:"2"`
}

func NewResponse(c *Cart) Response {
	t := c.Totals()
	return Response{
		Items:                      c.Items(),
		TotalItems:                 t.TotalItems,
		Subtotal:                   t.Subtotal.StringFixed(2),
		ShippingTotal:              t.ShippingTotal.StringFixed(2),
		GrandTotal:                 t.GrandTotal.StringFixed(2),
		HasPendingShippingEstimate: t.PendingShippingEstimate,
	}
}
