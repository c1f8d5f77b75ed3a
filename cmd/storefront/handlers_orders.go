package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/loop-storefront/internal/httpx"
	"github.com/MikeMC777/loop-storefront/internal/order"
)

const (
	msgMissingOrderFields = "Missing required fields. Customer ID, products, and total amount are required."
	msgOrderFailed        = "Failed to create order. Please check server logs for details."
)

// createOrderHandler godoc
// @Summary      Submit an order
// @Description  Writes one order line per product under a shared checkout number, then a checkout summary
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        payload  body      order.CreateOrderRequest  true  "order"
// @Success      201      {object}  order.CreateOrderResponse
// @Failure      400      {object}  httpx.HTTPError
// @Failure      404      {object}  httpx.HTTPError
// @Failure      500      {object}  httpx.HTTPError
// @Router       /api/orders [post]
func createOrderHandler(co *order.Checkout) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in order.CreateOrderRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.Abort(c, http.StatusBadRequest, "invalid json")
			return
		}
		if in.CustomerID == "" || len(in.Products) == 0 || in.TotalAmount.IsZero() {
			httpx.Abort(c, http.StatusBadRequest, msgMissingOrderFields)
			return
		}
		for _, li := range in.Products {
			if li.ProductID == "" || li.Quantity <= 0 || li.Price.IsNegative() {
				httpx.Abort(c, http.StatusBadRequest, "each product needs productId, a positive quantity and a non-negative price")
				return
			}
		}

		res, err := co.Submit(c.Request.Context(), []order.Order{in.Order()}, in.CheckoutNumber)
		if err != nil {
			writeCheckoutError(c, err)
			return
		}
		c.JSON(http.StatusCreated, order.NewCreateOrderResponse(res))
	}
}

func writeCheckoutError(c *gin.Context, err error) {
	_ = c.Error(err)
	switch {
	case errors.Is(err, order.ErrCustomerNotFound):
		httpx.Abort(c, http.StatusNotFound, "Customer not found")
	case errors.Is(err, order.ErrNoRecords):
		httpx.Abort(c, http.StatusBadRequest, "No order lines to create")
	default:
		httpx.Abort(c, http.StatusInternalServerError, msgOrderFailed)
	}
}
