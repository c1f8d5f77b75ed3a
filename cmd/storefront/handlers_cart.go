package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/MikeMC777/loop-storefront/internal/cart"
	"github.com/MikeMC777/loop-storefront/internal/httpx"
	"github.com/MikeMC777/loop-storefront/internal/order"
	"github.com/MikeMC777/loop-storefront/internal/product"
)

// HeaderCartID names the session cart. A missing id starts a new cart and
// the id is echoed back on every response.
const HeaderCartID = "X-Cart-ID"

func openCart(c *gin.Context, carts cart.Factory) (*cart.Cart, bool) {
	id := c.GetHeader(HeaderCartID)
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}
	c.Header(HeaderCartID, id)
	ct, err := cart.New(c.Request.Context(), carts(id))
	if err != nil {
		_ = c.Error(err)
		httpx.Abort(c, http.StatusInternalServerError, "Failed to load cart")
		return nil, false
	}
	return ct, true
}

func saveFailed(c *gin.Context, err error) {
	_ = c.Error(err)
	httpx.Abort(c, http.StatusInternalServerError, "Failed to save cart")
}

// getCartHandler godoc
// @Summary  Show the session cart
// @Tags     cart
// @Produce  json
// @Param    X-Cart-ID  header    string  false  "cart session id"
// @Success  200        {object}  cart.Response
// @Router   /api/cart [get]
func getCartHandler(carts cart.Factory) gin.HandlerFunc {
	return func(c *gin.Context) {
		ct, ok := openCart(c, carts)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, cart.NewResponse(ct))
	}
}

// addCartItemHandler godoc
// @Summary  Add one unit of a product
// @Tags     cart
// @Accept   json
// @Produce  json
// @Param    X-Cart-ID  header    string               false  "cart session id"
// @Param    payload    body      cart.AddItemRequest  true   "product"
// @Success  200        {object}  cart.Response
// @Failure  400        {object}  httpx.HTTPError
// @Failure  404        {object}  httpx.HTTPError
// @Router   /api/cart/items [post]
func addCartItemHandler(carts cart.Factory, r *product.Reader) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in cart.AddItemRequest
		if err := c.ShouldBindJSON(&in); err != nil || in.ProductID == "" {
			httpx.Abort(c, http.StatusBadRequest, "productId is required")
			return
		}
		p, err := lookupProduct(c, r, in.ProductID)
		if err != nil {
			return
		}
		ct, ok := openCart(c, carts)
		if !ok {
			return
		}
		if err := ct.Add(c.Request.Context(), *p); err != nil {
			saveFailed(c, err)
			return
		}
		c.JSON(http.StatusOK, cart.NewResponse(ct))
	}
}

// setCartItemHandler godoc
// @Summary  Set a line's quantity
// @Description  0 or less removes the line; unknown products are ignored
// @Tags     cart
// @Accept   json
// @Produce  json
// @Param    X-Cart-ID  header    string                   false  "cart session id"
// @Param    productId  path      string                   true   "product record id"
// @Param    payload    body      cart.SetQuantityRequest  true   "quantity"
// @Success  200        {object}  cart.Response
// @Router   /api/cart/items/{productId} [put]
func setCartItemHandler(carts cart.Factory) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in cart.SetQuantityRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.Abort(c, http.StatusBadRequest, "invalid json")
			return
		}
		ct, ok := openCart(c, carts)
		if !ok {
			return
		}
		if err := ct.SetQuantity(c.Request.Context(), c.Param("productId"), in.Quantity); err != nil {
			saveFailed(c, err)
			return
		}
		c.JSON(http.StatusOK, cart.NewResponse(ct))
	}
}

// removeCartItemHandler godoc
// @Summary  Remove a line
// @Tags     cart
// @Produce  json
// @Param    X-Cart-ID  header    string  false  "cart session id"
// @Param    productId  path      string  true   "product record id"
// @Success  200        {object}  cart.Response
// @Router   /api/cart/items/{productId} [delete]
func removeCartItemHandler(carts cart.Factory) gin.HandlerFunc {
	return func(c *gin.Context) {
		ct, ok := openCart(c, carts)
		if !ok {
			return
		}
		if err := ct.Remove(c.Request.Context(), c.Param("productId")); err != nil {
			saveFailed(c, err)
			return
		}
		c.JSON(http.StatusOK, cart.NewResponse(ct))
	}
}

// clearCartHandler godoc
// @Summary  Empty the cart
// @Tags     cart
// @Produce  json
// @Param    X-Cart-ID  header    string  false  "cart session id"
// @Success  200        {object}  cart.Response
// @Router   /api/cart [delete]
func clearCartHandler(carts cart.Factory) gin.HandlerFunc {
	return func(c *gin.Context) {
		ct, ok := openCart(c, carts)
		if !ok {
			return
		}
		if err := ct.Clear(c.Request.Context()); err != nil {
			saveFailed(c, err)
			return
		}
		c.JSON(http.StatusOK, cart.NewResponse(ct))
	}
}

// checkoutCartHandler godoc
// @Summary  Check out the session cart
// @Description  The cart is cleared only after the order lines were written
// @Tags     cart
// @Accept   json
// @Produce  json
// @Param    X-Cart-ID  header    string                     true  "cart session id"
// @Param    payload    body      order.CheckoutCartRequest  true  "customer"
// @Success  201        {object}  order.CreateOrderResponse
// @Failure  400        {object}  httpx.HTTPError
// @Failure  404        {object}  httpx.HTTPError
// @Failure  500        {object}  httpx.HTTPError
// @Router   /api/cart/checkout [post]
func checkoutCartHandler(carts cart.Factory, co *order.Checkout) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in order.CheckoutCartRequest
		if err := c.ShouldBindJSON(&in); err != nil || in.CustomerID == "" {
			httpx.Abort(c, http.StatusBadRequest, "customerId is required")
			return
		}
		ct, ok := openCart(c, carts)
		if !ok {
			return
		}
		if ct.Len() == 0 {
			httpx.Abort(c, http.StatusBadRequest, "Cart is empty")
			return
		}
		res, err := co.SubmitCart(c.Request.Context(), ct, in.CustomerID, in.Comments)
		if err != nil {
			writeCheckoutError(c, err)
			return
		}
		c.JSON(http.StatusCreated, order.NewCreateOrderResponse(res))
	}
}
