package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/MikeMC777/loop-storefront/docs"
	"github.com/MikeMC777/loop-storefront/internal/cart"
	"github.com/MikeMC777/loop-storefront/internal/httpx"
)

func newRouter(a *app, carts cart.Factory) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(a.log.Named("http")), httpx.Timeout(a.cfg.RequestTimeout))

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.GET("/products", listProductsHandler(a.products))
	api.GET("/products/:id", getProductHandler(a.products))
	api.GET("/images/:recordId", getImagesHandler(a.images))
	api.GET("/image-proxy", imageProxyHandler(a.proxy, a.images, a.cfg.Tables.Products))
	api.POST("/orders", createOrderHandler(a.checkout))
	api.GET("/reviews", listReviewsHandler(a.reviews))
	api.GET("/customers/:id", customerExistsHandler(a.customers))
	api.GET("/config", getConfigHandler(a.cfg.TallyFormURL))

	api.GET("/cart", getCartHandler(carts))
	api.DELETE("/cart", clearCartHandler(carts))
	api.POST("/cart/items", addCartItemHandler(carts, a.products))
	api.PUT("/cart/items/:productId", setCartItemHandler(carts))
	api.DELETE("/cart/items/:productId", removeCartItemHandler(carts))
	api.POST("/cart/checkout", checkoutCartHandler(carts, a.checkout))
	return r
}
