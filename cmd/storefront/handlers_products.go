package main

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/loop-storefront/internal/httpx"
	"github.com/MikeMC777/loop-storefront/internal/product"
)

// listProductsHandler godoc
// @Summary      List products
// @Description  Catalog view with optional category filter and substring search over name and description
// @Tags         products
// @Produce      json
// @Param        view      query  string  false  "all | main | ghana | bundles"  default(all)
// @Param        q         query  string  false  "search text"
// @Param        category  query  string  false  "exact category"
// @Success      200  {object}  product.ListResponse
// @Router       /api/products [get]
func listProductsHandler(r *product.Reader) gin.HandlerFunc {
	return func(c *gin.Context) {
		view := strings.ToLower(c.DefaultQuery("view", product.ViewAll))
		q := strings.TrimSpace(c.Query("q"))

		ps := product.View(r.List(c.Request.Context()), view)
		cats := product.Categories(ps)
		if cat := c.Query("category"); cat != "" {
			ps = product.InCategory(ps, cat)
		}
		ps = product.Search(ps, q)

		c.JSON(http.StatusOK, product.ListResponse{View: view, Q: q, Products: ps, Categories: cats})
	}
}

// getProductHandler godoc
// @Summary      Get product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "record id"
// @Success      200  {object}  product.Product
// @Failure      404  {object}  httpx.HTTPError
// @Failure      500  {object}  httpx.HTTPError
// @Router       /api/products/{id} [get]
func getProductHandler(r *product.Reader) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := lookupProduct(c, r, c.Param("id"))
		if err != nil {
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// lookupProduct writes the error response itself; callers just return on err.
func lookupProduct(c *gin.Context, r *product.Reader, id string) (*product.Product, error) {
	p, err := r.Get(c.Request.Context(), id)
	switch {
	case errors.Is(err, product.ErrNotConfigured):
		if demo, ok := product.DemoProduct(id); ok {
			return demo, nil
		}
		httpx.Abort(c, http.StatusNotFound, "Product not found")
		return nil, product.ErrNotFound
	case errors.Is(err, product.ErrNotFound):
		httpx.Abort(c, http.StatusNotFound, "Product not found")
		return nil, err
	case err != nil:
		_ = c.Error(err)
		httpx.Abort(c, http.StatusInternalServerError, "Failed to fetch product")
		return nil, err
	}
	return p, nil
}
