package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/loop-storefront/internal/customer"
	"github.com/MikeMC777/loop-storefront/internal/httpx"
	"github.com/MikeMC777/loop-storefront/internal/images"
	"github.com/MikeMC777/loop-storefront/internal/product"
	"github.com/MikeMC777/loop-storefront/internal/review"
)

// getImagesHandler godoc
// @Summary      Current images of a product
// @Description  Always re-reads the record; an empty list means the record has no images
// @Tags         images
// @Produce      json
// @Param        recordId  path      string  true  "product record id"
// @Success      200       {object}  images.Response
// @Failure      404       {object}  httpx.HTTPError
// @Failure      500       {object}  httpx.HTTPError
// @Router       /api/images/{recordId} [get]
func getImagesHandler(s *images.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		urls, err := s.Resolve(c.Request.Context(), c.Param("recordId"))
		if errors.Is(err, images.ErrNotFound) {
			httpx.Abort(c, http.StatusNotFound, "Record not found")
			return
		}
		if err != nil {
			_ = c.Error(err)
			httpx.Abort(c, http.StatusInternalServerError, "Failed to fetch images")
			return
		}
		c.JSON(http.StatusOK, images.NewResponse(urls))
	}
}

// imageProxyHandler godoc
// @Summary      Relay an image
// @Description  Either url, or recordId with optional tableName and fieldName to resolve a fresh attachment url
// @Tags         images
// @Produce      image/jpeg,image/png,image/webp
// @Param        url        query  string  false  "image url"
// @Param        recordId   query  string  false  "record id"
// @Param        tableName  query  string  false  "table, products by default"
// @Param        fieldName  query  string  false  "attachment field, images by default"
// @Success      200
// @Failure      400  {object}  httpx.HTTPError
// @Failure      403  {object}  httpx.HTTPError
// @Failure      404  {object}  httpx.HTTPError
// @Failure      500  {object}  httpx.HTTPError
// @Failure      502  {object}  httpx.HTTPError
// @Router       /api/image-proxy [get]
func imageProxyHandler(p *images.Proxy, s *images.Service, productsTable string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		target := c.Query("url")
		if target == "" && c.Query("recordId") != "" {
			table := c.DefaultQuery("tableName", productsTable)
			field := c.DefaultQuery("fieldName", product.FieldImages)
			urls, err := s.ResolveField(ctx, table, c.Query("recordId"), field)
			switch {
			case errors.Is(err, images.ErrNotFound):
				httpx.Abort(c, http.StatusNotFound, "Record not found")
				return
			case err != nil:
				_ = c.Error(err)
				httpx.Abort(c, http.StatusInternalServerError, "Failed to proxy image")
				return
			case len(urls) == 0:
				httpx.Abort(c, http.StatusNotFound, "No images found")
				return
			}
			target = urls[0]
		}

		img, err := p.Fetch(ctx, target)
		var up *images.UpstreamError
		switch {
		case errors.Is(err, images.ErrInvalidURL):
			httpx.Abort(c, http.StatusBadRequest, "Image URL is required")
			return
		case errors.Is(err, images.ErrHostNotAllowed):
			httpx.Abort(c, http.StatusForbidden, "Image host not allowed")
			return
		case errors.As(err, &up):
			httpx.Abort(c, up.Status, "Failed to fetch image")
			return
		case errors.Is(err, images.ErrTooLarge):
			httpx.Abort(c, http.StatusBadGateway, "Image too large")
			return
		case err != nil:
			_ = c.Error(err)
			httpx.Abort(c, http.StatusInternalServerError, "Failed to proxy image")
			return
		}
		c.Header("Cache-Control", images.CacheControl)
		c.Data(http.StatusOK, img.ContentType, img.Body)
	}
}

// listReviewsHandler godoc
// @Summary  List customer reviews
// @Tags     reviews
// @Produce  json
// @Success  200  {object}  review.ListResponse
// @Failure  500  {object}  httpx.HTTPError
// @Router   /api/reviews [get]
func listReviewsHandler(r *review.Reader) gin.HandlerFunc {
	return func(c *gin.Context) {
		rs, err := r.List(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			httpx.Abort(c, http.StatusInternalServerError, "Failed to fetch reviews")
			return
		}
		c.JSON(http.StatusOK, review.ListResponse{Reviews: rs})
	}
}

// customerExistsHandler godoc
// @Summary  Check a customer id
// @Tags     customers
// @Produce  json
// @Param    id   path      string  true  "customer id as given to the shopper"
// @Success  200  {object}  customer.ExistsResponse
// @Failure  500  {object}  httpx.HTTPError
// @Router   /api/customers/{id} [get]
func customerExistsHandler(r *customer.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if r == nil {
			c.JSON(http.StatusOK, customer.ExistsResponse{OK: false})
			return
		}
		_, err := r.Resolve(c.Request.Context(), c.Param("id"))
		if errors.Is(err, customer.ErrNotFound) {
			c.JSON(http.StatusOK, customer.ExistsResponse{OK: false})
			return
		}
		if err != nil {
			_ = c.Error(err)
			httpx.Abort(c, http.StatusInternalServerError, "Failed to look up customer")
			return
		}
		c.JSON(http.StatusOK, customer.ExistsResponse{OK: true})
	}
}

// ConfigResponse carries the public settings the storefront pages need.
// swagger:model
type ConfigResponse struct {
	TallyFormURL string `json:"tallyFormUrl"`
}

// getConfigHandler godoc
// @Summary  Public storefront settings
// @Tags     config
// @Produce  json
// @Success  200  {object}  ConfigResponse
// @Router   /api/config [get]
func getConfigHandler(tallyFormURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, ConfigResponse{TallyFormURL: tallyFormURL})
	}
}
