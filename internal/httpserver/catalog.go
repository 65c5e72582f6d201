package httpserver

import (
	"log"
	"net/http"

	"storefront/internal/storefront"

	"github.com/gin-gonic/gin"
)

func listProductsHandler(svc CatalogService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.List(c.Request.Context())
		if err != nil {
			logger.Printf("catalog: list error=%v", err)
			writeError(c, http.StatusInternalServerError, "catalog unavailable")
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

func listingPageHandler(svc CatalogService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.List(c.Request.Context())
		if err != nil {
			logger.Printf("catalog: listing page error=%v", err)
			c.HTML(http.StatusInternalServerError, "index.html", storefront.ListingError())
			return
		}
		c.HTML(http.StatusOK, "index.html", storefront.NewListing(products))
	}
}

func productPageHandler(svc CatalogService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		lookup := svc.Find(c.Request.Context(), c.Param("id"))
		if lookup.Err != nil {
			logger.Printf("catalog: detail page id=%s error=%v", c.Param("id"), lookup.Err)
		}
		page, status := storefront.NewDetail(lookup)
		c.HTML(status, "product.html", page)
	}
}

func staticPageHandler(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, name, nil)
	}
}
