package httpserver

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"storefront/internal/domain"
	"storefront/internal/service/catalog"
	"storefront/internal/service/checkout"
	"storefront/internal/storefront"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CatalogService is the read side used by the JSON endpoint and the pages.
type CatalogService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Find(ctx context.Context, id string) catalog.Lookup
}

// CheckoutService starts a hosted checkout.
type CheckoutService interface {
	Create(ctx context.Context, in checkout.Input) (*domain.CheckoutSession, error)
}

// Pinger reports readiness of the catalog store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps are the collaborators injected at startup.
type Deps struct {
	Catalog  CatalogService
	Checkout CheckoutService
	Store    Pinger
	Metrics  *Metrics
}

// Options tune the HTTP surface.
type Options struct {
	// PublicBaseURL is used for checkout redirects when the request has no
	// usable Origin header.
	PublicBaseURL      string
	CORSAllowedOrigins []string
}

// buildRouter wires routes for the storefront.
func buildRouter(logger *log.Logger, deps Deps, opts Options) (*gin.Engine, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if deps.Catalog == nil || deps.Checkout == nil {
		return nil, errors.New("httpserver: catalog and checkout services are required")
	}
	tmpl, err := storefront.Templates()
	if err != nil {
		return nil, err
	}

	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	if deps.Metrics != nil {
		router.Use(deps.Metrics.Middleware())
	}
	if len(opts.CORSAllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins: opts.CORSAllowedOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders: []string{"Origin", "Content-Type"},
			MaxAge:       12 * time.Hour,
		}))
	}
	router.SetHTMLTemplate(tmpl)

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.Store))
	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	router.GET("/", listingPageHandler(deps.Catalog, logger))
	router.GET("/product/:id", productPageHandler(deps.Catalog, logger))
	router.GET("/success.html", staticPageHandler("success.html"))
	router.GET("/cancel.html", staticPageHandler("cancel.html"))
	router.StaticFS("/static", storefront.Static())

	router.GET("/products.json", listProductsHandler(deps.Catalog, logger))
	router.POST("/create-checkout-session", createCheckoutSessionHandler(deps.Checkout, opts.PublicBaseURL, logger))

	return router, nil
}
