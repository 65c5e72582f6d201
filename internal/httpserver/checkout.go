package httpserver

import (
	"errors"
	"log"
	"net/http"
	"net/url"

	"storefront/internal/domain"
	"storefront/internal/service/checkout"

	"github.com/gin-gonic/gin"
)

type createCheckoutSessionRequest struct {
	PriceID string `json:"priceId"`
}

func createCheckoutSessionHandler(svc CheckoutService, publicBaseURL string, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createCheckoutSessionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, http.StatusBadRequest, "request body must be a JSON object with a string priceId")
			return
		}
		logger.Printf("checkout: received price_id=%q", req.PriceID)

		session, err := svc.Create(c.Request.Context(), checkout.Input{
			PriceID: req.PriceID,
			Origin:  requestOrigin(c.Request, publicBaseURL),
		})
		if err != nil {
			var perr *checkout.ProviderError
			switch {
			case errors.Is(err, domain.ErrInvalidPriceID):
				writeError(c, http.StatusBadRequest, err.Error())
			case errors.As(err, &perr):
				writeError(c, http.StatusInternalServerError, perr.Error())
			default:
				logger.Printf("checkout: error=%v", err)
				writeError(c, http.StatusInternalServerError, err.Error())
			}
			return
		}
		c.JSON(http.StatusOK, checkoutResponse{URL: session.URL})
	}
}

// requestOrigin picks the base URL for checkout redirects: the Origin header
// when it is an absolute http(s) URL, then the configured public URL, then
// the request's own scheme and host.
func requestOrigin(r *http.Request, publicBaseURL string) string {
	if origin := r.Header.Get("Origin"); origin != "" {
		if u, err := url.Parse(origin); err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" {
			return u.Scheme + "://" + u.Host
		}
	}
	if publicBaseURL != "" {
		return publicBaseURL
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "http" || proto == "https" {
		scheme = proto
	}
	return scheme + "://" + r.Host
}
