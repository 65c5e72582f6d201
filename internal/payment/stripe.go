package payment

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"storefront/internal/domain"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
)

// StripeConfig holds what is needed to build the Stripe client once at startup.
type StripeConfig struct {
	SecretKey string
	// APIURL overrides the Stripe API base URL, e.g. for stripe-mock.
	APIURL     string
	HTTPClient *http.Client
	Logger     *log.Logger
}

// Error is a provider failure translated out of the Stripe SDK.
type Error struct {
	Message    string
	Type       string
	Code       string
	StatusCode int
	Err        error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// StripeGateway creates hosted Checkout Sessions. It is safe for concurrent use.
type StripeGateway struct {
	sessions *session.Client
	logger   *log.Logger
}

func NewStripeGateway(cfg StripeConfig) (*StripeGateway, error) {
	if cfg.SecretKey == "" {
		return nil, errors.New("stripe: secret key is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	backendCfg := &stripe.BackendConfig{
		HTTPClient: httpClient,
		// Retries are the caller's decision; one session request per checkout.
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     leveledLogger{logger: logger},
	}
	if cfg.APIURL != "" {
		backendCfg.URL = stripe.String(cfg.APIURL)
	}

	return &StripeGateway{
		sessions: &session.Client{
			B:   stripe.GetBackendWithConfig(stripe.APIBackend, backendCfg),
			Key: cfg.SecretKey,
		},
		logger: logger,
	}, nil
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, req domain.SessionRequest) (*domain.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(req.PriceID),
				Quantity: stripe.Int64(req.Quantity),
			},
		},
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
	}
	if len(req.PaymentMethodTypes) > 0 {
		params.PaymentMethodTypes = stripe.StringSlice(req.PaymentMethodTypes)
	}
	if len(req.AllowedShippingCountries) > 0 {
		params.ShippingAddressCollection = &stripe.CheckoutSessionShippingAddressCollectionParams{
			AllowedCountries: stripe.StringSlice(req.AllowedShippingCountries),
		}
	}
	params.Context = ctx
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}

	s, err := g.sessions.New(params)
	if err != nil {
		return nil, translateError(err)
	}
	g.logger.Printf("stripe: checkout session created id=%s", s.ID)
	return &domain.CheckoutSession{ID: s.ID, URL: s.URL}, nil
}

func translateError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		msg := stripeErr.Msg
		if msg == "" {
			msg = err.Error()
		}
		return &Error{
			Message:    msg,
			Type:       string(stripeErr.Type),
			Code:       string(stripeErr.Code),
			StatusCode: stripeErr.HTTPStatusCode,
			Err:        err,
		}
	}
	return &Error{Message: err.Error(), Err: err}
}

// leveledLogger routes SDK logs through the service logger. Debug output is
// dropped.
type leveledLogger struct {
	logger *log.Logger
}

func (l leveledLogger) Debugf(string, ...interface{}) {}

func (l leveledLogger) Infof(format string, v ...interface{}) {
	l.logger.Printf("stripe: "+format, v...)
}

func (l leveledLogger) Warnf(format string, v ...interface{}) {
	l.logger.Printf("stripe: warn: "+format, v...)
}

func (l leveledLogger) Errorf(format string, v ...interface{}) {
	l.logger.Printf("stripe: error: "+format, v...)
}
