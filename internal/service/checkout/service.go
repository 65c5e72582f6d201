package checkout

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"storefront/internal/domain"

	"github.com/google/uuid"
)

const maxPriceIDLength = 255

// Gateway is the payment provider seam. Implementations perform exactly one
// request per call and must not retry on their own.
type Gateway interface {
	CreateCheckoutSession(ctx context.Context, req domain.SessionRequest) (*domain.CheckoutSession, error)
}

// ProviderError wraps a failure reported by the payment provider. Its message
// is surfaced to clients verbatim.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string { return e.Err.Error() }

func (e *ProviderError) Unwrap() error { return e.Err }

// Options shapes every session request.
type Options struct {
	PaymentMethodTypes       []string
	AllowedShippingCountries []string
	Timeout                  time.Duration
}

// Input is one checkout attempt. Origin is the scheme+host the browser came
// from and is used for the success and cancel redirects.
type Input struct {
	PriceID string
	Origin  string
}

type Service struct {
	gateway Gateway
	opts    Options
	logger  *log.Logger
	newKey  func() string
}

func New(gateway Gateway, opts Options, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		gateway: gateway,
		opts:    opts,
		logger:  logger,
		newKey:  uuid.NewString,
	}
}

// Create validates the input and asks the provider for a hosted session.
func (s *Service) Create(ctx context.Context, in Input) (*domain.CheckoutSession, error) {
	priceID, err := ValidatePriceID(in.PriceID)
	if err != nil {
		return nil, err
	}
	origin := strings.TrimSuffix(in.Origin, "/")
	if origin == "" {
		return nil, errors.New("checkout: origin is required to build redirect urls")
	}

	req := s.BuildRequest(priceID, origin)

	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}

	start := time.Now()
	session, err := s.gateway.CreateCheckoutSession(ctx, req)
	if err != nil {
		s.logger.Printf("checkout: create price_id=%s idempotency_key=%s error=%v", priceID, req.IdempotencyKey, err)
		return nil, &ProviderError{Err: err}
	}
	if session == nil || session.URL == "" {
		s.logger.Printf("checkout: create price_id=%s returned no redirect url", priceID)
		return nil, &ProviderError{Err: errors.New("payment provider returned a session without a redirect url")}
	}
	s.logger.Printf("checkout: created session=%s price_id=%s took=%s", session.ID, priceID, time.Since(start).Truncate(time.Millisecond))
	return session, nil
}

// BuildRequest assembles the one-time payment request for a single unit.
func (s *Service) BuildRequest(priceID, origin string) domain.SessionRequest {
	return domain.SessionRequest{
		PriceID:                  priceID,
		Quantity:                 1,
		PaymentMethodTypes:       append([]string(nil), s.opts.PaymentMethodTypes...),
		AllowedShippingCountries: append([]string(nil), s.opts.AllowedShippingCountries...),
		SuccessURL:               origin + "/success.html",
		CancelURL:                origin + "/cancel.html",
		IdempotencyKey:           s.newKey(),
	}
}

// ValidatePriceID trims and checks a client supplied price id.
func ValidatePriceID(raw string) (string, error) {
	priceID := strings.TrimSpace(raw)
	if priceID == "" {
		return "", fmt.Errorf("%w: priceId is required", domain.ErrInvalidPriceID)
	}
	if len(priceID) > maxPriceIDLength {
		return "", fmt.Errorf("%w: priceId longer than %d bytes", domain.ErrInvalidPriceID, maxPriceIDLength)
	}
	if strings.ContainsAny(priceID, " \t\r\n") {
		return "", fmt.Errorf("%w: priceId must not contain whitespace", domain.ErrInvalidPriceID)
	}
	return priceID, nil
}
