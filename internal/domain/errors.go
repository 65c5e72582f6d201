package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidProduct marks catalog data that breaks a product invariant.
	ErrInvalidProduct = errors.New("invalid product")
	// ErrInvalidPriceID is returned for a checkout request without a usable price id.
	ErrInvalidPriceID = errors.New("invalid priceId")
)
