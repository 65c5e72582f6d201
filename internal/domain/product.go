package domain

import (
	"fmt"
	"strings"
)

// Product is one catalog entry. Field names are part of the public JSON
// contract served at /products.json.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Price       int64  `json:"price"`
	Description string `json:"description"`
	PriceID     string `json:"priceId"`
}

// Validate checks the per-record catalog invariants.
func (p Product) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidProduct)
	}
	if strings.Contains(p.ID, "/") {
		return fmt.Errorf("%w: id %q must not contain '/'", ErrInvalidProduct, p.ID)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: product %q has negative price %d", ErrInvalidProduct, p.ID, p.Price)
	}
	if strings.TrimSpace(p.PriceID) == "" {
		return fmt.Errorf("%w: product %q has no priceId", ErrInvalidProduct, p.ID)
	}
	return nil
}

// ValidateCatalog validates every product and the one-to-one mapping between
// id and priceId across the whole list.
func ValidateCatalog(products []Product) error {
	ids := make(map[string]struct{}, len(products))
	priceIDs := make(map[string]string, len(products))
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return err
		}
		if _, dup := ids[p.ID]; dup {
			return fmt.Errorf("%w: duplicate id %q", ErrInvalidProduct, p.ID)
		}
		ids[p.ID] = struct{}{}
		if other, dup := priceIDs[p.PriceID]; dup {
			return fmt.Errorf("%w: priceId %q shared by %q and %q", ErrInvalidProduct, p.PriceID, other, p.ID)
		}
		priceIDs[p.PriceID] = p.ID
	}
	return nil
}
