package domain

import (
	"errors"
	"testing"
)

func TestProductValidate(t *testing.T) {
	cases := []struct {
		name    string
		product Product
		wantErr bool
	}{
		{"valid", Product{ID: "mug", Price: 1299, PriceID: "price_mug"}, false},
		{"free", Product{ID: "sticker", Price: 0, PriceID: "price_sticker"}, false},
		{"missing id", Product{Price: 100, PriceID: "price_x"}, true},
		{"slash in id", Product{ID: "a/b", Price: 100, PriceID: "price_x"}, true},
		{"negative price", Product{ID: "x", Price: -1, PriceID: "price_x"}, true},
		{"missing price id", Product{ID: "x", Price: 100}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.product.Validate()
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidProduct) {
					t.Fatalf("expected ErrInvalidProduct, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateCatalog_Duplicates(t *testing.T) {
	dupID := []Product{
		{ID: "a", PriceID: "price_a"},
		{ID: "a", PriceID: "price_b"},
	}
	if err := ValidateCatalog(dupID); !errors.Is(err, ErrInvalidProduct) {
		t.Fatalf("expected duplicate id error, got %v", err)
	}

	dupPrice := []Product{
		{ID: "a", PriceID: "price_a"},
		{ID: "b", PriceID: "price_a"},
	}
	if err := ValidateCatalog(dupPrice); !errors.Is(err, ErrInvalidProduct) {
		t.Fatalf("expected shared priceId error, got %v", err)
	}

	if err := ValidateCatalog(nil); err != nil {
		t.Fatalf("empty catalog should be valid, got %v", err)
	}
}
