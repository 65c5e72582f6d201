package product

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"storefront/internal/domain"
)

const catalogJSON = `[
  {"id": "shirt", "name": "Shirt", "image": "/img/shirt.png", "price": 1999, "description": "Cotton tee", "priceId": "price_shirt"},
  {"id": "mug", "name": "Mug", "image": "/img/mug.png", "price": 1299, "description": "Ceramic mug", "priceId": "price_mug"}
]`

func writeCatalog(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func TestFile_ListKeepsSourceOrder(t *testing.T) {
	repo := NewFile(writeCatalog(t, catalogJSON), nil)

	list, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0].ID != "shirt" || list[1].ID != "mug" {
		t.Fatalf("unexpected order %+v", list)
	}
	if list[0].Price != 1999 || list[0].PriceID != "price_shirt" || list[0].Description != "Cotton tee" {
		t.Fatalf("unexpected product %+v", list[0])
	}
}

func TestFile_GetByID(t *testing.T) {
	repo := NewFile(writeCatalog(t, catalogJSON), nil)

	got, err := repo.GetByID(context.Background(), "mug")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Mug" {
		t.Fatalf("unexpected product %+v", got)
	}

	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFile_ReadFailures(t *testing.T) {
	missing := NewFile(filepath.Join(t.TempDir(), "nope.json"), nil)
	if _, err := missing.List(context.Background()); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if err := missing.Ping(context.Background()); err == nil {
		t.Fatalf("expected ping error for missing file")
	}

	broken := NewFile(writeCatalog(t, `{"id":`), nil)
	if _, err := broken.List(context.Background()); err == nil {
		t.Fatalf("expected decode error")
	}

	invalid := NewFile(writeCatalog(t, `[{"id":"x","price":-5,"priceId":"price_x"}]`), nil)
	if _, err := invalid.List(context.Background()); !errors.Is(err, domain.ErrInvalidProduct) {
		t.Fatalf("expected ErrInvalidProduct, got %v", err)
	}
}

func TestDecodeJSON_EmptyArray(t *testing.T) {
	list, err := DecodeJSON([]byte(`[]`))
	if err != nil {
		t.Fatalf("DecodeJSON: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", list)
	}
}
