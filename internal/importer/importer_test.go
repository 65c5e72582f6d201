package importer

import (
	"bufio"
	"context"
	"errors"
	"strings"
	"testing"

	"storefront/internal/domain"
)

type stubProductRepo struct {
	items []domain.Product
	calls int
}

func (s *stubProductRepo) ReplaceAll(_ context.Context, products []domain.Product) (int, error) {
	s.calls++
	s.items = append([]domain.Product(nil), products...)
	return len(products), nil
}

func TestImporter_RunJSON(t *testing.T) {
	data := `
  [
    {"id": "shirt", "name": "Shirt", "image": "/img/shirt.png", "price": 1999, "description": "Tee", "priceId": "price_shirt"},
    {"id": "mug", "name": "Mug", "image": "/img/mug.png", "price": 1299, "description": "Mug", "priceId": "price_mug"}
  ]`
	repo := &stubProductRepo{}

	count, err := New(strings.NewReader(data), repo).Run(context.Background())
	if err != nil {
		t.Fatalf("import run: %v", err)
	}
	if count != 2 || len(repo.items) != 2 {
		t.Fatalf("expected 2 products imported, got %d (%d saved)", count, len(repo.items))
	}
	if repo.items[0].ID != "shirt" || repo.items[1].ID != "mug" {
		t.Fatalf("expected source order, got %+v", repo.items)
	}
}

func TestImporter_RunCSV(t *testing.T) {
	data := `id,name,image,price,description,priceId
shirt,Shirt,/img/shirt.png,1999,"Soft, cotton tee",price_shirt

mug,Mug,/img/mug.png,1299,Ceramic mug,price_mug,
`
	repo := &stubProductRepo{}

	count, err := New(strings.NewReader(data), repo).Run(context.Background())
	if err != nil {
		t.Fatalf("import run: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 products imported, got %d", count)
	}
	first := repo.items[0]
	if first.ID != "shirt" || first.Price != 1999 || first.Description != "Soft, cotton tee" || first.PriceID != "price_shirt" {
		t.Fatalf("unexpected product data: %+v", first)
	}
	if repo.items[1].Image != "/img/mug.png" {
		t.Fatalf("unexpected second product: %+v", repo.items[1])
	}
}

func TestImporter_RejectsInvalidCatalog(t *testing.T) {
	cases := map[string]string{
		"bad price":      "id,price,priceId\nshirt,19.99,price_shirt\n",
		"missing column": "id,name,price\nshirt,Shirt,1999\n",
		"duplicate id":   "id,price,priceId\nshirt,1,price_a\nshirt,2,price_b\n",
		"negative json":  `[{"id":"x","price":-1,"priceId":"price_x"}]`,
		"empty":          "  \n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			repo := &stubProductRepo{}
			if _, err := New(strings.NewReader(data), repo).Run(context.Background()); err == nil {
				t.Fatalf("expected error")
			}
			if repo.calls != 0 {
				t.Fatalf("expected nothing written, got %d calls", repo.calls)
			}
		})
	}
}

func TestImporter_DuplicateIsInvalidProduct(t *testing.T) {
	data := "id,price,priceId\nshirt,1,price_a\nshirt,2,price_b\n"
	_, err := New(strings.NewReader(data), &stubProductRepo{}).Run(context.Background())
	if !errors.Is(err, domain.ErrInvalidProduct) {
		t.Fatalf("expected ErrInvalidProduct, got %v", err)
	}
}

func TestDetectFormat(t *testing.T) {
	kind, err := DetectFormat(bufio.NewReader(strings.NewReader("\n\t [ ]")))
	if err != nil {
		t.Fatalf("detect json: %v", err)
	}
	if kind != FormatJSON {
		t.Fatalf("expected json, got %s", kind)
	}

	kind, err = DetectFormat(bufio.NewReader(strings.NewReader("id,name,price,priceId\n")))
	if err != nil {
		t.Fatalf("detect csv: %v", err)
	}
	if kind != FormatCSV {
		t.Fatalf("expected csv, got %s", kind)
	}

	if _, err := DetectFormat(bufio.NewReader(strings.NewReader(""))); err == nil {
		t.Fatalf("expected error for empty input")
	}
}
