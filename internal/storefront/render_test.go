package storefront

import (
	"bytes"
	"errors"
	"net/http"
	"strings"
	"testing"

	"storefront/internal/domain"
	"storefront/internal/service/catalog"
)

func TestFormatPrice(t *testing.T) {
	cases := map[int64]string{
		1999:   "$19.99",
		0:      "$0.00",
		5:      "$0.05",
		100:    "$1.00",
		123456: "$1234.56",
	}
	for cents, want := range cases {
		if got := FormatPrice(cents); got != want {
			t.Fatalf("FormatPrice(%d): expected %q, got %q", cents, want, got)
		}
	}
}

func TestDetailPath_EscapesID(t *testing.T) {
	if got := DetailPath("mug"); got != "/product/mug" {
		t.Fatalf("unexpected path %q", got)
	}
	if got := DetailPath("big mug"); got != "/product/big%20mug" {
		t.Fatalf("unexpected escaped path %q", got)
	}
}

func TestNewListing(t *testing.T) {
	page := NewListing([]domain.Product{
		{ID: "shirt", Name: "Shirt", Image: "/img/shirt.png", Price: 1999, PriceID: "price_shirt"},
		{ID: "mug", Name: "Mug", Image: "/img/mug.png", Price: 1299, PriceID: "price_mug"},
	})
	if len(page.Products) != 2 || page.Error != "" {
		t.Fatalf("unexpected page %+v", page)
	}
	if page.Products[0].Price != "$19.99" || page.Products[0].Href != "/product/shirt" {
		t.Fatalf("unexpected tile %+v", page.Products[0])
	}
	if page.Products[1].ID != "mug" {
		t.Fatalf("expected source order, got %+v", page.Products)
	}
}

func TestNewDetail_States(t *testing.T) {
	found, status := NewDetail(catalog.Lookup{Status: catalog.LookupFound, Product: &domain.Product{ID: "mug", Name: "Mug", Price: 1299, Description: "Ceramic", PriceID: "price_mug"}})
	if status != http.StatusOK || found.Product == nil || found.Product.Price != "$12.99" || found.Product.PriceID != "price_mug" {
		t.Fatalf("unexpected found page %+v status=%d", found, status)
	}

	missing, status := NewDetail(catalog.Lookup{Status: catalog.LookupNotFound})
	if status != http.StatusOK || missing.Product != nil || missing.Error != "" {
		t.Fatalf("unexpected not-found page %+v status=%d", missing, status)
	}

	failed, status := NewDetail(catalog.Lookup{Status: catalog.LookupFailed, Err: errors.New("boom")})
	if status != http.StatusInternalServerError || failed.Product != nil || failed.Error == "" {
		t.Fatalf("unexpected failed page %+v status=%d", failed, status)
	}
}

func TestTemplates_RenderPages(t *testing.T) {
	tmpl, err := Templates()
	if err != nil {
		t.Fatalf("Templates: %v", err)
	}

	var buf bytes.Buffer
	page, _ := NewDetail(catalog.Lookup{Status: catalog.LookupNotFound})
	if err := tmpl.ExecuteTemplate(&buf, "product.html", page); err != nil {
		t.Fatalf("render product: %v", err)
	}
	if !strings.Contains(buf.String(), `<div id="product-details"></div>`) {
		t.Fatalf("expected empty detail container, got:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "checkout-button") {
		t.Fatalf("did not expect a buy button for a missing product")
	}

	for _, name := range []string{"index.html", "success.html", "cancel.html"} {
		buf.Reset()
		if err := tmpl.ExecuteTemplate(&buf, name, ListingPage{Title: "Shop"}); err != nil {
			t.Fatalf("render %s: %v", name, err)
		}
	}
}

func TestStatic_ServesScript(t *testing.T) {
	f, err := Static().Open("script.js")
	if err != nil {
		t.Fatalf("open script: %v", err)
	}
	defer f.Close()
}
