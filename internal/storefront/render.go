package storefront

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"

	"storefront/internal/domain"
	"storefront/internal/service/catalog"

	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static/*
var staticFS embed.FS

// FormatPrice renders an amount in minor units as dollars with exactly two
// decimals, e.g. 1999 -> "$19.99".
func FormatPrice(cents int64) string {
	return "$" + decimal.New(cents, -2).StringFixed(2)
}

// DetailPath is the detail page URL for a product id.
func DetailPath(id string) string {
	return "/product/" + url.PathEscape(id)
}

// Templates parses the embedded page templates. Page templates are named by
// file, e.g. "index.html".
func Templates() (*template.Template, error) {
	return template.New("storefront").Funcs(template.FuncMap{
		"price": FormatPrice,
	}).ParseFS(templatesFS, "templates/*.html")
}

// Static serves the embedded script and stylesheet.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

// Tile is one product on the listing page.
type Tile struct {
	ID    string
	Name  string
	Image string
	Price string
	Href  string
}

// ListingPage is the view model for "/".
type ListingPage struct {
	Title    string
	Products []Tile
	Error    string
}

// DetailView is the product section of the detail page.
type DetailView struct {
	ID          string
	Name        string
	Image       string
	Price       string
	Description string
	PriceID     string
}

// DetailPage is the view model for "/product/:id". Product is nil when there
// is nothing to show.
type DetailPage struct {
	Title   string
	Product *DetailView
	Error   string
}

const catalogUnavailable = "The catalog is unavailable right now. Please try again later."

func NewListing(products []domain.Product) ListingPage {
	tiles := make([]Tile, 0, len(products))
	for _, p := range products {
		tiles = append(tiles, Tile{
			ID:    p.ID,
			Name:  p.Name,
			Image: p.Image,
			Price: FormatPrice(p.Price),
			Href:  DetailPath(p.ID),
		})
	}
	return ListingPage{Title: "Shop", Products: tiles}
}

// ListingError is the visible error state for a failed catalog read.
func ListingError() ListingPage {
	return ListingPage{Title: "Shop", Error: catalogUnavailable}
}

// NewDetail maps a lookup result to the detail page and its HTTP status.
// A missing product is an empty page, not an error.
func NewDetail(lookup catalog.Lookup) (DetailPage, int) {
	switch lookup.Status {
	case catalog.LookupFound:
		p := lookup.Product
		return DetailPage{
			Title: p.Name,
			Product: &DetailView{
				ID:          p.ID,
				Name:        p.Name,
				Image:       p.Image,
				Price:       FormatPrice(p.Price),
				Description: p.Description,
				PriceID:     p.PriceID,
			},
		}, http.StatusOK
	case catalog.LookupNotFound:
		return DetailPage{Title: "Product"}, http.StatusOK
	default:
		return DetailPage{Title: "Product", Error: catalogUnavailable}, http.StatusInternalServerError
	}
}
