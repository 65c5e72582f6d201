package seed

import (
	"context"
	"fmt"

	"storefront/internal/domain"
)

// ProductUpserter is the part of the catalog store the seed needs.
type ProductUpserter interface {
	Upsert(ctx context.Context, position int, product domain.Product) error
}

// DemoProducts is a small catalog for manual testing. The price ids are
// placeholders and must be replaced with prices from the Stripe dashboard
// before a checkout can succeed.
var DemoProducts = []domain.Product{
	{
		ID:          "demo-shirt",
		Name:        "Demo T-Shirt",
		Image:       "https://images.example.com/demo-shirt.png",
		Price:       1999,
		Description: "Soft cotton tee for demo purposes",
		PriceID:     "price_demo_shirt",
	},
	{
		ID:          "demo-mug",
		Name:        "Demo Mug",
		Image:       "https://images.example.com/demo-mug.png",
		Price:       1299,
		Description: "Ceramic mug with demo logo",
		PriceID:     "price_demo_mug",
	},
	{
		ID:          "demo-sticker",
		Name:        "Demo Sticker Pack",
		Image:       "https://images.example.com/demo-stickers.png",
		Price:       499,
		Description: "Five vinyl stickers",
		PriceID:     "price_demo_sticker",
	},
}

// Apply inserts the demo catalog. It is idempotent: rows are upserted by id.
func Apply(ctx context.Context, repo ProductUpserter) error {
	for i, p := range DemoProducts {
		if err := repo.Upsert(ctx, i, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.ID, err)
		}
	}
	return nil
}
