package product

import (
	"context"

	"storefront/internal/domain"
)

// Repository is the read side of the catalog store. List returns products in
// source order; GetByID returns domain.ErrNotFound for unknown ids.
type Repository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Ping(ctx context.Context) error
}

// Writer is implemented by stores that can be loaded by the importer and seed.
type Writer interface {
	Upsert(ctx context.Context, position int, product domain.Product) error
	ReplaceAll(ctx context.Context, products []domain.Product) (int, error)
}
