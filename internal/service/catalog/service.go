package catalog

import (
	"context"
	"errors"

	"storefront/internal/domain"
	productrepo "storefront/internal/repository/product"
)

// LookupStatus distinguishes "nothing to show" from "something failed".
type LookupStatus int

const (
	LookupFound LookupStatus = iota
	LookupNotFound
	LookupFailed
)

func (s LookupStatus) String() string {
	switch s {
	case LookupFound:
		return "found"
	case LookupNotFound:
		return "not_found"
	default:
		return "failed"
	}
}

// Lookup is the result of resolving a product id. Product is set only for
// LookupFound and Err only for LookupFailed.
type Lookup struct {
	Status  LookupStatus
	Product *domain.Product
	Err     error
}

type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

// List returns the whole catalog in store order. The slice is never nil.
func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

// Find resolves a product by exact id match.
func (s *Service) Find(ctx context.Context, id string) Lookup {
	if id == "" {
		return Lookup{Status: LookupNotFound}
	}
	p, err := s.repo.GetByID(ctx, id)
	switch {
	case err == nil && p != nil:
		return Lookup{Status: LookupFound, Product: p}
	case err == nil, errors.Is(err, domain.ErrNotFound):
		return Lookup{Status: LookupNotFound}
	default:
		return Lookup{Status: LookupFailed, Err: err}
	}
}

// Ping reports whether the underlying store is reachable.
func (s *Service) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
