package product

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"storefront/internal/domain"
)

type fileRepo struct {
	path   string
	logger *log.Logger
}

// NewFile returns a Repository backed by a JSON array on disk. The file is
// read on every call so edits are picked up without a restart.
func NewFile(path string, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &fileRepo{path: path, logger: logger}
}

func (r *fileRepo) List(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(r.path)
	if err != nil {
		r.logger.Printf("product file: read path=%s error=%v", r.path, err)
		return nil, fmt.Errorf("read catalog %s: %w", r.path, err)
	}
	products, err := DecodeJSON(data)
	if err != nil {
		r.logger.Printf("product file: decode path=%s error=%v", r.path, err)
		return nil, fmt.Errorf("decode catalog %s: %w", r.path, err)
	}
	return products, nil
}

func (r *fileRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	products, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	r.logger.Printf("product file: get id=%s not found", id)
	return nil, domain.ErrNotFound
}

func (r *fileRepo) Ping(_ context.Context) error {
	_, err := os.Stat(r.path)
	return err
}

// DecodeJSON parses and validates a catalog JSON array.
func DecodeJSON(data []byte) ([]domain.Product, error) {
	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []domain.Product{}
	}
	if err := domain.ValidateCatalog(products); err != nil {
		return nil, err
	}
	return products, nil
}
