package product

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"storefront/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// PostgresRepository is the catalog store kept in the products table.
type PostgresRepository interface {
	Repository
	Writer
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) PostgresRepository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	const q = `
SELECT id, name, image, price_cents, description, price_id
FROM products
ORDER BY position, id
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	result := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Image, &p.Price, &p.Description, &p.PriceID); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: list rows error=%v", err)
		return nil, err
	}
	r.logger.Printf("product repo: list count=%d", len(result))
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const q = `
SELECT id, name, image, price_cents, description, price_id
FROM products
WHERE id = $1
`
	var p domain.Product
	err := r.pool.QueryRow(ctx, q, id).Scan(&p.ID, &p.Name, &p.Image, &p.Price, &p.Description, &p.PriceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("product repo: get id=%s not found", id)
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

const upsertProduct = `
INSERT INTO products (id, position, name, image, price_cents, description, price_id)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO UPDATE SET
    position = EXCLUDED.position,
    name = EXCLUDED.name,
    image = EXCLUDED.image,
    price_cents = EXCLUDED.price_cents,
    description = EXCLUDED.description,
    price_id = EXCLUDED.price_id,
    updated_at = now()
`

func (r *postgresRepo) Upsert(ctx context.Context, position int, product domain.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}
	_, err := r.pool.Exec(ctx, upsertProduct,
		product.ID,
		position,
		product.Name,
		product.Image,
		product.Price,
		product.Description,
		product.PriceID,
	)
	if err != nil {
		r.logger.Printf("product repo: upsert id=%s error=%v", product.ID, err)
		return fmt.Errorf("upsert product %q: %w", product.ID, err)
	}
	r.logger.Printf("product repo: upserted id=%s position=%d", product.ID, position)
	return nil
}

// ReplaceAll swaps the whole catalog in one transaction; positions follow the
// slice order.
func (r *postgresRepo) ReplaceAll(ctx context.Context, products []domain.Product) (int, error) {
	if err := domain.ValidateCatalog(products); err != nil {
		return 0, err
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `DELETE FROM products`); err != nil {
		return 0, fmt.Errorf("clear products: %w", err)
	}

	batch := &pgx.Batch{}
	for i, p := range products {
		batch.Queue(upsertProduct, p.ID, i, p.Name, p.Image, p.Price, p.Description, p.PriceID)
	}
	results := tx.SendBatch(ctx, batch)
	for _, p := range products {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return 0, fmt.Errorf("insert product %q: %w", p.ID, err)
		}
	}
	if err := results.Close(); err != nil {
		return 0, fmt.Errorf("close batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	r.logger.Printf("product repo: replaced catalog count=%d", len(products))
	return len(products), nil
}
