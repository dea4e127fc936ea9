package storefront

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"
)

// Products is the minimal product surface this core needs: existence for
// review validation and lookup for callers assembling order snapshots.
// Catalog browsing lives outside this module.
type Products interface {
	Exists(ctx context.Context, id int64) (bool, error)
	GetByID(ctx context.Context, id int64) (*Product, error)
}

// ProductsRepository implements Products using Bun.
type ProductsRepository struct {
	db *bun.DB
}

var _ Products = (*ProductsRepository)(nil)

// NewProductsRepository creates a new repository.
func NewProductsRepository(db *bun.DB) *ProductsRepository {
	return &ProductsRepository{db: db}
}

func (r *ProductsRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return r.db.NewSelect().
		Model((*Product)(nil)).
		Where("id = ?", id).
		Exists(ctx)
}

func (r *ProductsRepository) GetByID(ctx context.Context, id int64) (*Product, error) {
	product := &Product{}
	err := r.db.NewSelect().
		Model(product).
		Where("?TableAlias.id = ?", id).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	return product, nil
}
