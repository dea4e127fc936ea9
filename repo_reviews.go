package storefront

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"
)

// Reviews is the review store.
type Reviews interface {
	Add(ctx context.Context, review *Review) error
	GetByProduct(ctx context.Context, productID int64) ([]*Review, error)
	GetByID(ctx context.Context, id int64) (*Review, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// ReviewsRepository implements Reviews using Bun.
type ReviewsRepository struct {
	db *bun.DB
}

var _ Reviews = (*ReviewsRepository)(nil)

// NewReviewsRepository creates a new repository.
func NewReviewsRepository(db *bun.DB) *ReviewsRepository {
	return &ReviewsRepository{db: db}
}

func (r *ReviewsRepository) Add(ctx context.Context, review *Review) error {
	_, err := r.db.NewInsert().Model(review).Exec(ctx)
	return err
}

// GetByProduct returns a product's reviews with the reviewer joined in,
// newest first.
func (r *ReviewsRepository) GetByProduct(ctx context.Context, productID int64) ([]*Review, error) {
	var reviews []*Review
	err := r.db.NewSelect().
		Model(&reviews).
		Relation("User").
		Where("rvw.product_id = ?", productID).
		Order("rvw.created_at DESC").
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*Review{}, nil
		}
		return nil, err
	}

	return reviews, nil
}

func (r *ReviewsRepository) GetByID(ctx context.Context, id int64) (*Review, error) {
	review := &Review{}
	err := r.db.NewSelect().
		Model(review).
		Where("?TableAlias.id = ?", id).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return review, nil
}

func (r *ReviewsRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.NewDelete().
		Model((*Review)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}
