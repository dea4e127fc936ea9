package storefront

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

// ReviewInput is a submitted product review. Rating is a 1 to 5 scale.
type ReviewInput struct {
	ProductID int64     `json:"product_id"`
	UserID    uuid.UUID `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
}

func (r ReviewInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ProductID, validation.Required, validation.Min(1)),
		validation.Field(&r.Comment, validation.Length(0, 2000)),
	)
}

// ReviewService manages product reviews.
type ReviewService struct {
	reviews  Reviews
	products Products
	logger   Logger
}

func NewReviewService(reviews Reviews, products Products) *ReviewService {
	return &ReviewService{
		reviews:  reviews,
		products: products,
		logger:   defLogger{},
	}
}

func (s *ReviewService) WithLogger(logger Logger) *ReviewService {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// Add validates and stores a new review. The product must exist and the
// rating must fall within the 1 to 5 scale.
func (s *ReviewService) Add(ctx context.Context, input ReviewInput) (*Review, error) {
	if err := input.Validate(); err != nil {
		return nil, errors.Wrap(err, errors.CategoryValidation, "invalid review")
	}

	if input.Rating < 1 || input.Rating > 5 {
		return nil, ErrRatingOutOfRange
	}

	exists, err := s.products.Exists(ctx, input.ProductID)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to check product")
	}
	if !exists {
		return nil, ErrProductNotFound
	}

	review := &Review{
		ProductID: input.ProductID,
		UserID:    input.UserID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.reviews.Add(ctx, review); err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to add review")
	}

	return review, nil
}

// GetByProduct returns a product's reviews, newest first, with the
// reviewer loaded.
func (s *ReviewService) GetByProduct(ctx context.Context, productID int64) ([]*Review, error) {
	reviews, err := s.reviews.GetByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to list reviews")
	}
	return reviews, nil
}

// Delete removes a review. It reports whether a review was actually
// deleted.
func (s *ReviewService) Delete(ctx context.Context, reviewID int64) (bool, error) {
	deleted, err := s.reviews.Delete(ctx, reviewID)
	if err != nil {
		return false, errors.Wrap(err, errors.CategoryInternal, "failed to delete review")
	}
	return deleted, nil
}
