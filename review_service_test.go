package storefront_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vendira/go-storefront"
)

func TestReviewServiceAdd(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	input := storefront.ReviewInput{
		ProductID: 5,
		UserID:    userID,
		Rating:    4,
		Comment:   "Muy bueno",
	}

	t.Run("stores a valid review", func(t *testing.T) {
		reviews := new(MockReviews)
		products := new(MockProducts)
		service := storefront.NewReviewService(reviews, products)

		products.On("Exists", ctx, int64(5)).Return(true, nil).Once()
		reviews.On("Add", ctx, mock.MatchedBy(func(r *storefront.Review) bool {
			return r.ProductID == 5 && r.UserID == userID && r.Rating == 4 && r.Comment == "Muy bueno"
		})).Return(nil).Once()

		review, err := service.Add(ctx, input)

		require.NoError(t, err)
		assert.False(t, review.CreatedAt.IsZero())

		products.AssertExpectations(t)
		reviews.AssertExpectations(t)
	})

	t.Run("rejects unknown product", func(t *testing.T) {
		reviews := new(MockReviews)
		products := new(MockProducts)
		service := storefront.NewReviewService(reviews, products)

		products.On("Exists", ctx, int64(5)).Return(false, nil).Once()

		review, err := service.Add(ctx, input)

		assert.Nil(t, review)
		assert.ErrorIs(t, err, storefront.ErrProductNotFound)
		reviews.AssertNotCalled(t, "Add")
	})

	t.Run("rejects rating out of range", func(t *testing.T) {
		reviews := new(MockReviews)
		products := new(MockProducts)
		service := storefront.NewReviewService(reviews, products)

		for _, rating := range []int{0, -1, 6} {
			bad := input
			bad.Rating = rating

			review, err := service.Add(ctx, bad)

			assert.Nil(t, review)
			assert.ErrorIs(t, err, storefront.ErrRatingOutOfRange)
		}

		products.AssertNotCalled(t, "Exists")
		reviews.AssertNotCalled(t, "Add")
	})

	t.Run("accepts boundary ratings", func(t *testing.T) {
		reviews := new(MockReviews)
		products := new(MockProducts)
		service := storefront.NewReviewService(reviews, products)

		products.On("Exists", ctx, int64(5)).Return(true, nil).Twice()
		reviews.On("Add", ctx, mock.Anything).Return(nil).Twice()

		for _, rating := range []int{1, 5} {
			ok := input
			ok.Rating = rating

			_, err := service.Add(ctx, ok)
			assert.NoError(t, err)
		}
	})

	t.Run("rejects missing product id", func(t *testing.T) {
		service := storefront.NewReviewService(new(MockReviews), new(MockProducts))

		bad := input
		bad.ProductID = 0

		review, err := service.Add(ctx, bad)

		assert.Nil(t, review)
		assert.True(t, storefront.IsValidation(err))
	})
}

func TestReviewServiceGetByProduct(t *testing.T) {
	ctx := context.Background()

	reviews := new(MockReviews)
	service := storefront.NewReviewService(reviews, new(MockProducts))

	stored := []*storefront.Review{
		{ID: 2, ProductID: 5, Rating: 5},
		{ID: 1, ProductID: 5, Rating: 3},
	}

	reviews.On("GetByProduct", ctx, int64(5)).Return(stored, nil).Once()

	got, err := service.GetByProduct(ctx, 5)

	require.NoError(t, err)
	assert.Equal(t, stored, got)
	reviews.AssertExpectations(t)
}

func TestReviewServiceDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("reports a deleted review", func(t *testing.T) {
		reviews := new(MockReviews)
		service := storefront.NewReviewService(reviews, new(MockProducts))

		reviews.On("Delete", ctx, int64(9)).Return(true, nil).Once()

		deleted, err := service.Delete(ctx, 9)

		assert.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("reports a missing review", func(t *testing.T) {
		reviews := new(MockReviews)
		service := storefront.NewReviewService(reviews, new(MockProducts))

		reviews.On("Delete", ctx, int64(404)).Return(false, nil).Once()

		deleted, err := service.Delete(ctx, 404)

		assert.NoError(t, err)
		assert.False(t, deleted)
	})
}
