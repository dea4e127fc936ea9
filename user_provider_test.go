package storefront_test

import (
	"context"
	"testing"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/vendira/go-storefront"
)

func TestUserProviderVerifyIdentity(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful verification", func(t *testing.T) {
		store := new(MockUserStore)
		provider := storefront.NewUserProvider(store)

		userID := uuid.New()
		passwordHash, _ := storefront.HashPassword("password123")
		user := &storefront.User{
			ID:           userID,
			Name:         "Ana",
			Email:        "ana@example.com",
			PasswordHash: passwordHash,
		}

		store.On("GetByEmail", ctx, "ana@example.com").Return(user, nil).Once()
		store.On("Roles", ctx, userID).Return([]storefront.Role{storefront.RoleUsuario}, nil).Once()

		identity, err := provider.VerifyIdentity(ctx, "ana@example.com", "password123")

		assert.NoError(t, err)
		assert.NotNil(t, identity)
		assert.Equal(t, userID.String(), identity.ID())
		assert.Equal(t, "Ana", identity.Name())
		assert.Equal(t, "ana@example.com", identity.Email())
		assert.Equal(t, "Usuario", identity.Role())

		store.AssertExpectations(t)
	})

	t.Run("Account without roles yields empty role", func(t *testing.T) {
		store := new(MockUserStore)
		provider := storefront.NewUserProvider(store)

		userID := uuid.New()
		passwordHash, _ := storefront.HashPassword("password123")
		user := &storefront.User{
			ID:           userID,
			Email:        "norole@example.com",
			PasswordHash: passwordHash,
		}

		store.On("GetByEmail", ctx, "norole@example.com").Return(user, nil).Once()
		store.On("Roles", ctx, userID).Return([]storefront.Role{}, nil).Once()

		identity, err := provider.VerifyIdentity(ctx, "norole@example.com", "password123")

		assert.NoError(t, err)
		assert.Equal(t, "", identity.Role())
		// display name falls back to email
		assert.Equal(t, "norole@example.com", identity.Name())

		store.AssertExpectations(t)
	})

	t.Run("Wrong password", func(t *testing.T) {
		store := new(MockUserStore)
		provider := storefront.NewUserProvider(store)

		passwordHash, _ := storefront.HashPassword("correct_password")
		user := &storefront.User{
			ID:           uuid.New(),
			Email:        "ana@example.com",
			PasswordHash: passwordHash,
		}

		store.On("GetByEmail", ctx, "ana@example.com").Return(user, nil).Once()

		identity, err := provider.VerifyIdentity(ctx, "ana@example.com", "wrong_password")

		assert.Nil(t, identity)
		assert.ErrorIs(t, err, storefront.ErrInvalidCredentials)

		store.AssertExpectations(t)
	})

	t.Run("Unknown email", func(t *testing.T) {
		store := new(MockUserStore)
		provider := storefront.NewUserProvider(store)

		store.On("GetByEmail", ctx, "nobody@example.com").
			Return(nil, repository.NewRecordNotFound()).Once()

		identity, err := provider.VerifyIdentity(ctx, "nobody@example.com", "password123")

		assert.Nil(t, identity)
		assert.ErrorIs(t, err, storefront.ErrInvalidCredentials)

		store.AssertExpectations(t)
	})

	t.Run("Empty email never touches the store", func(t *testing.T) {
		store := new(MockUserStore)
		provider := storefront.NewUserProvider(store)

		identity, err := provider.VerifyIdentity(ctx, "   ", "password123")

		assert.Nil(t, identity)
		assert.ErrorIs(t, err, storefront.ErrInvalidCredentials)
		store.AssertNotCalled(t, "GetByEmail")
	})

	t.Run("Empty password never touches the store", func(t *testing.T) {
		store := new(MockUserStore)
		provider := storefront.NewUserProvider(store)

		identity, err := provider.VerifyIdentity(ctx, "ana@example.com", "")

		assert.Nil(t, identity)
		assert.ErrorIs(t, err, storefront.ErrInvalidCredentials)
		store.AssertNotCalled(t, "GetByEmail")
	})

	t.Run("All credential failures are indistinguishable", func(t *testing.T) {
		store := new(MockUserStore)
		provider := storefront.NewUserProvider(store)

		passwordHash, _ := storefront.HashPassword("correct_password")
		user := &storefront.User{
			ID:           uuid.New(),
			Email:        "ana@example.com",
			PasswordHash: passwordHash,
		}

		store.On("GetByEmail", ctx, "ana@example.com").Return(user, nil).Once()
		store.On("GetByEmail", ctx, "nobody@example.com").
			Return(nil, repository.NewRecordNotFound()).Once()

		_, wrongPassword := provider.VerifyIdentity(ctx, "ana@example.com", "nope12345")
		_, unknownEmail := provider.VerifyIdentity(ctx, "nobody@example.com", "nope12345")
		_, emptyEmail := provider.VerifyIdentity(ctx, "", "nope12345")
		_, emptyPassword := provider.VerifyIdentity(ctx, "ana@example.com", "")

		assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
		assert.Equal(t, unknownEmail.Error(), emptyEmail.Error())
		assert.Equal(t, emptyEmail.Error(), emptyPassword.Error())
	})

	t.Run("Store failure is not reported as invalid credentials", func(t *testing.T) {
		store := new(MockUserStore)
		provider := storefront.NewUserProvider(store)

		store.On("GetByEmail", ctx, "ana@example.com").
			Return(nil, errors.New("connection refused", errors.CategoryInternal)).Once()

		identity, err := provider.VerifyIdentity(ctx, "ana@example.com", "password123")

		assert.Nil(t, identity)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, storefront.ErrInvalidCredentials)
	})
}

func TestUserProviderFindIdentityByID(t *testing.T) {
	ctx := context.Background()

	t.Run("User found", func(t *testing.T) {
		store := new(MockUserStore)
		provider := storefront.NewUserProvider(store)

		userID := uuid.New()
		user := &storefront.User{
			ID:    userID,
			Name:  "Luis",
			Email: "luis@example.com",
		}

		store.On("GetByID", ctx, userID.String()).Return(user, nil).Once()
		store.On("Roles", ctx, userID).Return([]storefront.Role{storefront.RoleAdmin}, nil).Once()

		identity, err := provider.FindIdentityByID(ctx, userID.String())

		assert.NoError(t, err)
		assert.Equal(t, userID.String(), identity.ID())
		assert.Equal(t, "Admin", identity.Role())

		store.AssertExpectations(t)
	})

	t.Run("User not found", func(t *testing.T) {
		store := new(MockUserStore)
		provider := storefront.NewUserProvider(store)

		store.On("GetByID", ctx, "missing").
			Return(nil, repository.NewRecordNotFound()).Once()

		identity, err := provider.FindIdentityByID(ctx, "missing")

		assert.Nil(t, identity)
		assert.ErrorIs(t, err, storefront.ErrIdentityNotFound)

		store.AssertExpectations(t)
	})
}
