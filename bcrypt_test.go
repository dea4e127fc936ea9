package storefront_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vendira/go-storefront"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{
			name:     "Valid password",
			password: "securePassword123!",
			wantErr:  false,
		},
		{
			name:     "Empty password",
			password: "",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := storefront.HashPassword(tt.password)

			if tt.wantErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, storefront.ErrNoEmptyPassword)
				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, hash)

			err = storefront.ComparePasswordAndHash(tt.password, hash)
			assert.NoError(t, err)
		})
	}
}

func TestComparePasswordAndHash(t *testing.T) {
	password := "testPassword123!"
	hash, err := storefront.HashPassword(password)
	assert.NoError(t, err)

	t.Run("Matching password", func(t *testing.T) {
		assert.NoError(t, storefront.ComparePasswordAndHash(password, hash))
	})

	t.Run("Wrong password reports invalid credentials", func(t *testing.T) {
		err := storefront.ComparePasswordAndHash("wrongPassword", hash)

		assert.Error(t, err)
		assert.ErrorIs(t, err, storefront.ErrInvalidCredentials)
	})

	t.Run("Garbage hash fails", func(t *testing.T) {
		err := storefront.ComparePasswordAndHash(password, "not-a-bcrypt-hash")

		assert.Error(t, err)
	})
}
