package storefront

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthClaims represents the structured claims asserted by a storefront
// token.
type AuthClaims interface {
	Subject() string
	UserID() string
	Name() string
	Email() string
	Role() string
	HasRole(role string) bool
	IsAdmin() bool
	Expires() time.Time
	IssuedAt() time.Time
}

// TokenClaims is the concrete claim set embedded in issued tokens. The set
// is fixed and typed; there is no free-form claims bag, so a required field
// cannot be silently omitted.
type TokenClaims struct {
	jwt.RegisteredClaims
	UID      string         `json:"uid,omitempty"`
	FullName string         `json:"name,omitempty"`
	UserMail string         `json:"email,omitempty"`
	UserRole string         `json:"role,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"` // extension payload
}

var _ AuthClaims = (*TokenClaims)(nil)

// Subject returns the subject claim.
func (c *TokenClaims) Subject() string {
	return c.RegisteredClaims.Subject
}

// UserID returns the user id, falling back to the subject claim.
func (c *TokenClaims) UserID() string {
	if c.UID != "" {
		return c.UID
	}
	return c.Subject()
}

// Name returns the display name claim.
func (c *TokenClaims) Name() string {
	return c.FullName
}

// Email returns the email claim.
func (c *TokenClaims) Email() string {
	return c.UserMail
}

// Role returns the primary role claim. It is empty for accounts without an
// assignment; callers treat that as the default role.
func (c *TokenClaims) Role() string {
	return c.UserRole
}

// HasRole checks the primary role claim against a role name.
func (c *TokenClaims) HasRole(role string) bool {
	return c.UserRole == role
}

// IsAdmin reports whether the token asserts the elevated role.
func (c *TokenClaims) IsAdmin() bool {
	return Role(c.UserRole).IsElevated()
}

// Expires returns the expiration time.
func (c *TokenClaims) Expires() time.Time {
	if c.RegisteredClaims.ExpiresAt != nil {
		return c.RegisteredClaims.ExpiresAt.Time
	}
	return time.Time{}
}

// IssuedAt returns the issued at time.
func (c *TokenClaims) IssuedAt() time.Time {
	if c.RegisteredClaims.IssuedAt != nil {
		return c.RegisteredClaims.IssuedAt.Time
	}
	return time.Time{}
}

// TokenID returns the unique token id claim.
func (c *TokenClaims) TokenID() string {
	return c.RegisteredClaims.ID
}

// ensureTokenID assigns a fresh random jti so two tokens issued for the
// same identity never collide in replay detection.
func ensureTokenID(claims *jwt.RegisteredClaims) {
	if claims.ID == "" {
		claims.ID = uuid.NewString()
	}
}
