package storefront

import "github.com/goliatone/go-errors"

const (
	TextCodeSignerConfig       = "auth_signer_config"
	TextCodeInvalidCredentials = "auth_invalid_credentials"
	TextCodeIdentityNotFound   = "auth_identity_not_found"
	TextCodeTokenExpired       = "auth_token_expired"
	TextCodeTokenMalformed     = "auth_token_malformed"
	TextCodeImmutableClaim     = "auth_immutable_claim"
	TextCodeEmptyPassword      = "auth_empty_password"
	TextCodeOrderNotFound      = "order_not_found"
	TextCodeOrderNoItems       = "order_no_items"
	TextCodeProductNotFound    = "review_product_not_found"
	TextCodeRatingOutOfRange   = "review_rating_out_of_range"
)

// ErrInvalidSignerConfig is returned when the token signer is constructed
// with a missing signing key, issuer, or audience. It is fatal at startup;
// no request-time recovery exists.
var ErrInvalidSignerConfig = errors.New("token signer configuration is incomplete", errors.CategoryValidation).
	WithTextCode(TextCodeSignerConfig)

// ErrInvalidCredentials is the single failure reported for unknown email,
// wrong password, or empty credentials. The cases are deliberately
// indistinguishable to avoid user enumeration.
var ErrInvalidCredentials = errors.New("invalid credentials", errors.CategoryAuth).
	WithTextCode(TextCodeInvalidCredentials).
	WithCode(errors.CodeUnauthorized)

// ErrIdentityNotFound is returned when a referenced account does not exist.
var ErrIdentityNotFound = errors.New("identity not found", errors.CategoryNotFound).
	WithTextCode(TextCodeIdentityNotFound).
	WithCode(errors.CodeNotFound)

// ErrTokenExpired is returned when a token is past its validity window.
var ErrTokenExpired = errors.New("token is expired", errors.CategoryAuth).
	WithTextCode(TextCodeTokenExpired).
	WithCode(errors.CodeUnauthorized)

// ErrTokenMalformed is returned when a token cannot be parsed or verified.
var ErrTokenMalformed = errors.New("token is malformed", errors.CategoryAuth).
	WithTextCode(TextCodeTokenMalformed).
	WithCode(errors.CodeUnauthorized)

// ErrImmutableClaimMutation is returned when a claims decorator touches a
// protected claim.
var ErrImmutableClaimMutation = errors.New("immutable claim mutated", errors.CategoryInternal).
	WithTextCode(TextCodeImmutableClaim)

// ErrNoEmptyPassword rejects empty passwords before hashing.
var ErrNoEmptyPassword = errors.New("password must not be empty", errors.CategoryValidation).
	WithTextCode(TextCodeEmptyPassword).
	WithCode(errors.CodeBadRequest)

// ErrOrderNotFound is returned when an order id references no order. No
// mutation has been attempted when this is returned.
var ErrOrderNotFound = errors.New("order not found", errors.CategoryNotFound).
	WithTextCode(TextCodeOrderNotFound).
	WithCode(errors.CodeNotFound)

// ErrOrderWithoutItems rejects order creation with an empty item list.
var ErrOrderWithoutItems = errors.New("order must contain at least one item", errors.CategoryValidation).
	WithTextCode(TextCodeOrderNoItems).
	WithCode(errors.CodeBadRequest)

// ErrProductNotFound is returned when a review references a product that
// does not exist.
var ErrProductNotFound = errors.New("product not found", errors.CategoryNotFound).
	WithTextCode(TextCodeProductNotFound).
	WithCode(errors.CodeNotFound)

// ErrRatingOutOfRange rejects review ratings outside 1..5.
var ErrRatingOutOfRange = errors.New("rating must be between 1 and 5", errors.CategoryValidation).
	WithTextCode(TextCodeRatingOutOfRange).
	WithCode(errors.CodeBadRequest)

// IsNotFound reports whether err is one of the not-found outcomes. Callers
// branch on this instead of treating missing entities as store failures.
func IsNotFound(err error) bool {
	return errors.IsNotFound(err)
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var rich *errors.Error
	if errors.As(err, &rich) {
		return rich.Category == errors.CategoryValidation
	}
	return false
}
