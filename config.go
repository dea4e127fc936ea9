package storefront

import (
	"os"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/goliatone/go-errors"
	"github.com/joho/godotenv"
)

// DefaultTokenExpiration is the token validity window in minutes used when
// no explicit value is configured.
const DefaultTokenExpiration = 1440

// SignerConfig is the concrete Config implementation. Zero values are
// rejected by Validate, not silently defaulted, except for the expiration
// window.
type SignerConfig struct {
	SigningKey      string
	Issuer          string
	Audience        []string
	TokenExpiration int
}

var _ Config = (*SignerConfig)(nil)

func (c *SignerConfig) GetSigningKey() string { return c.SigningKey }
func (c *SignerConfig) GetIssuer() string     { return c.Issuer }
func (c *SignerConfig) GetAudience() []string { return c.Audience }

func (c *SignerConfig) GetTokenExpiration() int {
	if c.TokenExpiration <= 0 {
		return DefaultTokenExpiration
	}
	return c.TokenExpiration
}

// Validate enforces the signer preconditions. A failure here is fatal at
// startup; the process must not serve requests with a broken signer.
func (c *SignerConfig) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.SigningKey, validation.Required),
		validation.Field(&c.Issuer, validation.Required),
		validation.Field(&c.Audience, validation.Required, validation.Length(1, 0)),
	)
	if err != nil {
		return errors.Wrap(err, ErrInvalidSignerConfig.Category, ErrInvalidSignerConfig.Message).
			WithTextCode(ErrInvalidSignerConfig.TextCode)
	}
	return nil
}

// ConfigFromEnv loads the signer configuration from the environment,
// reading a .env file first when one is present.
//
// Variables: JWT_SIGNING_KEY, JWT_ISSUER, JWT_AUDIENCE (comma separated),
// JWT_EXPIRATION_MINUTES.
func ConfigFromEnv() (*SignerConfig, error) {
	// Missing .env is fine, real environments set variables directly.
	_ = godotenv.Load()

	cfg := &SignerConfig{
		SigningKey:      os.Getenv("JWT_SIGNING_KEY"),
		Issuer:          os.Getenv("JWT_ISSUER"),
		Audience:        splitCSV(os.Getenv("JWT_AUDIENCE")),
		TokenExpiration: getenvInt("JWT_EXPIRATION_MINUTES", DefaultTokenExpiration),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
