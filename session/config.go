package session

import (
	"errors"
	"time"
)

// Config configures the session issuer.
type Config struct {
	// Secret is the HMAC signing key (required).
	Secret string

	// SessionTTL is the lifetime of session cookies (default: 7 days).
	SessionTTL time.Duration

	// ShortTTL is the lifetime of reset-capability tokens (default: 5m).
	ShortTTL time.Duration

	// Production selects the hardened cookie contract: Secure with
	// SameSite=None. Off, cookies are SameSite=Lax without Secure so local
	// storefronts work over plain HTTP.
	Production bool
}

// ApplyDefaults fills zero-valued fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.SessionTTL == 0 {
		c.SessionTTL = 7 * 24 * time.Hour
	}
	if c.ShortTTL == 0 {
		c.ShortTTL = 5 * time.Minute
	}
}

// Validate checks required fields.
func (c *Config) Validate() error {
	if c.Secret == "" {
		return errors.New("session: secret is required")
	}
	return nil
}
