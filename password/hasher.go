package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch is returned by Verify when the secret does not match the hash.
var ErrMismatch = errors.New("password: secret does not match hash")

// Hasher is the one-way hashing and comparison primitive. The same
// implementation serves passwords, OTP codes and reset tokens.
type Hasher interface {
	// Hash returns a salted one-way hash of the secret.
	Hash(secret string) (string, error)

	// Verify checks a secret against a stored hash. Returns ErrMismatch
	// when they do not match.
	Verify(secret, hash string) error
}

// BcryptHasher implements Hasher using bcrypt.
type BcryptHasher struct {
	cost int
}

// BcryptOption configures the bcrypt hasher.
type BcryptOption func(*BcryptHasher)

// WithCost sets the bcrypt cost parameter (default: 10, range: 4-31).
func WithCost(cost int) BcryptOption {
	return func(h *BcryptHasher) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			h.cost = cost
		}
	}
}

// NewBcryptHasher creates a bcrypt-based hasher with a work factor of 10,
// matching the hashes already in production data.
func NewBcryptHasher(opts ...BcryptOption) *BcryptHasher {
	h := &BcryptHasher{cost: 10}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *BcryptHasher) Hash(secret string) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("password: empty secret")
	}
	if len(secret) > 72 {
		return "", errors.New("password: maximum length is 72 bytes (bcrypt limit)")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", fmt.Errorf("password: hash: %w", err)
	}
	return string(hash), nil
}

func (h *BcryptHasher) Verify(secret, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)); err != nil {
		return ErrMismatch
	}
	return nil
}
