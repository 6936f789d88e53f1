package session

import (
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"

	"github.com/wheelhouse/storefront/models"
)

// Claims is the JWT payload: the sanitized identity plus standard time
// claims. Reset marks short-lived reset-capability tokens.
type Claims struct {
	gojwt.RegisteredClaims
	Name       string `json:"name"`
	Email      string `json:"email"`
	IsVerified bool   `json:"isVerified"`
	IsAdmin    bool   `json:"isAdmin"`
	Reset      bool   `json:"reset,omitempty"`
}

// Identity reconstructs the sanitized identity carried by the claims.
func (c *Claims) Identity() *models.SanitizedIdentity {
	return &models.SanitizedIdentity{
		ID:         c.Subject,
		Name:       c.Name,
		Email:      c.Email,
		IsVerified: c.IsVerified,
		IsAdmin:    c.IsAdmin,
	}
}

// Service signs and verifies session credentials.
type Service struct {
	cfg Config
}

// NewService creates a session issuer.
func NewService(cfg Config) (*Service, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Service{cfg: cfg}, nil
}

// Issue signs a credential for the identity. shortLived selects the
// reset-capability flavor with the short TTL.
func (s *Service) Issue(identity *models.SanitizedIdentity, shortLived bool) (string, error) {
	now := time.Now()
	ttl := s.cfg.SessionTTL
	if shortLived {
		ttl = s.cfg.ShortTTL
	}
	claims := &Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   identity.ID,
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(ttl)),
		},
		Name:       identity.Name,
		Email:      identity.Email,
		IsVerified: identity.IsVerified,
		IsAdmin:    identity.IsAdmin,
		Reset:      shortLived,
	}
	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("session: sign token: %w", err)
	}
	return signed, nil
}

// Parse validates a credential and returns its claims. Signature, expiry
// and signing method are all verified.
func (s *Service) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := gojwt.ParseWithClaims(tokenString, claims, s.keyFunc,
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("session: parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("session: invalid token")
	}
	return claims, nil
}

func (s *Service) keyFunc(token *gojwt.Token) (interface{}, error) {
	if token.Method.Alg() != gojwt.SigningMethodHS256.Alg() {
		return nil, fmt.Errorf("session: unexpected signing method: %s", token.Method.Alg())
	}
	return []byte(s.cfg.Secret), nil
}
