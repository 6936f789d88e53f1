package auth

import (
	"context"
	stderrors "errors"

	"github.com/wheelhouse/storefront/errors"
	"github.com/wheelhouse/storefront/logger"
	"github.com/wheelhouse/storefront/models"
	"github.com/wheelhouse/storefront/store"
)

// SignupInput is the profile and credential data for a new account.
type SignupInput struct {
	Name     string
	Email    string
	Password string
}

// Signup creates a new unverified user and issues a session credential.
// The email must be unused; duplicates fail with Conflict and leave the
// store untouched.
func (s *Service) Signup(ctx context.Context, in SignupInput) (*models.SanitizedIdentity, string, error) {
	if _, err := s.users.FindByEmail(ctx, in.Email); err == nil {
		return nil, "", errors.Conflict("User already exists")
	} else if !stderrors.Is(err, store.ErrNotFound) {
		return nil, "", errors.Internal("Error occurred during signup, please try again later", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, "", errors.Internal("Error occurred during signup, please try again later", err)
	}

	user := &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// The unique email index closes the race between the lookup above
		// and this insert.
		if stderrors.Is(err, store.ErrDuplicate) {
			return nil, "", errors.Conflict("User already exists")
		}
		return nil, "", errors.Internal("Error occurred during signup, please try again later", err)
	}

	identity := user.Sanitize()
	token, err := s.issuer.Issue(identity, false)
	if err != nil {
		return nil, "", errors.Internal("Error occurred during signup, please try again later", err)
	}

	s.log.Info("user signed up", map[string]interface{}{
		logger.FieldUserID: identity.ID,
	})
	return identity, token, nil
}

// Login verifies credentials and issues a session credential. An unknown
// email and a wrong password surface identically, so the response cannot be
// used to enumerate accounts.
func (s *Service) Login(ctx context.Context, email, plaintext string) (*models.SanitizedIdentity, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if stderrors.Is(err, store.ErrNotFound) {
			return nil, "", errors.InvalidCredentials()
		}
		return nil, "", errors.Internal("Some error occurred while logging in, please try again later", err)
	}

	if err := s.hasher.Verify(plaintext, user.Password); err != nil {
		return nil, "", errors.InvalidCredentials()
	}

	identity := user.Sanitize()
	token, err := s.issuer.Issue(identity, false)
	if err != nil {
		return nil, "", errors.Internal("Some error occurred while logging in, please try again later", err)
	}
	return identity, token, nil
}

// CheckSession re-fetches the user behind an already-verified session so the
// response reflects the latest persisted state.
func (s *Service) CheckSession(ctx context.Context, userID string) (*models.SanitizedIdentity, error) {
	oid, ok := parseUserID(userID)
	if !ok {
		return nil, errors.Unauthenticated()
	}
	user, err := s.users.FindByID(ctx, oid)
	if err != nil {
		if stderrors.Is(err, store.ErrNotFound) {
			return nil, errors.Unauthenticated()
		}
		return nil, errors.Internal("Some error occurred", err)
	}
	return user.Sanitize(), nil
}
