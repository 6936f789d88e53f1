package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	stderrors "errors"

	"github.com/wheelhouse/storefront/errors"
	"github.com/wheelhouse/storefront/logger"
	"github.com/wheelhouse/storefront/mailer"
	"github.com/wheelhouse/storefront/models"
	"github.com/wheelhouse/storefront/store"
)

// resetDigest pre-hashes a reset token so it fits bcrypt's 72-byte input
// limit; issued tokens are JWTs several times that size.
func resetDigest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ForgotPassword issues a short-lived reset capability for the account and
// mails a link carrying the unhashed token. The returned address is echoed
// to the client, which deliberately confirms the account exists; see the
// enumeration note in the package docs before changing this.
func (s *Service) ForgotPassword(ctx context.Context, email string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if stderrors.Is(err, store.ErrNotFound) {
			return "", errors.NotFound("Email not found")
		}
		return "", errors.Internal("Error occurred while sending password reset mail", err)
	}

	if err := s.resets.DeleteByUser(ctx, user.ID); err != nil {
		return "", errors.Internal("Error occurred while sending password reset mail", err)
	}

	token, err := s.issuer.Issue(user.Sanitize(), true)
	if err != nil {
		return "", errors.Internal("Error occurred while sending password reset mail", err)
	}
	hash, err := s.hasher.Hash(resetDigest(token))
	if err != nil {
		return "", errors.Internal("Error occurred while sending password reset mail", err)
	}

	rec := &models.PasswordResetToken{
		User:      user.ID,
		Token:     hash,
		ExpiresAt: s.now().Add(s.cfg.OtpTTL()),
	}
	if err := s.resets.Create(ctx, rec); err != nil {
		return "", errors.Internal("Error occurred while sending password reset mail", err)
	}

	body := mailer.ResetLinkBody(s.cfg.Origin, user.ID.Hex(), token)
	if err := s.notifier.Send(ctx, user.Email, mailer.SubjectReset, body); err != nil {
		return "", errors.Internal("Error occurred while sending password reset mail", err)
	}

	s.log.Info("password reset link sent", map[string]interface{}{
		logger.FieldUserID: user.ID.Hex(),
	})
	return user.Email, nil
}

// ResetPassword consumes a valid reset token and overwrites the user's
// password hash. Expired tokens are purged and fail; a mismatch keeps the
// token for retry until expiry.
func (s *Service) ResetPassword(ctx context.Context, userID, token, newPassword string) error {
	oid, ok := parseUserID(userID)
	if !ok {
		return errors.NotFound("User not found")
	}
	user, err := s.users.FindByID(ctx, oid)
	if err != nil {
		if stderrors.Is(err, store.ErrNotFound) {
			return errors.NotFound("User not found")
		}
		return errors.Internal("Error occurred while resetting password", err)
	}

	rec, err := s.resets.FindByUser(ctx, user.ID)
	if err != nil {
		if stderrors.Is(err, store.ErrNotFound) {
			return errors.NotFound("Reset link is invalid")
		}
		return errors.Internal("Error occurred while resetting password", err)
	}

	if rec.Expired(s.now()) {
		if err := s.resets.DeleteByID(ctx, rec.ID); err != nil {
			return errors.Internal("Error occurred while resetting password", err)
		}
		return errors.Expired("Reset link has expired")
	}

	if err := s.hasher.Verify(resetDigest(token), rec.Token); err != nil {
		return errors.Invalid("Reset link is invalid")
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return errors.Internal("Error occurred while resetting password", err)
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return errors.Internal("Error occurred while resetting password", err)
	}
	if err := s.resets.DeleteByID(ctx, rec.ID); err != nil {
		return errors.Internal("Error occurred while resetting password", err)
	}

	s.log.Info("password reset", map[string]interface{}{
		logger.FieldUserID: userID,
	})
	return nil
}
