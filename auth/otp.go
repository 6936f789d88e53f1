package auth

import (
	"context"
	stderrors "errors"

	"github.com/wheelhouse/storefront/errors"
	"github.com/wheelhouse/storefront/logger"
	"github.com/wheelhouse/storefront/mailer"
	"github.com/wheelhouse/storefront/models"
	"github.com/wheelhouse/storefront/password"
	"github.com/wheelhouse/storefront/store"
)

// ResendOtp replaces any live OTP for the user with a fresh one and emails
// the plaintext code. The record persists even when delivery fails; the
// transport error still surfaces so the client can retry.
func (s *Service) ResendOtp(ctx context.Context, userID string) error {
	oid, ok := parseUserID(userID)
	if !ok {
		return errors.NotFound("User not found")
	}
	user, err := s.users.FindByID(ctx, oid)
	if err != nil {
		if stderrors.Is(err, store.ErrNotFound) {
			return errors.NotFound("User not found")
		}
		return errors.Internal("Error occurred while resending OTP", err)
	}

	// Single-live-record invariant: clear prior challenges first. The
	// unique index on user backs this up if two requests race.
	if err := s.otps.DeleteByUser(ctx, user.ID); err != nil {
		return errors.Internal("Error occurred while resending OTP", err)
	}

	code, err := password.GenerateOTP(s.cfg.OtpLength)
	if err != nil {
		return errors.Internal("Error occurred while resending OTP", err)
	}
	hash, err := s.hasher.Hash(code)
	if err != nil {
		return errors.Internal("Error occurred while resending OTP", err)
	}

	rec := &models.OtpRecord{
		User:      user.ID,
		Otp:       hash,
		ExpiresAt: s.now().Add(s.cfg.OtpTTL()),
	}
	if err := s.otps.Create(ctx, rec); err != nil {
		return errors.Internal("Error occurred while resending OTP", err)
	}

	if err := s.notifier.Send(ctx, user.Email, mailer.SubjectOtp, mailer.OtpBody(code)); err != nil {
		return errors.Internal("Error occurred while resending OTP", err)
	}

	s.log.Info("otp issued", map[string]interface{}{
		logger.FieldUserID: userID,
	})
	return nil
}

// VerifyOtp checks a supplied code against the user's live OTP record.
// Expired records are purged and fail; a mismatch keeps the record so the
// user can retry until expiry; a match consumes the record and marks the
// user verified.
func (s *Service) VerifyOtp(ctx context.Context, userID, code string) (*models.SanitizedIdentity, error) {
	oid, ok := parseUserID(userID)
	if !ok {
		return nil, errors.NotFound("User not found")
	}
	user, err := s.users.FindByID(ctx, oid)
	if err != nil {
		if stderrors.Is(err, store.ErrNotFound) {
			return nil, errors.NotFound("User not found")
		}
		return nil, errors.Internal("Some error occurred", err)
	}

	rec, err := s.otps.FindByUser(ctx, user.ID)
	if err != nil {
		if stderrors.Is(err, store.ErrNotFound) {
			return nil, errors.NotFound("OTP not found")
		}
		return nil, errors.Internal("Some error occurred", err)
	}

	if rec.Expired(s.now()) {
		if err := s.otps.DeleteByID(ctx, rec.ID); err != nil {
			return nil, errors.Internal("Some error occurred", err)
		}
		return nil, errors.Expired("OTP has expired")
	}

	if err := s.hasher.Verify(code, rec.Otp); err != nil {
		return nil, errors.Invalid("OTP is invalid")
	}

	if err := s.otps.DeleteByID(ctx, rec.ID); err != nil {
		return nil, errors.Internal("Some error occurred", err)
	}
	verified, err := s.users.SetVerified(ctx, user.ID)
	if err != nil {
		return nil, errors.Internal("Some error occurred", err)
	}

	s.log.Info("user verified", map[string]interface{}{
		logger.FieldUserID: userID,
	})
	return verified.Sanitize(), nil
}
