package auth

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wheelhouse/storefront/models"
)

// UserStore is the credential-store surface the workflow needs.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	SetVerified(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	UpdatePassword(ctx context.Context, id primitive.ObjectID, hash string) error
}

// OtpStore is the ephemeral store for email-verification challenges.
type OtpStore interface {
	FindByUser(ctx context.Context, userID primitive.ObjectID) (*models.OtpRecord, error)
	Create(ctx context.Context, rec *models.OtpRecord) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	DeleteByUser(ctx context.Context, userID primitive.ObjectID) error
}

// ResetTokenStore is the ephemeral store for password-reset challenges.
type ResetTokenStore interface {
	FindByUser(ctx context.Context, userID primitive.ObjectID) (*models.PasswordResetToken, error)
	Create(ctx context.Context, rec *models.PasswordResetToken) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	DeleteByUser(ctx context.Context, userID primitive.ObjectID) error
}

// TokenIssuer produces signed session credentials from a sanitized identity.
// shortLived selects the reset-capability flavor.
type TokenIssuer interface {
	Issue(identity *models.SanitizedIdentity, shortLived bool) (string, error)
}

// Notifier sends a formatted message to a user's registered email.
type Notifier interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
