package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OtpRecord is a pending email-verification challenge. At most one live
// record exists per user; Otp holds the bcrypt hash of the code, never the
// code itself.
type OtpRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	User      primitive.ObjectID `bson:"user"`
	Otp       string             `bson:"otp"`
	ExpiresAt time.Time          `bson:"expiresAt"`
	CreatedAt time.Time          `bson:"createdAt"`
}

// Expired reports whether the record's TTL has elapsed at the given instant.
func (r *OtpRecord) Expired(now time.Time) bool {
	return r.ExpiresAt.Before(now)
}

// PasswordResetToken is a pending password-reset challenge. At most one live
// record exists per user; Token holds a bcrypt hash of the reset token's
// digest, never the token itself.
type PasswordResetToken struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	User      primitive.ObjectID `bson:"user"`
	Token     string             `bson:"token"`
	ExpiresAt time.Time          `bson:"expiresAt"`
	CreatedAt time.Time          `bson:"createdAt"`
}

// Expired reports whether the record's TTL has elapsed at the given instant.
func (t *PasswordResetToken) Expired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
