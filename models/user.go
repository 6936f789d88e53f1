package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the root identity record. The email is unique (case-sensitive,
// enforced by an index at write time); Password always holds a bcrypt hash,
// never plaintext.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name       string             `bson:"name" json:"-"`
	Email      string             `bson:"email" json:"-"`
	Password   string             `bson:"password" json:"-"`
	IsVerified bool               `bson:"isVerified" json:"-"`
	IsAdmin    bool               `bson:"isAdmin" json:"-"`
	CreatedAt  time.Time          `bson:"createdAt" json:"-"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"-"`
}

// SanitizedIdentity is the only user projection ever serialized to a client
// or embedded in a session credential. It must never carry the password hash.
type SanitizedIdentity struct {
	ID         string `json:"_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	IsVerified bool   `json:"isVerified"`
	IsAdmin    bool   `json:"isAdmin"`
}

// Sanitize derives the client-safe projection of a user.
func (u *User) Sanitize() *SanitizedIdentity {
	return &SanitizedIdentity{
		ID:         u.ID.Hex(),
		Name:       u.Name,
		Email:      u.Email,
		IsVerified: u.IsVerified,
		IsAdmin:    u.IsAdmin,
	}
}
