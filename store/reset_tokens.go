package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wheelhouse/storefront/models"
)

// ResetTokenStore persists pending password-reset challenges.
type ResetTokenStore struct {
	coll *mongo.Collection
}

// FindByUser returns the live reset token for a user, or ErrNotFound.
func (s *ResetTokenStore) FindByUser(ctx context.Context, userID primitive.ObjectID) (*models.PasswordResetToken, error) {
	var rec models.PasswordResetToken
	err := s.coll.FindOne(ctx, bson.M{"user": userID}).Decode(&rec)
	if err != nil {
		return nil, mapFindErr(err)
	}
	return &rec, nil
}

// Create inserts a new reset token record. The unique index on user rejects
// a second live record; callers delete prior records first.
func (s *ResetTokenStore) Create(ctx context.Context, rec *models.PasswordResetToken) error {
	rec.CreatedAt = time.Now()
	res, err := s.coll.InsertOne(ctx, rec)
	if err != nil {
		return mapWriteErr(err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		rec.ID = id
	}
	return nil
}

// DeleteByID removes a single reset token record.
func (s *ResetTokenStore) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// DeleteByUser removes all reset token records belonging to a user.
func (s *ResetTokenStore) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	_, err := s.coll.DeleteMany(ctx, bson.M{"user": userID})
	return err
}
