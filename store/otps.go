package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wheelhouse/storefront/models"
)

// OtpStore persists pending email-verification challenges.
type OtpStore struct {
	coll *mongo.Collection
}

// FindByUser returns the live OTP record for a user, or ErrNotFound.
func (s *OtpStore) FindByUser(ctx context.Context, userID primitive.ObjectID) (*models.OtpRecord, error) {
	var rec models.OtpRecord
	err := s.coll.FindOne(ctx, bson.M{"user": userID}).Decode(&rec)
	if err != nil {
		return nil, mapFindErr(err)
	}
	return &rec, nil
}

// Create inserts a new OTP record. The unique index on user rejects a
// second live record; callers delete prior records first.
func (s *OtpStore) Create(ctx context.Context, rec *models.OtpRecord) error {
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

// DeleteByID removes a single OTP record.
func (s *OtpStore) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// DeleteByUser removes all OTP records belonging to a user.
func (s *OtpStore) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	_, err := s.coll.DeleteMany(ctx, bson.M{"user": userID})
	return err
}
