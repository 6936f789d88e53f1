package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wheelhouse/storefront/models"
)

// UserStore persists identity records.
type UserStore struct {
	coll *mongo.Collection
}

// FindByEmail looks a user up by exact email. Returns ErrNotFound when
// no account matches.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return nil, mapFindErr(err)
	}
	return &user, nil
}

// FindByID looks a user up by object id.
func (s *UserStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		return nil, mapFindErr(err)
	}
	return &user, nil
}

// Create inserts a new user. Returns ErrDuplicate when the email is taken.
func (s *UserStore) Create(ctx context.Context, user *models.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	res, err := s.coll.InsertOne(ctx, user)
	if err != nil {
		return mapWriteErr(err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = id
	}
	return nil
}

// SetVerified flips the verification flag and returns the updated user.
func (s *UserStore) SetVerified(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	update := bson.M{"$set": bson.M{"isVerified": true, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user models.User
	err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&user)
	if err != nil {
		return nil, mapFindErr(err)
	}
	return &user, nil
}

// UpdatePassword overwrites the stored password hash.
func (s *UserStore) UpdatePassword(ctx context.Context, id primitive.ObjectID, hash string) error {
	update := bson.M{"$set": bson.M{"password": hash, "updatedAt": time.Now()}}
	res, err := s.coll.UpdateByID(ctx, id, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
