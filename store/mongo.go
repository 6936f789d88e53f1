package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wheelhouse/storefront/config"
	"github.com/wheelhouse/storefront/logger"
)

// Collection names.
const (
	usersCollection       = "users"
	otpsCollection        = "otps"
	resetTokensCollection = "passwordresettokens"
)

// Store owns the Mongo client and hands out typed collection stores. It is
// constructed once at boot and shared by reference.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	log    *logger.Logger
}

// Connect establishes the Mongo connection, pings the deployment and
// ensures the workflow indexes exist.
func Connect(ctx context.Context, cfg config.MongoConfig, log *logger.Logger) (*Store, error) {
	connectCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.ConnectTimeout)*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("store: connect: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, fmt.Errorf("store: ping: %w", err)
	}

	s := &Store{
		client: client,
		db:     client.Database(cfg.Database),
		log:    log.WithComponent("store"),
	}
	if err := s.ensureIndexes(connectCtx); err != nil {
		return nil, err
	}

	s.log.Info("connected to mongodb", map[string]interface{}{
		"database": cfg.Database,
	})
	return s, nil
}

// ensureIndexes creates the unique indexes the workflow invariants rely on:
// one account per email, and a single live ephemeral record per user in each
// of the otp and reset-token collections. The per-user uniqueness closes the
// window where two concurrent resend requests could both insert.
func (s *Store) ensureIndexes(ctx context.Context) error {
	userKeys := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := s.db.Collection(usersCollection).Indexes().CreateOne(ctx, userKeys); err != nil {
		return fmt.Errorf("store: users index: %w", err)
	}

	perUser := mongo.IndexModel{
		Keys:    bson.D{{Key: "user", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	for _, name := range []string{otpsCollection, resetTokensCollection} {
		if _, err := s.db.Collection(name).Indexes().CreateOne(ctx, perUser); err != nil {
			return fmt.Errorf("store: %s index: %w", name, err)
		}
	}
	return nil
}

// Ping verifies the deployment is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// Close disconnects the Mongo client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Users returns the user store.
func (s *Store) Users() *UserStore {
	return &UserStore{coll: s.db.Collection(usersCollection)}
}

// Otps returns the OTP record store.
func (s *Store) Otps() *OtpStore {
	return &OtpStore{coll: s.db.Collection(otpsCollection)}
}

// ResetTokens returns the password-reset token store.
func (s *Store) ResetTokens() *ResetTokenStore {
	return &ResetTokenStore{coll: s.db.Collection(resetTokensCollection)}
}
