package storetest

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wheelhouse/storefront/models"
	"github.com/wheelhouse/storefront/store"
)

// Users is an in-memory UserStore.
type Users struct {
	mu    sync.Mutex
	byID  map[primitive.ObjectID]models.User
	order []primitive.ObjectID
}

// NewUsers creates an empty in-memory user store.
func NewUsers() *Users {
	return &Users{byID: make(map[primitive.ObjectID]models.User)}
}

// Count returns the number of stored users.
func (s *Users) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}

func (s *Users) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.order {
		if u := s.byID[id]; u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Users) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	out := u
	return &out, nil
}

func (s *Users) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.order {
		if s.byID[id].Email == user.Email {
			return store.ErrDuplicate
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	s.byID[user.ID] = *user
	s.order = append(s.order, user.ID)
	return nil
}

func (s *Users) SetVerified(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	u.IsVerified = true
	u.UpdatedAt = time.Now()
	s.byID[id] = u
	out := u
	return &out, nil
}

func (s *Users) UpdatePassword(_ context.Context, id primitive.ObjectID, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[id]
	if !ok {
		return store.ErrNotFound
	}
	u.Password = hash
	u.UpdatedAt = time.Now()
	s.byID[id] = u
	return nil
}

// Otps is an in-memory OtpStore enforcing one live record per user.
type Otps struct {
	mu     sync.Mutex
	byUser map[primitive.ObjectID]models.OtpRecord
}

// NewOtps creates an empty in-memory OTP store.
func NewOtps() *Otps {
	return &Otps{byUser: make(map[primitive.ObjectID]models.OtpRecord)}
}

// CountByUser returns the number of live records for a user (0 or 1).
func (s *Otps) CountByUser(userID primitive.ObjectID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byUser[userID]; ok {
		return 1
	}
	return 0
}

func (s *Otps) FindByUser(_ context.Context, userID primitive.ObjectID) (*models.OtpRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.byUser[userID]
	if !ok {
		return nil, store.ErrNotFound
	}
	out := rec
	return &out, nil
}

func (s *Otps) Create(_ context.Context, rec *models.OtpRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byUser[rec.User]; ok {
		return store.ErrDuplicate
	}
	if rec.ID.IsZero() {
		rec.ID = primitive.NewObjectID()
	}
	rec.CreatedAt = time.Now()
	s.byUser[rec.User] = *rec
	return nil
}

func (s *Otps) DeleteByID(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for user, rec := range s.byUser {
		if rec.ID == id {
			delete(s.byUser, user)
		}
	}
	return nil
}

func (s *Otps) DeleteByUser(_ context.Context, userID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byUser, userID)
	return nil
}

// ResetTokens is an in-memory ResetTokenStore enforcing one live record per
// user.
type ResetTokens struct {
	mu     sync.Mutex
	byUser map[primitive.ObjectID]models.PasswordResetToken
}

// NewResetTokens creates an empty in-memory reset token store.
func NewResetTokens() *ResetTokens {
	return &ResetTokens{byUser: make(map[primitive.ObjectID]models.PasswordResetToken)}
}

// CountByUser returns the number of live records for a user (0 or 1).
func (s *ResetTokens) CountByUser(userID primitive.ObjectID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byUser[userID]; ok {
		return 1
	}
	return 0
}

func (s *ResetTokens) FindByUser(_ context.Context, userID primitive.ObjectID) (*models.PasswordResetToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.byUser[userID]
	if !ok {
		return nil, store.ErrNotFound
	}
	out := rec
	return &out, nil
}

func (s *ResetTokens) Create(_ context.Context, rec *models.PasswordResetToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byUser[rec.User]; ok {
		return store.ErrDuplicate
	}
	if rec.ID.IsZero() {
		rec.ID = primitive.NewObjectID()
	}
	rec.CreatedAt = time.Now()
	s.byUser[rec.User] = *rec
	return nil
}

func (s *ResetTokens) DeleteByID(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for user, rec := range s.byUser {
		if rec.ID == id {
			delete(s.byUser, user)
		}
	}
	return nil
}

func (s *ResetTokens) DeleteByUser(_ context.Context, userID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byUser, userID)
	return nil
}
