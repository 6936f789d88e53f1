package auth

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wheelhouse/storefront/config"
	"github.com/wheelhouse/storefront/logger"
	"github.com/wheelhouse/storefront/password"
)

// Service orchestrates the seven credential-lifecycle operations.
type Service struct {
	users    UserStore
	otps     OtpStore
	resets   ResetTokenStore
	hasher   password.Hasher
	issuer   TokenIssuer
	notifier Notifier
	cfg      config.AuthConfig
	log      *logger.Logger

	// now is injectable for expiry tests.
	now func() time.Time
}

// Deps collects the collaborators of the workflow service.
type Deps struct {
	Users    UserStore
	Otps     OtpStore
	Resets   ResetTokenStore
	Hasher   password.Hasher
	Issuer   TokenIssuer
	Notifier Notifier
	Config   config.AuthConfig
	Logger   *logger.Logger
}

// NewService wires the workflow service from its collaborators.
func NewService(deps Deps) *Service {
	return &Service{
		users:    deps.Users,
		otps:     deps.Otps,
		resets:   deps.Resets,
		hasher:   deps.Hasher,
		issuer:   deps.Issuer,
		notifier: deps.Notifier,
		cfg:      deps.Config,
		log:      deps.Logger.WithComponent("auth"),
		now:      time.Now,
	}
}

// parseUserID turns a client-supplied id into an ObjectID. A malformed id
// cannot reference any user, so it surfaces as the same not-found failure.
func parseUserID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}
