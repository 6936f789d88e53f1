package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/wheelhouse/storefront/models"
	"github.com/wheelhouse/storefront/session"
)

// identityKey is the gin context key for the resolved session identity.
const identityKey = "identity"

// SessionAuth resolves the session cookie into an identity in the request
// context. It never aborts: routes that require authentication check the
// identity themselves, so endpoints like check-auth can answer 401 with
// their own contract. Reset-capability tokens are not accepted as sessions.
func SessionAuth(svc *session.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(session.CookieName)
		if err != nil || cookie == "" {
			c.Next()
			return
		}

		claims, err := svc.Parse(cookie)
		if err != nil || claims.Reset {
			c.Next()
			return
		}

		c.Set(identityKey, claims.Identity())
		c.Next()
	}
}

// IdentityFromContext returns the session identity resolved by SessionAuth.
func IdentityFromContext(c *gin.Context) (*models.SanitizedIdentity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}
	identity, ok := v.(*models.SanitizedIdentity)
	return identity, ok
}
