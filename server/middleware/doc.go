// Package middleware provides the Gin middleware stack of the storefront
// backend: request IDs, structured request logging, panic recovery, CORS for
// credentialed storefront origins, per-client rate limiting, and session
// resolution from the token cookie.
package middleware
