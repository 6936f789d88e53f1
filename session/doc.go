// Package session issues and verifies the signed, time-limited credentials
// that prove authentication.
//
// Two flavors exist: the long-lived session token delivered to browsers in
// the `token` cookie, and a short-lived variant embedded in password-reset
// links. Both encode the sanitized identity and are signed with HS256; the
// short-lived flavor is distinguished by its TTL and a claim marker, so a
// reset capability cannot be replayed as a browsing session.
package session
