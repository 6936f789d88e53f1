// Package auth implements the credential-lifecycle workflow: signup, login,
// session checks, OTP verification and password reset.
//
// The service orchestrates narrow collaborator interfaces (stores, hasher,
// session issuer, notifier) and returns typed application errors; the HTTP
// adapter in package handler maps those to status codes and cookies. Each
// operation is a single request-scoped transaction with no in-process shared
// state; coordination happens at the document store.
//
// Enumeration posture: login failures never reveal whether the email or the
// password was wrong, while ForgotPassword confirms account existence by
// echoing the destination address. The asymmetry is inherited from the
// public storefront contract and is kept on purpose; tightening it would
// change client-visible behavior.
package auth
