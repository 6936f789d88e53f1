// Package errors provides unified error handling for the storefront backend.
// It implements a structured application error type with machine-readable
// codes and HTTP status mapping. Expected domain failures are created through
// the taxonomy constructors; anything else collapses to a generic internal
// error at the HTTP boundary so no internal detail leaks to clients.
package errors
