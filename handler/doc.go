// Package handler adapts the credential workflow to HTTP: request binding
// and validation, cookie writes, and the status-code contract of the
// storefront client.
package handler
