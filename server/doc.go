// Package server owns the HTTP surface: the Gin engine, server lifecycle
// with graceful shutdown, and the respond helpers that map application
// errors to the client-facing JSON contract.
package server
