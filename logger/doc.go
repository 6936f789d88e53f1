// Package logger provides structured logging for the storefront backend
// using zerolog.
//
// It supports JSON and console output formats, log level configuration,
// and component-scoped loggers with structured fields.
package logger
