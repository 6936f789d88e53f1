// Package models defines the persisted document types of the credential
// workflow and the sanitized identity projection served to clients.
package models
