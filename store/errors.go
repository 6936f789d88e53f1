package store

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound is returned when no document matches the query.
	ErrNotFound = errors.New("store: not found")

	// ErrDuplicate is returned when a write violates a unique index.
	ErrDuplicate = errors.New("store: duplicate key")
)

// mapFindErr normalizes driver lookup errors.
func mapFindErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

// mapWriteErr normalizes driver write errors.
func mapWriteErr(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}
