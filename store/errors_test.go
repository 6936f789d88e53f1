package store

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestMapFindErr(t *testing.T) {
	if got := mapFindErr(mongo.ErrNoDocuments); !errors.Is(got, ErrNotFound) {
		t.Errorf("mapFindErr(ErrNoDocuments) = %v, want ErrNotFound", got)
	}

	passthrough := errors.New("network down")
	if got := mapFindErr(passthrough); got != passthrough {
		t.Errorf("mapFindErr() = %v, want the original error", got)
	}
}

func TestMapWriteErr(t *testing.T) {
	dup := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
	if got := mapWriteErr(dup); !errors.Is(got, ErrDuplicate) {
		t.Errorf("mapWriteErr(duplicate key) = %v, want ErrDuplicate", got)
	}

	passthrough := errors.New("network down")
	if got := mapWriteErr(passthrough); got != passthrough {
		t.Errorf("mapWriteErr() = %v, want the original error", got)
	}
}
