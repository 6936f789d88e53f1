package errors

import (
	stderrors "errors"
)

// MessageResponse is the JSON structure returned to clients for every
// failure: a single human-readable message, no codes or internals.
type MessageResponse struct {
	Message string `json:"message"`
}

// ToResponse converts an AppError to the client-facing body.
func (e *AppError) ToResponse() MessageResponse {
	return MessageResponse{Message: e.Message}
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
