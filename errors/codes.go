package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

const (
	// ErrCodeConflict indicates an identity already exists.
	ErrCodeConflict ErrorCode = "CONFLICT"
	// ErrCodeNotFound indicates an unknown user, token, or record.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeInvalidCredentials indicates a failed login attempt.
	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	// ErrCodeInvalid indicates a code or token mismatch.
	ErrCodeInvalid ErrorCode = "INVALID"
	// ErrCodeExpired indicates a record's TTL has elapsed.
	ErrCodeExpired ErrorCode = "EXPIRED"
	// ErrCodeUnauthenticated indicates no resolvable session.
	ErrCodeUnauthenticated ErrorCode = "UNAUTHENTICATED"
	// ErrCodeInvalidInput indicates a malformed request.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeInternal indicates a store or notifier failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)
