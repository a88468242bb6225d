package storage

import "errors"

// Common client storage errors
var (
	// ErrSignatureNotFound indicates that no usable signature is cached for the activity
	ErrSignatureNotFound = errors.New("signature not found")

	// ErrBoundsNotFound indicates that no bounds are cached for the activity
	ErrBoundsNotFound = errors.New("bounds not found")

	// ErrCredentialsNotFound indicates that no credentials were saved
	ErrCredentialsNotFound = errors.New("credentials not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
