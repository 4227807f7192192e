// Package common defines sentinel errors shared by the store, repository and
// provisioning layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("unique constraint violated on email")

	// Input errors.
	ErrorValidation = errors.New("validation error")

	// Startup errors.
	ErrorUnsupportedDSN = errors.New("unsupported database dsn")
)
