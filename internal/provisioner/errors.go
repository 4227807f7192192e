package provisioner

import "errors"

// ErrorKind classifies why CreateUser failed.
type ErrorKind string

const (
	// KindConnection: the database session could not be established.
	KindConnection ErrorKind = "ConnectionError"
	// KindValidation: email or password were rejected before connecting.
	KindValidation ErrorKind = "ValidationError"
	// KindHashing: the password could not be hashed.
	KindHashing ErrorKind = "HashingError"
	// KindPersistence: the insert failed, including uniqueness violations.
	KindPersistence ErrorKind = "PersistenceError"
	// KindUnknown: anything else, including recovered panics.
	KindUnknown ErrorKind = "UnknownError"
)

// Error is the only error type returned by CreateUser.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return string(e.Kind) + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind carried by err. It returns "" for nil and
// KindUnknown for errors that were not produced by the provisioner.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
