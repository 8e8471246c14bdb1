package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an application error for the HTTP layer
type Kind int

const (
	// KindUnknown is any error not produced by this package
	KindUnknown Kind = iota
	// KindValidation bad input, policy violation, duplicate username, last-admin deletion
	KindValidation
	// KindNotFound row with the given ID is absent
	KindNotFound
	// KindAuth bad credentials, invalid or expired token
	KindAuth
	// KindStore remote sheet failure or a malformed sheet
	KindStore
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindAuth:
		return "auth"
	case KindStore:
		return "store"
	default:
		return "unknown"
	}
}

// Error is the error type returned by the store and the domain services
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation reports bad input or a violated business rule
func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NotFound reports a missing record
func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Auth reports an authentication failure
func Auth(message string) *Error {
	return &Error{Kind: KindAuth, Message: message}
}

// Store wraps a failure of the remote sheet service
func Store(err error, format string, args ...interface{}) *Error {
	return &Error{Kind: KindStore, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the kind of the first *Error in err's chain
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// MessageOf returns the human readable message of the first *Error in err's chain
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

func IsValidation(err error) bool { return KindOf(err) == KindValidation }

func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

func IsAuth(err error) bool { return KindOf(err) == KindAuth }

func IsStore(err error) bool { return KindOf(err) == KindStore }
