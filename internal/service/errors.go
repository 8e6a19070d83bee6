package service

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation matches every *ValidationError via errors.Is.
	ErrValidation = errors.New("validation failed")
	// ErrStorage matches every *StorageError via errors.Is.
	ErrStorage = errors.New("storage failure")

	ErrPostNotFound       = errors.New("blog post not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Validation failures. Callers show their text to the client.
var (
	ErrMissingFields   = &ValidationError{Msg: "missing required fields"}
	ErrInvalidEmail    = &ValidationError{Msg: "invalid email format"}
	ErrSlugTaken       = &ValidationError{Msg: "slug already exists"}
	ErrInvalidSlug     = &ValidationError{Msg: "slug must contain only lowercase letters, digits and single hyphens"}
	ErrUnknownAuthor   = &ValidationError{Msg: "author does not exist"}
	ErrInvalidURL      = &ValidationError{Msg: "urls must be absolute http or https links"}
	ErrInvalidReadTime = &ValidationError{Msg: "read time must not be negative"}
	ErrBlankTitle      = &ValidationError{Msg: "title must not be blank"}
	ErrEmailTaken      = &ValidationError{Msg: "email already taken"}
)

// ValidationError reports input rejected before anything was persisted.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// StorageError wraps an unexpected repository failure.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool { return target == ErrStorage }

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
