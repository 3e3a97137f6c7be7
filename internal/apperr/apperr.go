package apperr

import (
	"errors"
	"fmt"
)

// NotFoundError signals that a referenced entity does not exist. The REST
// boundary translates it into a 404 with the {message, status:false} envelope.
type NotFoundError struct {
	Resource string
	Field    string
	Value    any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with %s: %v", e.Resource, e.Field, e.Value)
}

func NotFound(resource, field string, value any) error {
	return &NotFoundError{Resource: resource, Field: field, Value: value}
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// APIError is a business rule violation carrying a user-facing message.
// Translated into a 400 at the boundary.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func New(message string) error {
	return &APIError{Message: message}
}

func Newf(format string, args ...any) error {
	return &APIError{Message: fmt.Sprintf(format, args...)}
}

func IsAPIError(err error) bool {
	var ae *APIError
	return errors.As(err, &ae)
}
