package errorutil

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	// Retryable marks failures the view layer should offer a
	// "Try Again" action for.
	Retryable bool
	Err       error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest, details)
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &DomainError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

func NewUnauthorized(message string) error {
	return NewDomainError("UNAUTHORIZED", message, http.StatusUnauthorized, nil)
}

func NewForbidden(message string) error {
	return NewDomainError("FORBIDDEN", message, http.StatusForbidden, nil)
}

// NewPortalMismatch rejects a login whose role does not belong to the
// portal it was attempted on. The credentials were valid; this is a UX
// guard, not a security boundary.
func NewPortalMismatch(message string) error {
	return NewDomainError("PORTAL_MISMATCH", message, http.StatusForbidden, nil)
}

// NewUpstreamError wraps a failed call to the remote helpdesk API.
// Transport failures and 5xx responses are retryable; 4xx are not.
func NewUpstreamError(message string, upstreamStatus int, err error) error {
	retryable := upstreamStatus == 0 || upstreamStatus >= 500
	status := http.StatusBadGateway
	if upstreamStatus >= 400 && upstreamStatus < 500 {
		status = upstreamStatus
	}
	return &DomainError{
		Code:       "UPSTREAM_ERROR",
		Message:    message,
		HTTPStatus: status,
		Retryable:  retryable,
		Err:        err,
	}
}

// NewUpstreamSchemaError reports a backend response that does not match
// the documented contract. Fails loudly instead of guessing field names.
func NewUpstreamSchemaError(message string, details map[string]any) error {
	return &DomainError{
		Code:       "UPSTREAM_SCHEMA",
		Message:    message,
		HTTPStatus: http.StatusBadGateway,
		Details:    details,
	}
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func MapError(err error) error {
	return ToDomainError(err)
}

// IsUnauthorized reports whether err maps to an expired or rejected session.
func IsUnauthorized(err error) bool {
	de := ToDomainError(err)
	return de != nil && de.HTTPStatus == http.StatusUnauthorized
}
