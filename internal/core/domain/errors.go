// Package domain contains the core business entities for the fundraising service.
package domain

import (
	"errors"
	"sort"
	"strings"
)

// Domain errors - represent business rule violations.
var (
	// ErrInvalidRequest is returned for malformed requests.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrCampaignNotFound is returned when a campaign id does not resolve.
	ErrCampaignNotFound = errors.New("fundraiser not found")

	// ErrContentNotFound is returned when a content item id does not resolve.
	ErrContentNotFound = errors.New("content not found")

	// ErrProfileNotFound is returned when a user has no profile row.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrPaymentGatewayError is returned when the checkout session cannot be created.
	ErrPaymentGatewayError = errors.New("payment gateway error")

	// ErrUnauthorized is returned when credentials or tokens are rejected.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnexpected is returned for any other collaborator failure.
	ErrUnexpected = errors.New("unexpected collaborator failure")
)

// ServiceError wraps errors with additional context.
type ServiceError struct {
	Err     error
	Message string
	Code    string
}

func (e *ServiceError) Error() string {
	if e.Message != "" {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(err error, message, code string) *ServiceError {
	return &ServiceError{Err: err, Message: message, Code: code}
}

// ValidationError carries per-field messages for rejected form input.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap lets errors.Is(err, ErrInvalidRequest) match validation failures.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}
