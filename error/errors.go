package error

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

type ErrorMessage struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ValidationError carries every violated field constraint of one request.
type ValidationError struct {
	Fields []string
}

func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Fields: messages}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Fields, ", ")
}

type NotFoundError struct {
	Resource string
}

func NewNotFoundError(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

type AuthenticationError struct {
	Message string
}

func NewAuthenticationError(message string) *AuthenticationError {
	return &AuthenticationError{Message: message}
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

type AuthorizationError struct {
	Message string
}

func NewAuthorizationError(message string) *AuthorizationError {
	return &AuthorizationError{Message: message}
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// UpstreamError wraps a failure of the third-party hotel API.
type UpstreamError struct {
	Message string
	Err     error
}

func NewUpstreamError(message string, err error) *UpstreamError {
	return &UpstreamError{Message: message, Err: err}
}

func (e *UpstreamError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// StatusCode maps an error of the taxonomy above to its HTTP status.
// Anything unrecognised is a 500.
func StatusCode(err error) int {
	var validationErr *ValidationError
	var notFoundErr *NotFoundError
	var authnErr *AuthenticationError
	var authzErr *AuthorizationError
	var upstreamErr *UpstreamError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &authnErr):
		return http.StatusUnauthorized
	case errors.As(err, &authzErr):
		return http.StatusForbidden
	case errors.As(err, &upstreamErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage is the message put in the error envelope. Unknown errors
// only expose their detail when showDetail is set.
func PublicMessage(err error, showDetail bool) string {
	if StatusCode(err) == http.StatusInternalServerError && !showDetail {
		return "Internal server error"
	}
	return err.Error()
}

func ReturnJSONError(w http.ResponseWriter, err interface{}, code int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(err)
}
