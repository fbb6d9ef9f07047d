package emsearch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrorResponse is the error-shaped envelope of the API. Error responses
// and some successful deletes use it. Every field is optional.
type ErrorResponse struct {
	AppErrorCode *int        `json:"app_error_code,omitempty" yaml:"app_error_code,omitempty"`
	Message      *string     `json:"message"                  yaml:"message"`
	Errors       FieldErrors `json:"errors,omitempty"         yaml:"errors,omitempty"`
	StatusCode   *int        `json:"status_code,omitempty"    yaml:"status_code,omitempty"`
	Debug        any         `json:"debug,omitempty"          yaml:"debug,omitempty"`
}

// GetMessage returns the message, or an empty string when the server sent none.
func (e *ErrorResponse) GetMessage() string {
	if e == nil || e.Message == nil {
		return ""
	}

	return *e.Message
}

// FieldErrors maps a parameter name to its validation messages.
type FieldErrors map[string][]string

// UnmarshalJSON accepts the empty array the server sends when there are no
// field errors.
func (f *FieldErrors) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) || trimmed[0] == '[' {
		*f = nil

		return nil
	}

	var errs map[string][]string

	err := json.Unmarshal(trimmed, &errs)
	if err != nil {
		return fmt.Errorf("parsing field errors: %w", err)
	}

	*f = errs

	return nil
}

// UnexpectedStatusCodeError is returned by every resource client method when
// the server answers with a status code other than the one the endpoint
// documents.
type UnexpectedStatusCodeError struct {
	StatusCode         int
	ExpectedStatusCode int
	Header             http.Header
	Body               []byte
	// Payload is nil when the body could not be decoded as an ErrorResponse.
	Payload *ErrorResponse
}

// Error implements the error interface.
func (e *UnexpectedStatusCodeError) Error() string {
	msg := fmt.Sprintf("unexpected response status code %d (expected %d)", e.StatusCode, e.ExpectedStatusCode)
	if message := e.Payload.GetMessage(); message != "" {
		msg += ": " + message
	}

	return msg
}

// FieldErrors returns the validation messages carried by the payload.
func (e *UnexpectedStatusCodeError) FieldErrors() FieldErrors {
	if e.Payload == nil {
		return nil
	}

	return e.Payload.Errors
}

// ParseErrorResponse parses an error envelope from JSON.
func ParseErrorResponse(data []byte) (*ErrorResponse, error) {
	var errResp ErrorResponse

	err := json.Unmarshal(data, &errResp)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal error response: %w", err)
	}

	return &errResp, nil
}

// Static errors for local failures.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrBearerTokenRequired = errors.New("bearer token is required")
	ErrInvalidBaseURL      = errors.New("invalid base URL")
	ErrMissingPathParam    = errors.New("missing path parameter")
)

// AsUnexpectedStatus unwraps err into an UnexpectedStatusCodeError.
func AsUnexpectedStatus(err error) (*UnexpectedStatusCodeError, bool) {
	statusErr := &UnexpectedStatusCodeError{}
	if errors.As(err, &statusErr) {
		return statusErr, true
	}

	return nil, false
}

// HasStatus reports whether err is an UnexpectedStatusCodeError carrying
// the given observed status code.
func HasStatus(err error, statusCode int) bool {
	statusErr, ok := AsUnexpectedStatus(err)

	return ok && statusErr.StatusCode == statusCode
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return HasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is an unauthorized error.
func IsUnauthorized(err error) bool {
	return HasStatus(err, http.StatusUnauthorized)
}

// IsForbidden checks if the error is a forbidden error.
func IsForbidden(err error) bool {
	return HasStatus(err, http.StatusForbidden)
}

// IsValidationError checks if the error carries field validation failures.
func IsValidationError(err error) bool {
	return HasStatus(err, http.StatusUnprocessableEntity)
}
