package gridapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Static errors for err113 compliance. These are wrapped with context at
// the call site, e.g. fmt.Errorf("%w: service name", ErrMissingConfiguration).
var (
	// ErrMissingConfiguration indicates a URL was derived while the service
	// or function name is still unset.
	ErrMissingConfiguration = errors.New("missing configuration")

	// ErrMissingCredentials indicates the login helper was called without
	// all required arguments.
	ErrMissingCredentials = errors.New("missing credentials")

	// ErrAuthenticationUnavailable indicates an execution was attempted
	// without both username and password configured. No HTTP call is made.
	ErrAuthenticationUnavailable = errors.New("authentication unavailable: username and password must be set")
)

// MaskSyntaxError reports a mask key containing an illegal character.
// Raised before any mutation is applied.
type MaskSyntaxError struct {
	Key string
}

// Error implements the error interface.
func (e *MaskSyntaxError) Error() string {
	return fmt.Sprintf("mask key %q must not contain '.'", e.Key)
}

// MaskPathError reports a mask path addressing a missing intermediate
// segment. Mask holds the tree's serialized form at the time of failure.
type MaskPathError struct {
	Segment string
	Path    string
	Mask    string
}

// Error implements the error interface.
func (e *MaskPathError) Error() string {
	return fmt.Sprintf("segment %q of path %q not found in %s", e.Segment, e.Path, e.Mask)
}

// InvalidArgumentError reports a malformed argument to a mask operation.
type InvalidArgumentError struct {
	Reason string
}

// Error implements the error interface.
func (e *InvalidArgumentError) Error() string {
	return "invalid argument: " + e.Reason
}

// APIError represents an error reported by the GridIron API, either as a
// non-2xx response body or as an "error" field inside a 200 payload (the
// session exchange reports failures that way).
type APIError struct {
	Code       string `json:"code,omitempty"`
	Message    string `json:"error"`
	StatusCode int    `json:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s (%s)", e.Message, e.Code)
	}

	return e.Message
}

// ParseAPIError decodes a remote error payload. Bodies that are not the
// documented {"error": ..., "code": ...} shape still produce a usable
// error carrying the HTTP status.
func ParseAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}

	err := json.Unmarshal(body, apiErr)
	if err != nil || apiErr.Message == "" {
		apiErr.Message = http.StatusText(statusCode)
		if apiErr.Message == "" {
			apiErr.Message = fmt.Sprintf("unexpected status %d", statusCode)
		}
	}

	return apiErr
}

// IsMaskSyntax checks if the error is a mask key syntax violation.
func IsMaskSyntax(err error) bool {
	target := &MaskSyntaxError{}

	return errors.As(err, &target)
}

// IsMaskPath checks if the error is a missing mask path segment.
func IsMaskPath(err error) bool {
	target := &MaskPathError{}

	return errors.As(err, &target)
}

// IsInvalidArgument checks if the error is a malformed mask argument.
func IsInvalidArgument(err error) bool {
	target := &InvalidArgumentError{}

	return errors.As(err, &target)
}

// IsRemoteError checks if the error originated from the remote API.
func IsRemoteError(err error) bool {
	target := &APIError{}

	return errors.As(err, &target)
}
