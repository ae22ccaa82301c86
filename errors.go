package atoship

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ErrorKind classifies a pipeline outcome. It drives the retry decision:
// transient kinds feed back into the retry loop, terminal kinds surface
// immediately.
type ErrorKind string

const (
	// KindValidation covers local schema failures and server 400/422 responses.
	KindValidation ErrorKind = "validation"
	// KindAuthentication covers 401 and 403 responses and a missing API key.
	KindAuthentication ErrorKind = "authentication"
	// KindNotFound covers 404 responses.
	KindNotFound ErrorKind = "not_found"
	// KindRateLimit covers 429 responses; the delay honors Retry-After.
	KindRateLimit ErrorKind = "rate_limit"
	// KindServer covers 5xx responses.
	KindServer ErrorKind = "server"
	// KindTransport covers connection, DNS and timeout failures.
	KindTransport ErrorKind = "transport"
	// KindUnknown covers statuses outside the taxonomy (3xx, 405, 409, ...).
	// Unknown outcomes are terminal: retrying them blindly is unsafe.
	KindUnknown ErrorKind = "unknown"
)

// Retryable reports whether outcomes of this kind may be retried.
func (k ErrorKind) Retryable() bool {
	switch k {
	case KindRateLimit, KindServer, KindTransport:
		return true
	default:
		return false
	}
}

// Sentinel errors for common failure scenarios.
var (
	// ErrMissingAPIKey is returned when an authenticated operation is
	// attempted without a configured API key.
	ErrMissingAPIKey = errors.New("atoship: API key is required")

	// ErrRateLimited is the cause attached to 429 outcomes.
	ErrRateLimited = errors.New("atoship: rate limit exceeded")
)

// APIError is the structured error produced by the request pipeline.
type APIError struct {
	Kind       ErrorKind
	Message    string
	StatusCode int
	Code       string
	RequestID  string
	Timestamp  string
	RetryAfter time.Duration
	Attempt    int
	Cause      error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Message)
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.RequestID != "" {
		msg = fmt.Sprintf("[%s] %s", e.RequestID, msg)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *APIError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is compares error kinds for errors.Is.
func (e *APIError) Is(target error) bool {
	if e == nil {
		return false
	}
	if targetErr, ok := target.(*APIError); ok {
		return e.Kind == targetErr.Kind
	}
	return false
}

// IsTransient reports whether err represents a transient failure that might
// succeed on retry. True for transport faults, 5xx responses and 429s.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrRateLimited) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind.Retryable()
	}
	return false
}

// classifyStatus maps an HTTP status code to an ErrorKind. 400 is mapped to
// validation alongside 422 because the API uses both for rejected payloads.
// Only 5xx classifies as server; anything else outside the taxonomy is
// unknown and terminal.
func classifyStatus(status int) ErrorKind {
	switch {
	case status == 400 || status == 422:
		return KindValidation
	case status == 401 || status == 403:
		return KindAuthentication
	case status == 404:
		return KindNotFound
	case status == 429:
		return KindRateLimit
	case status >= 500:
		return KindServer
	default:
		return KindUnknown
	}
}

// defaultMessage supplies a human-readable message when the server body
// carries none.
func defaultMessage(kind ErrorKind, status int) string {
	switch kind {
	case KindValidation:
		return "request validation failed"
	case KindAuthentication:
		return "authentication failed"
	case KindNotFound:
		return "resource not found"
	case KindRateLimit:
		return "rate limit exceeded"
	case KindServer:
		return fmt.Sprintf("server error (status %d)", status)
	default:
		return fmt.Sprintf("request failed (status %d)", status)
	}
}

// ValidationError carries field-level violations from local schema checks.
// It is raised before any network attempt and is never retried.
type ValidationError struct {
	// Fields maps a field path (e.g. "items[0].quantity") to the ordered
	// list of violation messages for that field.
	Fields map[string][]string
}

// Error implements the error interface. Fields are rendered in sorted order
// so the message is deterministic.
func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "atoship: validation failed"
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		for _, msg := range e.Fields[name] {
			parts = append(parts, name+": "+msg)
		}
	}
	return "atoship: validation failed: " + strings.Join(parts, "; ")
}

// FieldErrors returns the messages recorded for a field path.
func (e *ValidationError) FieldErrors(field string) []string {
	if e == nil {
		return nil
	}
	return e.Fields[field]
}

func (e *ValidationError) add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}
