package atoship

import (
	"context"
	"encoding/json"
	"time"
)

// RequestDescriptor describes one API call for the pipeline: an HTTP method,
// a path template with {param} segments, and the payload. It is built per
// call and consumed once by Execute.
type RequestDescriptor struct {
	Method       string
	Path         string
	PathParams   map[string]string
	Query        map[string]any
	Body         any
	RequiresAuth bool
}

// APIResponse is the uniform envelope returned for every call. Exactly one
// envelope is produced per logical call, after retries are exhausted or a
// terminal outcome occurs. Success implies Error is empty; failure implies
// Data is empty.
type APIResponse struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data,omitempty"`
	Error     string          `json:"error,omitempty"`
	RequestID string          `json:"requestId,omitempty"`
	Timestamp string          `json:"timestamp,omitempty"`
}

// PaginatedData is the Data payload of list endpoints.
type PaginatedData struct {
	Items   []json.RawMessage `json:"items"`
	Total   int               `json:"total"`
	Page    int               `json:"page"`
	Limit   int               `json:"limit"`
	HasMore bool              `json:"hasMore"`
}

// Option represents a configuration option applied at construction or via
// UpdateConfig.
type Option func(*Client)

// SleepFunc suspends the calling goroutine for the given duration or until
// the context is canceled, in which case it returns the context error.
// Injected in tests to make retry timing deterministic.
type SleepFunc func(ctx context.Context, d time.Duration) error

func defaultSleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
