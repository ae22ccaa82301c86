package atoship

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// pipelineState is one immutable snapshot of everything a call needs. A
// running Execute loads it once and never sees a concurrent update.
type pipelineState struct {
	cfg         Config
	transport   *transport
	retryPolicy RetryPolicy
	limiter     *rate.Limiter
	metrics     *MetricsCollector
	debug       *DebugConfig
	logger      Logger
	sleep       SleepFunc
}

// Client executes atoship API calls through one resilient pipeline:
// credential injection, schema validation, retry with backoff, outcome
// classification and envelope decoding. It is safe for concurrent use.
type Client struct {
	state    atomic.Pointer[pipelineState]
	updateMu sync.Mutex

	// Draft fields below accumulate option changes before installDraft
	// validates them and publishes a fresh snapshot. They are only touched
	// at construction and under updateMu.
	draft      Config
	httpClient *http.Client
	userAgent  string

	retryPolicy       RetryPolicy
	customRetryPolicy bool
	initialBackoff    time.Duration
	maxBackoff        time.Duration
	backoffMultiplier float64
	jitter            float64

	limiter *rate.Limiter
	metrics *MetricsCollector
	debug   *DebugConfig
	logger  Logger
	sleep   SleepFunc
}

// New constructs a Client for the given API key using the provided
// functional options. Construction fails if the resulting configuration
// violates its invariants.
func New(apiKey string, options ...Option) (*Client, error) {
	c := &Client{
		httpClient:        &http.Client{},
		userAgent:         defaultUserAgent,
		initialBackoff:    100 * time.Millisecond,
		maxBackoff:        10 * time.Second,
		backoffMultiplier: 2.0,
		jitter:            0.2,
		debug:             DefaultDebugConfig(),
		sleep:             defaultSleep,
		draft: Config{
			APIKey:     apiKey,
			MaxRetries: DefaultMaxRetries,
		},
	}

	for _, option := range options {
		option(c)
	}

	if err := c.installDraft(); err != nil {
		return nil, err
	}
	return c, nil
}

// NewFromEnv constructs a Client from environment variables (see
// ConfigFromEnv), then applies the provided options on top.
func NewFromEnv(options ...Option) (*Client, error) {
	cfg := ConfigFromEnv()
	opts := append([]Option{WithConfig(cfg)}, options...)
	return New(cfg.APIKey, opts...)
}

// installDraft validates the draft config and publishes a fresh snapshot,
// rebuilding the default retry policy unless the caller supplied their own.
// The snapshot owns its transport so later option changes never mutate
// state a running call already holds.
func (c *Client) installDraft() error {
	cfg := c.draft.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}
	if !c.customRetryPolicy {
		c.retryPolicy = NewDefaultRetryPolicy(cfg.MaxRetries, c.initialBackoff, c.maxBackoff, c.backoffMultiplier, c.jitter)
	}
	c.draft = cfg
	c.state.Store(&pipelineState{
		cfg:         cfg,
		transport:   &transport{httpClient: c.httpClient, userAgent: c.userAgent},
		retryPolicy: c.retryPolicy,
		limiter:     c.limiter,
		metrics:     c.metrics,
		debug:       c.debug,
		logger:      c.logger,
		sleep:       c.sleep,
	})
	return nil
}

// Config returns a copy of the active configuration.
func (c *Client) Config() Config {
	return c.state.Load().cfg
}

// UpdateConfig applies options to a copy of the active configuration,
// re-validates it and installs it atomically. Calls already in flight keep
// the snapshot they started with; the update only affects calls started
// after it returns.
func (c *Client) UpdateConfig(options ...Option) error {
	c.updateMu.Lock()
	defer c.updateMu.Unlock()

	c.draft = c.state.Load().cfg
	// Options mutate the debug config in place; clone it first so the
	// published snapshot stays untouched.
	if c.debug != nil {
		dbg := *c.debug
		c.debug = &dbg
	}
	for _, option := range options {
		option(c)
	}
	return c.installDraft()
}

// Execute dispatches one RequestDescriptor through the pipeline and returns
// the uniform response envelope. Local failures (missing credential,
// request-schema violations, malformed path parameters) are raised as
// errors before any network attempt; every server-side outcome, including
// exhausted retries, comes back as an envelope.
func (c *Client) Execute(ctx context.Context, desc RequestDescriptor) (*APIResponse, error) {
	st := c.state.Load()

	if desc.RequiresAuth && st.cfg.APIKey == "" {
		return nil, &APIError{
			Kind:    KindAuthentication,
			Message: "no API key configured",
			Cause:   ErrMissingAPIKey,
		}
	}

	if err := validateBody(desc.Body); err != nil {
		return nil, err
	}

	reqURL, err := buildURL(st.cfg.BaseURL, &desc)
	if err != nil {
		return nil, err
	}

	var body []byte
	if desc.Body != nil {
		encoded, err := json.Marshal(desc.Body)
		if err != nil {
			return nil, err
		}
		body = encoded
	}

	debugOn := st.cfg.Debug && st.logger != nil && st.debug != nil && st.debug.Enabled
	var requestID string
	if debugOn && st.debug.RequestIDGen != nil {
		requestID = st.debug.RequestIDGen()
	}
	if debugOn && st.debug.LogRequests {
		st.logger.Debug("starting request",
			"requestID", requestID, "method", desc.Method, "path", desc.Path,
			"body", maskedBody(body))
	}

	if st.metrics != nil {
		st.metrics.RecordRequestStart(desc.Method, desc.Path)
		defer st.metrics.RecordRequestEnd(desc.Method, desc.Path)
	}

	start := time.Now()
	for attempt := 0; ; attempt++ {
		if err := st.waitForSlot(ctx); err != nil {
			return nil, err
		}

		attemptStart := time.Now()
		result, err := st.transport.do(ctx, &st.cfg, &desc, reqURL, body)
		elapsed := time.Since(attemptStart)

		var apiErr *APIError
		switch {
		case err != nil:
			if ctx.Err() != nil {
				// Caller cancellation aborts the attempt and all retries.
				return nil, ctx.Err()
			}
			apiErr = &APIError{
				Kind:    KindTransport,
				Message: "network request failed",
				Cause:   err,
				Attempt: attempt + 1,
			}
		case result.status >= 200 && result.status < 300:
			envelope := decodeEnvelope(result.body)
			if debugOn {
				st.logger.Debug("request succeeded",
					"requestID", requestID, "method", desc.Method, "path", desc.Path,
					"attempt", attempt+1, "outcome", "success", "elapsedMs", elapsed.Milliseconds())
			}
			if st.metrics != nil {
				st.metrics.RecordRequest(desc.Method, desc.Path, result.status, time.Since(start))
			}
			return envelope, nil
		default:
			apiErr = newAPIErrorFromResult(result, attempt+1)
		}

		if debugOn {
			st.logger.Debug("request attempt failed",
				"requestID", requestID, "method", desc.Method, "path", desc.Path,
				"attempt", attempt+1, "outcome", string(apiErr.Kind), "elapsedMs", elapsed.Milliseconds())
		}
		if st.metrics != nil {
			st.metrics.RecordError(string(apiErr.Kind), desc.Method, desc.Path)
		}

		if apiErr.Kind.Retryable() {
			delay, retry := st.retryPolicy.ShouldRetry(attempt, apiErr.Kind, apiErr.RetryAfter)
			if retry {
				if debugOn && st.debug.LogRetries {
					st.logger.Info("scheduling retry",
						"requestID", requestID, "attempt", attempt+2, "backoff", delay, "path", desc.Path)
				}
				if st.metrics != nil {
					st.metrics.RecordRetry(desc.Method, desc.Path, attempt+1)
				}
				if err := st.sleep(ctx, delay); err != nil {
					return nil, err
				}
				continue
			}
		}

		if st.metrics != nil {
			st.metrics.RecordRequest(desc.Method, desc.Path, apiErr.StatusCode, time.Since(start))
		}
		return failureEnvelope(apiErr), nil
	}
}

// waitForSlot blocks on the optional client-side rate limiter.
func (st *pipelineState) waitForSlot(ctx context.Context) error {
	if st.limiter == nil {
		return nil
	}
	if err := st.limiter.Wait(ctx); err != nil {
		return err
	}
	if st.metrics != nil {
		st.metrics.RecordRateLimiterTokens(st.limiter.Tokens())
	}
	return nil
}

// decodeEnvelope turns a 2xx body into an APIResponse. Bodies already in
// envelope shape pass through with the invariants enforced; any other JSON
// document is wrapped as Data. An undecodable body yields a terminal
// failure envelope.
func decodeEnvelope(body []byte) *APIResponse {
	if len(body) == 0 {
		return &APIResponse{Success: true}
	}

	var probe struct {
		Success *bool `json:"success"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return &APIResponse{Success: false, Error: "invalid JSON response"}
	}
	if probe.Success == nil {
		data := make(json.RawMessage, len(body))
		copy(data, body)
		return &APIResponse{Success: true, Data: data}
	}

	var envelope APIResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return &APIResponse{Success: false, Error: "invalid JSON response"}
	}
	if envelope.Success {
		envelope.Error = ""
	} else {
		envelope.Data = nil
		if envelope.Error == "" {
			envelope.Error = "request failed"
		}
	}
	return &envelope
}

// newAPIErrorFromResult classifies a non-2xx response, pulling the message,
// request ID and any retry-after hint out of the body and headers.
func newAPIErrorFromResult(result *httpResult, attempt int) *APIError {
	var payload struct {
		Error     string `json:"error"`
		Message   string `json:"message"`
		Code      string `json:"code"`
		RequestID string `json:"requestId"`
		Timestamp string `json:"timestamp"`
		Details   struct {
			RetryAfter float64 `json:"retryAfter"`
		} `json:"details"`
	}
	_ = json.Unmarshal(result.body, &payload)

	kind := classifyStatus(result.status)
	message := payload.Error
	if message == "" {
		message = payload.Message
	}
	if message == "" {
		message = defaultMessage(kind, result.status)
	}

	apiErr := &APIError{
		Kind:       kind,
		Message:    message,
		StatusCode: result.status,
		Code:       payload.Code,
		RequestID:  payload.RequestID,
		Timestamp:  payload.Timestamp,
		Attempt:    attempt,
	}
	if kind == KindRateLimit {
		apiErr.Cause = ErrRateLimited
		apiErr.RetryAfter = parseRetryAfter(result.header.Get("Retry-After"))
		if apiErr.RetryAfter == 0 && payload.Details.RetryAfter > 0 {
			apiErr.RetryAfter = time.Duration(payload.Details.RetryAfter * float64(time.Second))
		}
	}
	return apiErr
}

// failureEnvelope renders a terminal classified error as the uniform
// envelope surfaced to callers.
func failureEnvelope(apiErr *APIError) *APIResponse {
	return &APIResponse{
		Success:   false,
		Error:     apiErr.Message,
		RequestID: apiErr.RequestID,
		Timestamp: apiErr.Timestamp,
	}
}

// maskedBody renders a request body for debug logging with sensitive fields
// masked. Non-object bodies are elided.
func maskedBody(body []byte) any {
	if len(body) == 0 {
		return nil
	}
	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil {
		return "<non-object body>"
	}
	return maskFields(fields)
}
