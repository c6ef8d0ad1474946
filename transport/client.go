// Package transport implements the request/response pipeline every Plateful
// call goes through: one configured HTTP client, outbound interception (auth
// attachment, idempotency keys, correlation IDs) and inbound interception
// (soft-error detection, unauthorized handling, failure classification).
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/oliviarmunoz/plateful-go/apierr"
	"github.com/oliviarmunoz/plateful-go/auth"
	"github.com/oliviarmunoz/plateful-go/internal/metrics"
	"github.com/oliviarmunoz/plateful-go/internal/platform/correlation"
	"github.com/oliviarmunoz/plateful-go/internal/platform/version"
)

// Config configures a transport Client. Immutable after New.
type Config struct {
	BaseURL        string
	Timeout        time.Duration
	DefaultHeaders map[string]string
	Scheme         auth.Scheme
	Credentials    *auth.Context
	Expiry         *auth.ExpiryNotifier

	// HTTPClient overrides the underlying client; its Timeout is forced to
	// the configured one. Nil means a fresh client.
	HTTPClient *http.Client
	// Logger defaults to slog.Default().
	Logger *slog.Logger
	// Clock defaults to the real clock.
	Clock clockwork.Clock
	// NewRequestID defaults to uuid.NewString. Overridable for tests.
	NewRequestID func() string
}

// Client is the single HTTP client all concept services share. Safe for
// concurrent use; it holds no per-call mutable state.
type Client struct {
	http         *http.Client
	baseURL      string
	headers      map[string]string
	scheme       auth.Scheme
	credentials  *auth.Context
	expiry       *auth.ExpiryNotifier
	logger       *slog.Logger
	clock        clockwork.Clock
	newRequestID func() string
}

// New creates a transport Client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if cfg.Credentials == nil {
		return nil, fmt.Errorf("credential context is required")
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	httpClient.Timeout = timeout

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	newRequestID := cfg.NewRequestID
	if newRequestID == nil {
		newRequestID = uuid.NewString
	}

	expiry := cfg.Expiry
	if expiry == nil {
		expiry = auth.NewExpiryNotifier(nil)
	}

	return &Client{
		http:         httpClient,
		baseURL:      strings.TrimSuffix(cfg.BaseURL, "/"),
		headers:      cfg.DefaultHeaders,
		scheme:       cfg.Scheme,
		credentials:  cfg.Credentials,
		expiry:       expiry,
		logger:       logger,
		clock:        clock,
		newRequestID: newRequestID,
	}, nil
}

type callOptions struct {
	mutating bool
}

// CallOption customizes a single call.
type CallOption func(*callOptions)

// Mutating marks the call as a mutation, so the outbound interceptor attaches
// a fresh idempotency key. Key generation lives here and nowhere else; domain
// functions never mint their own.
func Mutating() CallOption {
	return func(o *callOptions) { o.mutating = true }
}

// Call POSTs fields to path and returns the raw JSON payload, or a normalized
// error. The envelope always carries the endpoint path; mutations additionally
// carry a fresh "request" idempotency key, and embedded addressing schemes
// carry the active credential.
func (c *Client) Call(ctx context.Context, path string, fields map[string]any, opts ...CallOption) (json.RawMessage, error) {
	var options callOptions
	for _, opt := range opts {
		opt(&options)
	}

	corrID, ok := correlation.ID(ctx)
	if !ok {
		corrID = correlation.NewID()
		ctx = correlation.WithID(ctx, corrID)
	}
	logger := c.logger.With("path", path, "correlation_id", corrID)

	body, err := json.Marshal(c.envelope(path, fields, options))
	if err != nil {
		return nil, fmt.Errorf("marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())
	req.Header.Set(correlation.Header, corrID)
	for name, value := range c.headers {
		req.Header.Set(name, value)
	}
	if c.scheme == auth.SchemeBearer {
		if token := c.credentials.Credential(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := c.clock.Now()
	raw, callErr := c.roundTrip(ctx, req, logger)
	c.observe(path, start, callErr)
	return raw, callErr
}

// envelope merges the domain fields with the metadata the pipeline owns.
// Explicitly supplied fields win over scheme embedding.
func (c *Client) envelope(path string, fields map[string]any, options callOptions) map[string]any {
	envelope := make(map[string]any, len(fields)+3)
	for name, value := range fields {
		envelope[name] = value
	}
	envelope["path"] = path

	if options.mutating {
		envelope["request"] = c.newRequestID()
	}

	var embedded string
	switch c.scheme {
	case auth.SchemeSession:
		embedded = "session"
	case auth.SchemeUser:
		embedded = "user"
	default:
		return envelope
	}
	if _, present := envelope[embedded]; !present {
		if credential := c.credentials.Credential(); credential != "" {
			envelope[embedded] = credential
		}
	}
	return envelope
}

func (c *Client) roundTrip(ctx context.Context, req *http.Request, logger *slog.Logger) (json.RawMessage, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		norm := apierr.Normalize(err, 0, nil)
		logger.Debug("request failed before a response arrived", "kind", norm.Kind, "error", err)
		return nil, norm
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierr.NetworkError("read response body", resp.StatusCode, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.handleUnauthorized(ctx, logger)
		return nil, apierr.Normalize(nil, resp.StatusCode, body)
	}

	if _, soft := apierr.EmbeddedError(body); soft {
		norm := apierr.Normalize(nil, resp.StatusCode, body)
		logger.Debug("backend reported an error", "status", resp.StatusCode, "message", norm.Message)
		return nil, norm
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apierr.Normalize(nil, resp.StatusCode, body)
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return json.RawMessage("null"), nil
	}
	if !json.Valid(trimmed) {
		norm := apierr.Normalize(nil, resp.StatusCode, body)
		logger.Warn("backend returned a malformed payload", "status", resp.StatusCode)
		return nil, norm
	}
	return trimmed, nil
}

// handleUnauthorized clears the active credential and notifies the
// session-expired collaborator. Concurrent 401s collapse to one notification.
func (c *Client) handleUnauthorized(ctx context.Context, logger *slog.Logger) {
	if err := c.credentials.Clear(ctx); err != nil {
		logger.Error("failed to clear credential after unauthorized response", "error", err)
	}
	metrics.SessionExpiries.Inc()
	c.expiry.Notify()
}

func (c *Client) observe(path string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
		if kind := apierr.KindOf(err); kind != "" {
			outcome = string(kind)
		}
	}
	metrics.ObserveRequest(path, outcome, c.clock.Since(start).Seconds())
}

// Decode unmarshals a successful payload into target, mapping decode failures
// to a Malformed error carrying the raw payload.
func Decode(raw json.RawMessage, target any) error {
	if err := json.Unmarshal(raw, target); err != nil {
		e := apierr.MalformedError("response did not match the expected shape", 0)
		e.Raw = raw
		e.Cause = err
		return e
	}
	return nil
}
