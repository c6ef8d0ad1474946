// Package plateful is a typed Go client for the Plateful concept backend.
//
// The backend is organized as independent concept services (Sessioning,
// UserAuthentication, UserTastePreferences, RestaurantMenu, Feedback), each
// reachable as JSON over HTTP POST. All calls share one transport pipeline:
// the active credential is attached per the deployment's addressing scheme,
// mutations carry client-generated idempotency keys, and every failure —
// network, HTTP status, or an error embedded in a 200 response — surfaces as
// a normalized *apierr.Error.
//
//	client, err := plateful.New(ctx, plateful.Config{
//	    BaseURL: "https://plateful.example.com/api",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	identity, err := client.Auth.Authenticate(ctx, "alice", "pw")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	dishes, err := client.Tastes.GetLikedDishes(ctx, identity.User)
package plateful

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/oliviarmunoz/plateful-go/auth"
	"github.com/oliviarmunoz/plateful-go/transport"
)

// DefaultBaseURL is the relative fallback used when no base URL is
// configured, matching deployments that sit behind a dev proxy.
const DefaultBaseURL = "/api"

// DefaultTimeout bounds every call; the backend can be slow to answer while
// it recomputes recommendations.
const DefaultTimeout = 30 * time.Second

// Config configures a Client. The zero value is usable for local development.
type Config struct {
	// BaseURL of the backend API. Defaults to DefaultBaseURL.
	BaseURL string
	// Timeout for each call. Defaults to DefaultTimeout.
	Timeout time.Duration
	// DefaultHeaders are attached to every outbound request.
	DefaultHeaders map[string]string
	// Scheme selects how the credential is attached. Defaults to SchemeBearer.
	Scheme auth.Scheme
	// Tokens persists the credential across restarts. Defaults to an
	// in-memory store.
	Tokens auth.Store
	// OnSessionExpired is invoked at most once per expiry event when the
	// backend answers 401, typically to redirect to a login surface. Nil
	// suppresses the notification (headless and test contexts).
	OnSessionExpired func()
	// HTTPClient optionally overrides the underlying HTTP client.
	HTTPClient *http.Client
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Client is the entry point to all concept services. Safe for concurrent use.
// Each Client owns its own credential state, so tests can run several clients
// with independent identities.
type Client struct {
	Sessioning *SessioningService
	Auth       *AuthenticationService
	Tastes     *TastePreferencesService
	Menu       *MenuService
	Feedback   *FeedbackService

	core        *transport.Client
	credentials *auth.Context
	expiry      *auth.ExpiryNotifier
	scheme      auth.Scheme
}

// New creates a Client, reading any persisted credential from cfg.Tokens.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	store := cfg.Tokens
	if store == nil {
		store = auth.NewMemoryStore()
	}

	credentials, err := auth.NewContext(ctx, store)
	if err != nil {
		return nil, fmt.Errorf("plateful: %w", err)
	}
	expiry := auth.NewExpiryNotifier(cfg.OnSessionExpired)

	core, err := transport.New(transport.Config{
		BaseURL:        cfg.BaseURL,
		Timeout:        cfg.Timeout,
		DefaultHeaders: cfg.DefaultHeaders,
		Scheme:         cfg.Scheme,
		Credentials:    credentials,
		Expiry:         expiry,
		HTTPClient:     cfg.HTTPClient,
		Logger:         cfg.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("plateful: %w", err)
	}

	c := &Client{
		core:        core,
		credentials: credentials,
		expiry:      expiry,
		scheme:      cfg.Scheme,
	}
	c.Sessioning = &SessioningService{client: c}
	c.Auth = &AuthenticationService{client: c}
	c.Tastes = &TastePreferencesService{client: c}
	c.Menu = &MenuService{client: c}
	c.Feedback = &FeedbackService{client: c}
	return c, nil
}

// Authenticated reports whether a credential is currently active.
func (c *Client) Authenticated() bool {
	return c.credentials.Present()
}

// rememberIdentity stores the credential matching the active scheme and
// re-arms the expiry notifier for the next expiry event.
func (c *Client) rememberIdentity(ctx context.Context, user, session string) error {
	credential := session
	if c.scheme == auth.SchemeUser {
		credential = user
	}
	if err := c.credentials.Set(ctx, credential); err != nil {
		return err
	}
	c.expiry.Arm()
	return nil
}

func (c *Client) forgetCredential(ctx context.Context) error {
	return c.credentials.Clear(ctx)
}

// coerceString renders backend identifiers that arrive as either JSON strings
// or numbers.
func coerceString(v any) (string, bool) {
	switch value := v.(type) {
	case string:
		return value, value != ""
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64), true
	case int:
		return strconv.Itoa(value), true
	default:
		return "", false
	}
}
