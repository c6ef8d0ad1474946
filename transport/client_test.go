package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oliviarmunoz/plateful-go/apierr"
	"github.com/oliviarmunoz/plateful-go/auth"
)

type capturedRequest struct {
	header http.Header
	body   map[string]any
}

// echoServer replies with the given body and records every request it sees.
func echoServer(t *testing.T, status int, response string) (*httptest.Server, *[]capturedRequest) {
	t.Helper()
	var (
		mu       sync.Mutex
		captured []capturedRequest
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		mu.Lock()
		captured = append(captured, capturedRequest{header: r.Header.Clone(), body: body})
		mu.Unlock()
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return srv, &captured
}

func newTestClient(t *testing.T, baseURL string, mutate func(*Config)) (*Client, *auth.Context) {
	t.Helper()
	authCtx, err := auth.NewContext(context.Background(), auth.NewMemoryStore())
	require.NoError(t, err)

	cfg := Config{
		BaseURL:     baseURL,
		Timeout:     2 * time.Second,
		Credentials: authCtx,
	}
	if mutate != nil {
		mutate(&cfg)
	}
	client, err := New(cfg)
	require.NoError(t, err)
	return client, authCtx
}

func TestCallAttachesBearerHeader(t *testing.T) {
	srv, captured := echoServer(t, 200, `{"user":"u1"}`)
	client, authCtx := newTestClient(t, srv.URL, nil)
	require.NoError(t, authCtx.Set(context.Background(), "tok-1"))

	_, err := client.Call(context.Background(), "/Sessioning/_getUser", map[string]any{"session": "s1"})
	require.NoError(t, err)

	req := (*captured)[0]
	assert.Equal(t, "Bearer tok-1", req.header.Get("Authorization"))
	_, hasSession := req.body["session"]
	assert.True(t, hasSession, "explicit fields must pass through")
}

func TestCallWithoutCredentialSendsNoAuth(t *testing.T) {
	srv, captured := echoServer(t, 200, `{}`)
	client, _ := newTestClient(t, srv.URL, nil)

	_, err := client.Call(context.Background(), "/RestaurantMenu/_getMenuItems", map[string]any{"restaurant": "Chipotle"})
	require.NoError(t, err)

	assert.Empty(t, (*captured)[0].header.Get("Authorization"))
}

func TestCallEmbedsSessionCredential(t *testing.T) {
	srv, captured := echoServer(t, 200, `{}`)
	client, authCtx := newTestClient(t, srv.URL, func(cfg *Config) {
		cfg.Scheme = auth.SchemeSession
	})
	require.NoError(t, authCtx.Set(context.Background(), "sess-42"))

	_, err := client.Call(context.Background(), "/Feedback/submitFeedback", map[string]any{
		"author": "alice", "item": "i1", "rating": 5,
	}, Mutating())
	require.NoError(t, err)

	req := (*captured)[0]
	// Exactly one addressing scheme on the wire.
	assert.Equal(t, "sess-42", req.body["session"])
	assert.Empty(t, req.header.Get("Authorization"))
}

func TestCallEmbeddedSchemeDoesNotClobberExplicitField(t *testing.T) {
	srv, captured := echoServer(t, 200, `{}`)
	client, authCtx := newTestClient(t, srv.URL, func(cfg *Config) {
		cfg.Scheme = auth.SchemeUser
	})
	require.NoError(t, authCtx.Set(context.Background(), "u-credential"))

	_, err := client.Call(context.Background(), "/UserTastePreferences/_getLikedDishes", map[string]any{"user": "u-explicit"})
	require.NoError(t, err)

	assert.Equal(t, "u-explicit", (*captured)[0].body["user"])
}

func TestCallEnvelopeCarriesPath(t *testing.T) {
	srv, captured := echoServer(t, 200, `{}`)
	client, _ := newTestClient(t, srv.URL, nil)

	_, err := client.Call(context.Background(), "/UserTastePreferences/addLikedDish", map[string]any{"user": "u1", "dish": "ramen"}, Mutating())
	require.NoError(t, err)

	assert.Equal(t, "/UserTastePreferences/addLikedDish", (*captured)[0].body["path"])
}

func TestMutatingCallsCarryFreshRequestIDs(t *testing.T) {
	srv, captured := echoServer(t, 200, `{}`)
	client, _ := newTestClient(t, srv.URL, nil)

	for i := 0; i < 2; i++ {
		_, err := client.Call(context.Background(), "/Feedback/submitFeedback", map[string]any{"author": "a", "item": "i", "rating": 3}, Mutating())
		require.NoError(t, err)
	}

	first, ok := (*captured)[0].body["request"].(string)
	require.True(t, ok)
	second, ok := (*captured)[1].body["request"].(string)
	require.True(t, ok)

	// UUID-shaped and never reused across attempts.
	_, err := uuid.Parse(first)
	require.NoError(t, err)
	_, err = uuid.Parse(second)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestReadCallsCarryNoRequestID(t *testing.T) {
	srv, captured := echoServer(t, 200, `{}`)
	client, _ := newTestClient(t, srv.URL, nil)

	_, err := client.Call(context.Background(), "/Feedback/_getFeedback", map[string]any{"author": "a", "item": "i"})
	require.NoError(t, err)

	_, present := (*captured)[0].body["request"]
	assert.False(t, present)
}

func TestCallSetsCorrelationAndDefaultHeaders(t *testing.T) {
	srv, captured := echoServer(t, 200, `{}`)
	client, _ := newTestClient(t, srv.URL, func(cfg *Config) {
		cfg.DefaultHeaders = map[string]string{"X-Client-Version": "1.2.3"}
	})

	_, err := client.Call(context.Background(), "/Sessioning/create", map[string]any{"user": "u1"}, Mutating())
	require.NoError(t, err)

	req := (*captured)[0]
	assert.Equal(t, "application/json", req.header.Get("Content-Type"))
	assert.Equal(t, "1.2.3", req.header.Get("X-Client-Version"))
	assert.NotEmpty(t, req.header.Get("X-Correlation-ID"))
	assert.Contains(t, req.header.Get("User-Agent"), "plateful-go/")
}

func TestCallTurnsEmbeddedErrorIntoFailure(t *testing.T) {
	srv, _ := echoServer(t, 200, `{"error":"invalid credentials"}`)
	client, _ := newTestClient(t, srv.URL, nil)

	_, err := client.Call(context.Background(), "/UserAuthentication/authenticate", map[string]any{"username": "alice", "password": "pw"})

	e, ok := apierr.As(err)
	require.True(t, ok)
	assert.Equal(t, apierr.KindApplication, e.Kind)
	assert.Equal(t, "invalid credentials", e.Message)
}

func TestCallClassifiesTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)

	client, _ := newTestClient(t, srv.URL, func(cfg *Config) {
		cfg.Timeout = 50 * time.Millisecond
	})

	_, err := client.Call(context.Background(), "/RestaurantMenu/_getRecommendation", map[string]any{"restaurant": "r", "user": "u"})

	// Timeouts are never misreported as plain network failures.
	assert.Equal(t, apierr.KindTimeout, apierr.KindOf(err))
}

func TestCallClassifiesConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client, _ := newTestClient(t, srv.URL, nil)

	_, err := client.Call(context.Background(), "/Sessioning/create", map[string]any{"user": "u1"}, Mutating())

	assert.Equal(t, apierr.KindNetwork, apierr.KindOf(err))
}

func TestCallClassifiesServerError(t *testing.T) {
	srv, _ := echoServer(t, 503, "Service Unavailable")
	client, _ := newTestClient(t, srv.URL, nil)

	_, err := client.Call(context.Background(), "/Sessioning/create", map[string]any{"user": "u1"}, Mutating())

	e, ok := apierr.As(err)
	require.True(t, ok)
	assert.Equal(t, apierr.KindNetwork, e.Kind)
	assert.Equal(t, 503, e.HTTPStatus)
}

func TestCallClassifiesMalformedBody(t *testing.T) {
	srv, _ := echoServer(t, 200, "<!doctype html>")
	client, _ := newTestClient(t, srv.URL, nil)

	_, err := client.Call(context.Background(), "/UserAuthentication/_getUsername", map[string]any{"user": "u1"})

	assert.Equal(t, apierr.KindMalformed, apierr.KindOf(err))
}

func TestCallReturnsNullForEmptyBody(t *testing.T) {
	srv, _ := echoServer(t, 200, "")
	client, _ := newTestClient(t, srv.URL, nil)

	raw, err := client.Call(context.Background(), "/logout", map[string]any{"session": "s1"}, Mutating())
	require.NoError(t, err)
	assert.Equal(t, json.RawMessage("null"), raw)
}

func TestUnauthorizedClearsCredentialAndNotifiesOnce(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	var redirects atomic.Int32
	store := auth.NewMemoryStore()
	authCtx, err := auth.NewContext(context.Background(), store)
	require.NoError(t, err)
	require.NoError(t, authCtx.Set(context.Background(), "stale-token"))

	expiry := auth.NewExpiryNotifier(func() { redirects.Add(1) })
	client, err := New(Config{
		BaseURL:     srv.URL,
		Credentials: authCtx,
		Expiry:      expiry,
	})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, callErr := client.Call(context.Background(), "/Feedback/_getFeedback", map[string]any{"author": "a", "item": "i"})
			assert.Equal(t, apierr.KindUnauthorized, apierr.KindOf(callErr))
		}()
	}
	wg.Wait()

	// One expiry event, one redirect, no matter how many calls failed at once.
	assert.Equal(t, int32(1), redirects.Load())
	assert.False(t, authCtx.Present())
	persisted, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Empty(t, persisted)
}

func TestUnauthorizedNotifiesAgainAfterReauth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	var redirects atomic.Int32
	expiry := auth.NewExpiryNotifier(func() { redirects.Add(1) })
	client, authCtx := newTestClient(t, srv.URL, func(cfg *Config) {
		cfg.Expiry = expiry
	})

	_, _ = client.Call(context.Background(), "/x", nil)
	_, _ = client.Call(context.Background(), "/x", nil)
	require.Equal(t, int32(1), redirects.Load())

	// Re-authentication re-arms the notifier.
	require.NoError(t, authCtx.Set(context.Background(), "fresh"))
	expiry.Arm()

	_, _ = client.Call(context.Background(), "/x", nil)
	assert.Equal(t, int32(2), redirects.Load())
}

func TestNewValidatesConfig(t *testing.T) {
	authCtx, err := auth.NewContext(context.Background(), auth.NewMemoryStore())
	require.NoError(t, err)

	_, err = New(Config{Credentials: authCtx})
	assert.Error(t, err)

	_, err = New(Config{BaseURL: "http://localhost"})
	assert.Error(t, err)
}

func TestDecode(t *testing.T) {
	var out struct {
		Session string `json:"session"`
	}
	require.NoError(t, Decode(json.RawMessage(`{"session":"s1"}`), &out))
	assert.Equal(t, "s1", out.Session)

	err := Decode(json.RawMessage(`[1,2,3]`), &out)
	assert.Equal(t, apierr.KindMalformed, apierr.KindOf(err))
}
