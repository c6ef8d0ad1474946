package plateful

import (
	"context"
	"fmt"

	"github.com/oliviarmunoz/plateful-go/apierr"
	"github.com/oliviarmunoz/plateful-go/transport"
)

// AuthenticationService registers and authenticates users.
type AuthenticationService struct {
	client *Client
}

// Identity is the result of a successful authentication.
type Identity struct {
	User    string
	Session string
}

// Register creates a new user account and returns the user identifier.
func (s *AuthenticationService) Register(ctx context.Context, username, password string) (string, error) {
	raw, err := s.client.core.Call(ctx, "/UserAuthentication/register", map[string]any{
		"username": username,
		"password": password,
	}, transport.Mutating())
	if err != nil {
		return "", fmt.Errorf("register: %w", err)
	}

	var out struct {
		User any `json:"user"`
	}
	if err := transport.Decode(raw, &out); err != nil {
		return "", fmt.Errorf("register: %w", err)
	}
	user, ok := coerceString(out.User)
	if !ok {
		return "", fmt.Errorf("register: %w", apierr.MalformedError("registration failed: no user returned", 0))
	}
	return user, nil
}

// Authenticate verifies the credentials, stores the resulting credential, and
// returns the user/session pair.
func (s *AuthenticationService) Authenticate(ctx context.Context, username, password string) (Identity, error) {
	raw, err := s.client.core.Call(ctx, "/UserAuthentication/authenticate", map[string]any{
		"username": username,
		"password": password,
	}, transport.Mutating())
	if err != nil {
		return Identity{}, fmt.Errorf("authenticate: %w", err)
	}

	var out struct {
		User    any `json:"user"`
		Session any `json:"session"`
	}
	if err := transport.Decode(raw, &out); err != nil {
		return Identity{}, fmt.Errorf("authenticate: %w", err)
	}
	user, ok := coerceString(out.User)
	if !ok {
		return Identity{}, fmt.Errorf("authenticate: %w", apierr.MalformedError("authentication failed: no user returned", 0))
	}
	session, ok := coerceString(out.Session)
	if !ok {
		return Identity{}, fmt.Errorf("authenticate: %w", apierr.MalformedError("authentication failed: no session returned", 0))
	}

	identity := Identity{User: user, Session: session}
	if err := s.client.rememberIdentity(ctx, identity.User, identity.Session); err != nil {
		return Identity{}, fmt.Errorf("authenticate: %w", err)
	}
	return identity, nil
}

// GetUsername resolves a user identifier to a username. The backend answers
// with a list; the first well-formed entry wins.
func (s *AuthenticationService) GetUsername(ctx context.Context, user string) (string, error) {
	raw, err := s.client.core.Call(ctx, "/UserAuthentication/_getUsername", map[string]any{"user": user})
	if err != nil {
		return "", fmt.Errorf("get username: %w", err)
	}

	var entries []map[string]any
	if err := transport.Decode(raw, &entries); err != nil {
		return "", fmt.Errorf("get username: %w", err)
	}
	if len(entries) == 0 {
		return "", fmt.Errorf("get username: %w", apierr.MalformedError("no username returned", 0))
	}

	for _, entry := range entries {
		if username, ok := entry["username"].(string); ok && username != "" {
			return username, nil
		}
	}
	return "", fmt.Errorf("get username: %w", apierr.MalformedError("username response malformed", 0))
}

// Logout closes the session on the backend and drops the stored credential.
func (s *AuthenticationService) Logout(ctx context.Context, session string) error {
	if _, err := s.client.core.Call(ctx, "/logout", map[string]any{"session": session}, transport.Mutating()); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	if err := s.client.forgetCredential(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}
