package plateful

import (
	"context"
	"fmt"

	"github.com/oliviarmunoz/plateful-go/apierr"
	"github.com/oliviarmunoz/plateful-go/transport"
)

// SessioningService manages backend sessions. The session-to-user mapping is
// always re-resolved from the backend; nothing is cached client-side.
type SessioningService struct {
	client *Client
}

// Create opens a new session for user and stores the resulting credential.
func (s *SessioningService) Create(ctx context.Context, user string) (string, error) {
	raw, err := s.client.core.Call(ctx, "/Sessioning/create", map[string]any{"user": user}, transport.Mutating())
	if err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}

	var out struct {
		Session any `json:"session"`
	}
	if err := transport.Decode(raw, &out); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	session, ok := coerceString(out.Session)
	if !ok {
		return "", fmt.Errorf("create session: %w", apierr.MalformedError("no session returned", 0))
	}

	if err := s.client.rememberIdentity(ctx, user, session); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return session, nil
}

// Delete closes the session and drops the stored credential.
func (s *SessioningService) Delete(ctx context.Context, session string) error {
	if _, err := s.client.core.Call(ctx, "/Sessioning/delete", map[string]any{"session": session}, transport.Mutating()); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if err := s.client.forgetCredential(ctx); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// GetUser resolves the user owning a session. An unknown session surfaces the
// backend's application error.
func (s *SessioningService) GetUser(ctx context.Context, session string) (string, error) {
	raw, err := s.client.core.Call(ctx, "/Sessioning/_getUser", map[string]any{"session": session})
	if err != nil {
		return "", fmt.Errorf("resolve session user: %w", err)
	}

	var out struct {
		User any `json:"user"`
	}
	if err := transport.Decode(raw, &out); err != nil {
		return "", fmt.Errorf("resolve session user: %w", err)
	}
	user, ok := coerceString(out.User)
	if !ok {
		return "", fmt.Errorf("resolve session user: %w", apierr.MalformedError("no user returned", 0))
	}
	return user, nil
}
