package auth

import (
	"context"
	"fmt"
	"sync"
)

// Context is the injectable holder of the single active credential. Its
// meaning (token, session id, or user id) is fixed by the deployment's
// Scheme. It caches the credential in memory and writes through to the Store,
// so reads on the hot path never block on the store.
//
// Each client owns its own Context; there is no package-global credential
// state, which keeps concurrent test clients with independent identities
// possible.
type Context struct {
	mu         sync.RWMutex
	store      Store
	credential string
}

// NewContext creates a credential context backed by store, reading any
// persisted credential once at startup.
func NewContext(ctx context.Context, store Store) (*Context, error) {
	credential, err := store.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("read persisted credential: %w", err)
	}
	return &Context{store: store, credential: credential}, nil
}

// Credential returns the active credential, or "" when none is set.
func (c *Context) Credential() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.credential
}

// Present reports whether a credential is currently active.
func (c *Context) Present() bool {
	return c.Credential() != ""
}

// Set replaces the active credential and persists it.
func (c *Context) Set(ctx context.Context, credential string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.store.Set(ctx, credential); err != nil {
		return fmt.Errorf("persist credential: %w", err)
	}
	c.credential = credential
	return nil
}

// Clear drops the active credential from memory and from the store.
func (c *Context) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.credential = ""
	if err := c.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear persisted credential: %w", err)
	}
	return nil
}
