// Package redisstore provides a Redis-backed auth.Store so the active
// credential survives client restarts and can be shared between processes.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const defaultKey = "plateful:auth:credential"

// Store persists the credential under a single Redis key with an optional TTL.
type Store struct {
	rdb *goredis.Client
	key string
	ttl time.Duration
}

// Option customizes the store.
type Option func(*Store)

// WithKey overrides the Redis key the credential is stored under.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// WithTTL makes persisted credentials expire after d. Zero means no expiry.
func WithTTL(d time.Duration) Option {
	return func(s *Store) { s.ttl = d }
}

// New creates a Store from a Redis URL (e.g. "redis://localhost:6379") and
// verifies the connection.
func New(ctx context.Context, redisURL string, opts ...Option) (*Store, error) {
	parsed, err := goredis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	s := &Store{
		rdb: goredis.NewClient(parsed),
		key: defaultKey,
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.rdb.Ping(ctx).Err(); err != nil {
		_ = s.rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return s, nil
}

// NewWithClient wraps an existing go-redis client.
func NewWithClient(rdb *goredis.Client, opts ...Option) *Store {
	s := &Store{rdb: rdb, key: defaultKey}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get implements auth.Store. A missing key reads as the empty credential.
func (s *Store) Get(ctx context.Context) (string, error) {
	credential, err := s.rdb.Get(ctx, s.key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get credential: %w", err)
	}
	return credential, nil
}

// Set implements auth.Store.
func (s *Store) Set(ctx context.Context, credential string) error {
	if err := s.rdb.Set(ctx, s.key, credential, s.ttl).Err(); err != nil {
		return fmt.Errorf("set credential: %w", err)
	}
	return nil
}

// Clear implements auth.Store.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.rdb.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	return nil
}

// Close releases the underlying Redis connection.
func (s *Store) Close() error {
	return s.rdb.Close()
}
