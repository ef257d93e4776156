// Package cache holds the Redis-backed statement cache.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
)

const keyPrefix = "ledger:"

// StatementCache keeps computed statements in Redis keyed by org and ledger version.
// Statements of superseded versions are never addressed again and simply expire.
type StatementCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

var _ portsrepo.StatementCache = (*StatementCache)(nil)

// NewStatementCache wraps an existing client. A zero ttl keeps statements until evicted.
func NewStatementCache(client redis.UniversalClient, ttl time.Duration) *StatementCache {
	return &StatementCache{client: client, ttl: ttl}
}

// Connect parses a redis:// URL, pings the server and returns the cache with its client.
func Connect(ctx context.Context, url string, ttl time.Duration) (*StatementCache, *redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("redis ping: %w", err)
	}
	return NewStatementCache(client, ttl), client, nil
}

func statementKey(orgID string, version int64, key string) string {
	return fmt.Sprintf("%sstmt:%s:%d:%s", keyPrefix, orgID, version, key)
}

func (c *StatementCache) Get(ctx context.Context, orgID string, version int64, key string, dst any) (bool, error) {
	raw, err := c.client.Get(ctx, statementKey(orgID, version, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get: %w", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decode cached statement %s: %w", key, err)
	}
	return true, nil
}

func (c *StatementCache) Set(ctx context.Context, orgID string, version int64, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode statement %s: %w", key, err)
	}
	if err := c.client.Set(ctx, statementKey(orgID, version, key), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}
