// Package session implements the server-side session store. A session binds
// an opaque token, handed to the client in a cookie, to the authenticated
// user. The store is an injected capability so multiple server instances can
// share one backing Redis.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Data is the state bound to a session token.
type Data struct {
	UserID   uint   `json:"user_id"`
	UserName string `json:"user_name"`
}

// Store issues, resolves and revokes sessions.
type Store interface {
	// Create binds a fresh opaque token to the given data.
	Create(ctx context.Context, data Data) (string, error)
	// Get resolves a token. Returns (nil, nil) when the token is unknown or
	// expired. Resolving a live session extends its expiry (sliding TTL).
	Get(ctx context.Context, token string) (*Data, error)
	// Delete revokes a token. Deleting an unknown token is not an error.
	Delete(ctx context.Context, token string) error
}

const keyPrefix = "session:%s"

// RedisStore is the Redis-backed Store implementation.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore returns a Store backed by the given Redis client. Sessions
// expire ttl after their last use.
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func sessionKey(token string) string {
	return fmt.Sprintf(keyPrefix, token)
}

func (s *RedisStore) Create(ctx context.Context, data Data) (string, error) {
	token := uuid.NewString()

	payload, err := json.Marshal(data)
	if err != nil {
		return "", err
	}

	if err := s.rdb.Set(ctx, sessionKey(token), payload, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("session create: %w", err)
	}
	return token, nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (*Data, error) {
	if token == "" {
		return nil, nil
	}

	raw, err := s.rdb.Get(ctx, sessionKey(token)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session lookup: %w", err)
	}

	var data Data
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("session decode: %w", err)
	}

	// Sliding expiry: every authenticated request pushes the deadline out.
	s.rdb.Expire(ctx, sessionKey(token), s.ttl)

	return &data, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.rdb.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}
