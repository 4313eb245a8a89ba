package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/eventdesk/eventdesk/internal/domain/model"
)

// RedisBackend is a Redis-based durable backend for production use.
type RedisBackend struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisBackend creates a Redis-backed session backend.
func NewRedisBackend(client redis.UniversalClient) *RedisBackend {
	return &RedisBackend{client: client}
}

// NewRedisBackendWithPrefix creates a Redis backend with a custom key prefix,
// for multi-tenant deployments sharing one Redis.
func NewRedisBackendWithPrefix(client redis.UniversalClient, prefix string) *RedisBackend {
	return &RedisBackend{client: client, prefix: prefix}
}

func (b *RedisBackend) ReadToken(ctx context.Context) (string, error) {
	val, err := b.client.Get(ctx, b.prefix+KeyAccessToken).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("redis get token: %w", err)
	}
	return val, nil
}

func (b *RedisBackend) WriteToken(ctx context.Context, token string) error {
	if token == "" {
		return errors.New("token cannot be empty")
	}
	return b.client.Set(ctx, b.prefix+KeyAccessToken, token, 0).Err()
}

func (b *RedisBackend) DeleteToken(ctx context.Context) error {
	return b.client.Del(ctx, b.prefix+KeyAccessToken).Err()
}

func (b *RedisBackend) ReadProfile(ctx context.Context) (model.UserProfile, error) {
	data, err := b.client.Get(ctx, b.prefix+KeyUser).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.UserProfile{}, ErrNotFound
		}
		return model.UserProfile{}, fmt.Errorf("redis get profile: %w", err)
	}

	var profile model.UserProfile
	if unmarshalErr := json.Unmarshal([]byte(data), &profile); unmarshalErr != nil {
		return model.UserProfile{}, fmt.Errorf("unmarshal profile: %w", unmarshalErr)
	}
	return profile, nil
}

func (b *RedisBackend) WriteProfile(ctx context.Context, profile model.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	return b.client.Set(ctx, b.prefix+KeyUser, data, 0).Err()
}

func (b *RedisBackend) DeleteProfile(ctx context.Context) error {
	return b.client.Del(ctx, b.prefix+KeyUser).Err()
}
