package admin_session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/ceelo/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	sessionKeySuffix = "admin_session:"
	defaultKeyPrefix = "ceelo:"
)

var (
	// ErrSessionNotFound is returned when a token has no stored session
	ErrSessionNotFound = errors.New("admin session not found")

	// ErrSessionExpired is returned when storing a session that has already expired
	ErrSessionExpired = errors.New("admin session already expired")
)

// Config holds configuration for the Redis admin session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// KeyPrefix namespaces every key; defaults to "ceelo:"
	KeyPrefix string
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedis creates a new Redis-backed admin session repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = defaultKeyPrefix
	}

	return &redisRepository{
		client:    cfg.RedisClient,
		keyPrefix: prefix + sessionKeySuffix,
	}, nil
}

// CreateSession stores the session with a TTL matching its lifetime
func (r *redisRepository) CreateSession(ctx context.Context, input *CreateSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	session := input.Session
	if session.Token == "" {
		return errors.New("session token cannot be empty")
	}

	ttl := session.ExpiresAt.Sub(session.CreatedAt)
	if ttl <= 0 {
		return ErrSessionExpired
	}

	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := r.client.Set(ctx, r.keyPrefix+session.Token, sessionJSON, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	return nil
}

// GetSession retrieves a session by token
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil || input.Token == "" {
		return nil, ErrSessionNotFound
	}

	sessionJSON, err := r.client.Get(ctx, r.keyPrefix+input.Token).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session models.AdminSession
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &GetSessionOutput{
		Session: &session,
	}, nil
}

// DeleteSession revokes a session; deleting an unknown token is not an error
func (r *redisRepository) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil || input.Token == "" {
		return nil
	}

	if err := r.client.Del(ctx, r.keyPrefix+input.Token).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
