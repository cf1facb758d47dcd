package round

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/ceelo/internal/ceelo"
	"github.com/KirkDiggler/ceelo/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key suffixes for Redis
	rosterKeySuffix  = "roster"
	resultsKeySuffix = "results"

	defaultKeyPrefix = "ceelo:"

	// maxTxRetries bounds optimistic retries when a watched key changes
	maxTxRetries = 3
)

var (
	// ErrAlreadyRecorded is returned when the participant already has a result
	ErrAlreadyRecorded = errors.New("result already recorded for participant")

	// ErrOutcomeClaimed is returned when another participant holds the same slot
	ErrOutcomeClaimed = errors.New("outcome already claimed by another participant")

	// ErrNotInRoster is returned when recording a result for an unknown name
	ErrNotInRoster = errors.New("participant not in roster")

	// ErrConflict is returned when concurrent writers kept invalidating the transaction
	ErrConflict = errors.New("round changed concurrently, retries exhausted")
)

// Config holds configuration for the Redis round repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// KeyPrefix namespaces every key; defaults to "ceelo:"
	KeyPrefix string
}

// reader is the subset of commands shared by *redis.Client and *redis.Tx
type reader interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client     *redis.Client
	rosterKey  string
	resultsKey string
}

// NewRedis creates a new Redis-backed round repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = defaultKeyPrefix
	}

	return &redisRepository{
		client:     cfg.RedisClient,
		rosterKey:  prefix + rosterKeySuffix,
		resultsKey: prefix + resultsKeySuffix,
	}, nil
}

// GetRound retrieves the roster and results from Redis
func (r *redisRepository) GetRound(ctx context.Context, input *GetRoundInput) (*models.Round, error) {
	roster, err := r.loadRoster(ctx, r.client)
	if err != nil {
		return nil, err
	}

	results, err := r.loadResults(ctx, r.client)
	if err != nil {
		return nil, err
	}

	return &models.Round{
		Roster:  roster,
		Results: results,
	}, nil
}

// RecordResult commits one outcome inside a WATCH transaction so that a
// concurrent writer cannot slip in a result for the same name or slot
// between the check and the write.
func (r *redisRepository) RecordResult(ctx context.Context, input *RecordResultInput) error {
	if input == nil || input.Name == "" {
		return errors.New("input and name cannot be empty")
	}

	slot := ceelo.Key(input.Outcome)
	if slot == "" {
		return fmt.Errorf("failed to record result: %w", ceelo.ErrUnknownKind)
	}

	outcomeJSON, err := json.Marshal(input.Outcome)
	if err != nil {
		return fmt.Errorf("failed to marshal outcome: %w", err)
	}

	txf := func(tx *redis.Tx) error {
		roster, err := r.loadRoster(ctx, tx)
		if err != nil {
			return err
		}
		if !(&models.Round{Roster: roster}).InRoster(input.Name) {
			return ErrNotInRoster
		}

		results, err := r.loadResults(ctx, tx)
		if err != nil {
			return err
		}
		if _, ok := results[input.Name]; ok {
			return ErrAlreadyRecorded
		}
		if _, ok := ceelo.ClaimedKeys(results)[slot]; ok {
			return ErrOutcomeClaimed
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, r.resultsKey, input.Name, outcomeJSON)
			return nil
		})
		return err
	}

	return r.watch(ctx, txf)
}

// ClearResults removes every recorded result
func (r *redisRepository) ClearResults(ctx context.Context, input *ClearResultsInput) error {
	if err := r.client.Del(ctx, r.resultsKey).Err(); err != nil {
		return fmt.Errorf("failed to clear results: %w", err)
	}
	return nil
}

// SetRoster replaces the roster and prunes results of removed names
func (r *redisRepository) SetRoster(ctx context.Context, input *SetRosterInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	names := input.Names
	if names == nil {
		names = []string{}
	}

	rosterJSON, err := json.Marshal(names)
	if err != nil {
		return fmt.Errorf("failed to marshal roster: %w", err)
	}

	keep := make(map[string]struct{}, len(names))
	for _, n := range names {
		keep[n] = struct{}{}
	}

	txf := func(tx *redis.Tx) error {
		rolled, err := tx.HKeys(ctx, r.resultsKey).Result()
		if err != nil {
			return fmt.Errorf("failed to list results: %w", err)
		}

		var dropped []string
		for _, name := range rolled {
			if _, ok := keep[name]; !ok {
				dropped = append(dropped, name)
			}
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, r.rosterKey, rosterJSON, 0)
			if len(dropped) > 0 {
				pipe.HDel(ctx, r.resultsKey, dropped...)
			}
			return nil
		})
		return err
	}

	return r.watch(ctx, txf)
}

// watch runs txf with the round keys watched, retrying on conflict
func (r *redisRepository) watch(ctx context.Context, txf func(tx *redis.Tx) error) error {
	for i := 0; i < maxTxRetries; i++ {
		err := r.client.Watch(ctx, txf, r.rosterKey, r.resultsKey)
		if err == nil {
			return nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return ErrConflict
}

func (r *redisRepository) loadRoster(ctx context.Context, c reader) ([]string, error) {
	rosterJSON, err := c.Get(ctx, r.rosterKey).Result()
	if err != nil {
		if err == redis.Nil {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to get roster: %w", err)
	}

	var roster []string
	if err := json.Unmarshal([]byte(rosterJSON), &roster); err != nil {
		return nil, fmt.Errorf("failed to unmarshal roster: %w", err)
	}
	if roster == nil {
		roster = []string{}
	}
	return roster, nil
}

func (r *redisRepository) loadResults(ctx context.Context, c reader) (map[string]models.Outcome, error) {
	raw, err := c.HGetAll(ctx, r.resultsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get results: %w", err)
	}

	results := make(map[string]models.Outcome, len(raw))
	for name, outcomeJSON := range raw {
		var outcome models.Outcome
		if err := json.Unmarshal([]byte(outcomeJSON), &outcome); err != nil {
			return nil, fmt.Errorf("failed to unmarshal result for %s: %w", name, err)
		}
		if err := ceelo.Validate(outcome); err != nil {
			return nil, fmt.Errorf("invalid result for %s: %w", name, err)
		}
		results[name] = outcome
	}

	return results, nil
}
