package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/labellecuisine/ordering-backend/pkg/logger"
	pkgredis "github.com/labellecuisine/ordering-backend/pkg/redis"
)

// SnapshotStore persists a session's ordered line sequence into a single
// named slot. Writes happen synchronously on every cart mutation.
type SnapshotStore interface {
	Load(ctx context.Context, sessionID string) ([]Line, error)
	Save(ctx context.Context, sessionID string, lines []Line) error
}

// snapshotSlot is the slice of the redis client the store actually uses.
type snapshotSlot interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	CartKey(sessionID string) string
}

// RedisSnapshotStore keeps one cart slot per session in Redis.
type RedisSnapshotStore struct {
	client snapshotSlot
	logg   *logger.Logger
}

// NewRedisSnapshotStore builds the store over the shared Redis client.
func NewRedisSnapshotStore(client *pkgredis.Client, logg *logger.Logger) (*RedisSnapshotStore, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client required")
	}
	return &RedisSnapshotStore{client: client, logg: logg}, nil
}

// Load rehydrates the stored line sequence. A missing slot yields an empty
// cart. A corrupt slot is discarded, the key deleted, and an empty cart
// returned; corruption is never surfaced to the caller.
func (s *RedisSnapshotStore) Load(ctx context.Context, sessionID string) ([]Line, error) {
	key := s.client.CartKey(sessionID)
	raw, err := s.client.Get(ctx, key)
	if err != nil {
		if errors.Is(err, pkgredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("load cart snapshot: %w", err)
	}

	var lines []Line
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		if s.logg != nil {
			s.logg.Warn(s.logg.WithCartSession(ctx, sessionID), "discarding corrupt cart snapshot")
		}
		_ = s.client.Del(ctx, key)
		return nil, nil
	}
	return lines, nil
}

// Save overwrites the slot with the current line sequence.
func (s *RedisSnapshotStore) Save(ctx context.Context, sessionID string, lines []Line) error {
	if lines == nil {
		lines = []Line{}
	}
	payload, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("encode cart snapshot: %w", err)
	}
	if err := s.client.Set(ctx, s.client.CartKey(sessionID), string(payload), 0); err != nil {
		return fmt.Errorf("save cart snapshot: %w", err)
	}
	return nil
}
