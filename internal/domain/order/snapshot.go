// internal/domain/order/snapshot.go
package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNoOrder is returned when a session has no placed order.
var ErrNoOrder = errors.New("no order found")

// SnapshotTTL is how long the last-order snapshot of a session is kept.
const SnapshotTTL = 7 * 24 * time.Hour

// SnapshotStore persists the last placed order per session.
type SnapshotStore interface {
	SaveLast(ctx context.Context, sessionID string, o *Order) error
	LoadLast(ctx context.Context, sessionID string) (*Order, error)
}

// RedisSnapshotStore keeps last-order snapshots in Redis.
type RedisSnapshotStore struct {
	client *redis.Client
}

// NewRedisSnapshotStore creates a Redis-backed order snapshot store.
func NewRedisSnapshotStore(client *redis.Client) *RedisSnapshotStore {
	return &RedisSnapshotStore{client: client}
}

func lastOrderKey(sessionID string) string {
	return fmt.Sprintf("order:last:%s", sessionID)
}

// SaveLast writes the session's last-order snapshot.
func (s *RedisSnapshotStore) SaveLast(ctx context.Context, sessionID string, o *Order) error {
	data, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("failed to encode order: %w", err)
	}
	return s.client.Set(ctx, lastOrderKey(sessionID), data, SnapshotTTL).Err()
}

// LoadLast reads the session's last-order snapshot.
func (s *RedisSnapshotStore) LoadLast(ctx context.Context, sessionID string) (*Order, error) {
	data, err := s.client.Get(ctx, lastOrderKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, ErrNoOrder
	} else if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}

	var o Order
	if err := json.Unmarshal([]byte(data), &o); err != nil {
		return nil, fmt.Errorf("failed to decode order: %w", err)
	}
	return &o, nil
}
