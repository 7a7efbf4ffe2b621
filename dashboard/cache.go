package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Madhav-Gupta-28/0xmart-admin-go/models"
)

// SnapshotKey is the Redis key holding the last fetched order list.
const SnapshotKey = "0xmart:admin:orders"

// SnapshotCache keeps a copy of the last successful fetch so an empty board
// can be seeded when the content store is unreachable.
type SnapshotCache interface {
	Save(ctx context.Context, orders []models.Order) error
	// Load returns nil, nil when there is no snapshot.
	Load(ctx context.Context) ([]models.Order, error)
}

type nopCache struct{}

func (nopCache) Save(context.Context, []models.Order) error   { return nil }
func (nopCache) Load(context.Context) ([]models.Order, error) { return nil, nil }

// RedisCache stores the snapshot as JSON under SnapshotKey.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Save(ctx context.Context, orders []models.Order) error {
	data, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := c.client.Set(ctx, SnapshotKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (c *RedisCache) Load(ctx context.Context) ([]models.Order, error) {
	data, err := c.client.Get(ctx, SnapshotKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	var orders []models.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return orders, nil
}
