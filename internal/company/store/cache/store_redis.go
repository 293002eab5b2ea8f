package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/OpenDiscoveryBiz/dk-provider/internal/erst"
)

const (
	// Redis key prefix for cached company records.
	recordKeyPrefix = "erstData:"

	// redisNegative cannot collide with a JSON-encoded record.
	redisNegative = "-"
)

// RedisStore shares the cache between instances. Recommended for deployments
// with more than one replica.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, localID uint64) (*erst.Record, bool, error) {
	value, err := s.client.Get(ctx, key(localID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get: %w", err)
	}
	if value == redisNegative {
		return nil, true, nil
	}
	var record erst.Record
	if err := json.Unmarshal([]byte(value), &record); err != nil {
		return nil, false, fmt.Errorf("decode cached record: %w", err)
	}
	return &record, true, nil
}

func (s *RedisStore) SaveRecord(ctx context.Context, localID uint64, record *erst.Record) error {
	if record == nil {
		return nil
	}
	encoded, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	return s.client.Set(ctx, key(localID), encoded, s.ttl).Err()
}

func (s *RedisStore) SaveNegative(ctx context.Context, localID uint64) error {
	return s.client.Set(ctx, key(localID), redisNegative, s.ttl).Err()
}

func key(localID uint64) string {
	return recordKeyPrefix + strconv.FormatUint(localID, 10)
}
