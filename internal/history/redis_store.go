package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Vishalg19/randomuser/internal/models"
	"github.com/redis/go-redis/v9"
)

// historyKey is the Redis list holding the fetch history, newest-first
const historyKey = "history:fetches"

// RedisStore implements Store interface using a Redis list
// Each entry is a JSON-encoded FetchRecord; LPUSH keeps the list newest-first
// and LTRIM caps its length
type RedisStore struct {
	client   *redis.Client
	ctx      context.Context
	capacity int
}

// NewRedisStore creates a new Redis history store
//
// Parameters:
//   - addr: Redis server address (e.g., "localhost:6379")
//   - password: Redis password (empty string if no password)
//   - db: Redis database number (0-15, default is 0)
//   - capacity: maximum number of records to retain (<= 0 uses DefaultCapacity)
//
// Returns:
//   - *RedisStore: pointer to the created store
//   - error: any error that occurred during connection
func NewRedisStore(addr, password string, db, capacity int) (*RedisStore, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	// Create Redis client
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx := context.Background()

	// Test the connection
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{
		client:   client,
		ctx:      ctx,
		capacity: capacity,
	}, nil
}

// Record pushes a fetched profile onto the history list
// Implements the Store interface method
func (s *RedisStore) Record(profile *models.UserProfile) error {
	if profile == nil {
		return fmt.Errorf("cannot record nil profile")
	}

	record := models.FetchRecord{
		Username:  profile.Username,
		City:      profile.City,
		FetchedAt: time.Now().UTC(),
	}

	// Encode to JSON
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode fetch record: %w", err)
	}

	// LPUSH puts the newest record at index 0
	if err := s.client.LPush(s.ctx, historyKey, data).Err(); err != nil {
		return fmt.Errorf("failed to store in Redis: %w", err)
	}

	// LTRIM drops everything past the retention bound
	if err := s.client.LTrim(s.ctx, historyKey, 0, int64(s.capacity-1)).Err(); err != nil {
		return fmt.Errorf("failed to trim Redis history: %w", err)
	}

	return nil
}

// Recent returns up to limit records, newest first
// Implements the Store interface method
//
// LRANGE on a missing key returns an empty list, so a fresh Redis
// yields an empty history rather than an error
func (s *RedisStore) Recent(limit int) ([]models.FetchRecord, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive")
	}

	vals, err := s.client.LRange(s.ctx, historyKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("Redis query failed: %w", err)
	}

	records := make([]models.FetchRecord, 0, len(vals))
	for _, val := range vals {
		var record models.FetchRecord
		if err := json.Unmarshal([]byte(val), &record); err != nil {
			return nil, fmt.Errorf("failed to decode fetch record: %w", err)
		}
		records = append(records, record)
	}

	return records, nil
}

// Close closes the Redis connection
// Should be called when the application shuts down
func (s *RedisStore) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}
