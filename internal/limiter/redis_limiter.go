package limiter

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// incrWindow atomically increments a window counter and sets its expiry on
// first use. Running this as a Lua script means INCR and EXPIRE cannot be
// interleaved with another client's calls.
var incrWindow = redis.NewScript(`
local current = redis.call('INCR', KEYS[1])
if current == 1 then
	redis.call('EXPIRE', KEYS[1], ARGV[1])
end
return current
`)

// RedisLimiter implements distributed rate limiting using Redis
// This is suitable for multi-server deployments where rate limits need to be
// shared across all instances
//
// Algorithm: fixed window counters
//   - each client gets one counter per time window
//   - key format: "ratelimit:{ip}:{window}"
//   - keys carry a TTL so Redis cleans them up automatically
type RedisLimiter struct {
	client *redis.Client
	ctx    context.Context
	limit  int64
	window time.Duration
}

// NewRedisLimiter creates a new Redis-based rate limiter allowing limit
// requests per window for each client
//
// Parameters:
//   - addr: Redis server address (e.g., "localhost:6379")
//   - password: Redis password (empty string if no password)
//   - db: Redis database number (0-15, default is 0)
//   - limit: requests allowed per window
//   - window: window length; rounded up to a whole second because Redis
//     TTLs are whole seconds
//
// Returns:
//   - *RedisLimiter: new Redis rate limiter instance
//   - error: any error that occurred during connection
func NewRedisLimiter(addr, password string, db, limit int, window time.Duration) (*RedisLimiter, error) {
	// Create Redis client
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx := context.Background()

	// Test the connection
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis for rate limiting: %w", err)
	}

	if window < time.Second {
		window = time.Second
	}
	if limit < 1 {
		limit = 1
	}

	return &RedisLimiter{
		client: client,
		ctx:    ctx,
		limit:  int64(limit),
		window: window,
	}, nil
}

// Allow checks if a request from the given client should be allowed
//
// How it works:
//  1. Derive the key for the client's current time window
//  2. Atomically increment the window counter (Lua script)
//  3. Compare the count against the limit
//
// On Redis errors the limiter fails open (allows the request) so an
// unavailable Redis does not take the whole service down with it.
//
// Parameters:
//   - clientIP: client IP address
//
// Returns:
//   - bool: true if request is allowed, false if rate limited
func (rl *RedisLimiter) Allow(clientIP string) bool {
	// The window number changes every rl.window seconds, which rolls every
	// client over to a fresh counter
	// Example key: ratelimit:192.168.1.1:1640000000
	windowSeconds := int64(rl.window.Seconds())
	window := time.Now().Unix() / windowSeconds
	key := fmt.Sprintf("ratelimit:%s:%d", clientIP, window)

	// TTL is two windows so a counter never outlives its usefulness
	ttl := windowSeconds * 2

	count, err := incrWindow.Run(rl.ctx, rl.client, []string{key}, ttl).Int64()
	if err != nil {
		// Fail open
		return true
	}

	return count <= rl.limit
}

// Close closes the Redis connection and cleans up resources
func (rl *RedisLimiter) Close() error {
	if rl.client != nil {
		return rl.client.Close()
	}
	return nil
}
