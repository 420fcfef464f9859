package limiter

import (
	"sync"
	"time"
)

// Limiter is the interface that all rate limiters must implement
// This allows us to easily swap between in-memory and Redis implementations
type Limiter interface {
	// Allow checks if a request from the given client should be allowed
	// Returns true if allowed, false if rate limited
	Allow(clientIP string) bool

	// Close cleans up any resources (Redis connections, etc.)
	Close() error
}

// sweepInterval controls how often idle client buckets are dropped
const sweepInterval = 5 * time.Minute

// tokenBucket tracks the request budget for a single client
//
// The token bucket algorithm allows bursts while maintaining an average rate:
//   - the bucket starts full and refills continuously at refillRate
//   - each request spends one token
//   - an empty bucket means the client is rate limited
type tokenBucket struct {
	tokens     float64   // Current number of tokens
	lastRefill time.Time // Last time tokens were added
}

// MemoryLimiter manages token buckets for multiple clients (per-IP)
// This is an in-memory implementation suitable for single-server deployments
//
// A single mutex guards the whole bucket map; contention is not a concern
// at the request rates this server handles
type MemoryLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*tokenBucket
	rate      float64 // Tokens added per second
	capacity  float64 // Maximum tokens (burst size, one window's worth)
	lastSweep time.Time
}

// NewMemoryLimiter creates a new in-memory rate limiter allowing limit
// requests per window for each client
//
// Parameters:
//   - limit: requests allowed per window
//   - window: window length (values <= 0 fall back to one second)
//
// Returns:
//   - *MemoryLimiter: new in-memory rate limiter instance
func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	if window <= 0 {
		window = time.Second
	}
	capacity := float64(limit)
	if capacity < 1 {
		// A capacity below 1 would reject even the first request
		capacity = 1
	}
	return &MemoryLimiter{
		buckets:   make(map[string]*tokenBucket),
		rate:      capacity / window.Seconds(),
		capacity:  capacity,
		lastSweep: time.Now(),
	}
}

// Allow checks if a request from the given client should be allowed
// This is called by the middleware for each request
//
// Parameters:
//   - clientIP: client IP address
//
// Returns:
//   - bool: true if request is allowed, false if rate limited
func (rl *MemoryLimiter) Allow(clientIP string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()

	bucket, ok := rl.buckets[clientIP]
	if !ok {
		// New clients start with a full bucket
		bucket = &tokenBucket{tokens: rl.capacity, lastRefill: now}
		rl.buckets[clientIP] = bucket
	}

	// Refill based on time elapsed, capped at capacity
	// Example: 0.5 seconds at 10 tokens/sec adds 5 tokens
	elapsed := now.Sub(bucket.lastRefill).Seconds()
	bucket.tokens = min(bucket.tokens+elapsed*rl.rate, rl.capacity)
	bucket.lastRefill = now

	rl.maybeSweep(now)

	if bucket.tokens >= 1 {
		bucket.tokens--
		return true
	}

	// No tokens available - rate limit exceeded
	return false
}

// maybeSweep drops buckets that have been idle for longer than sweepInterval
// so the map does not grow without bound. Must be called with mu held.
func (rl *MemoryLimiter) maybeSweep(now time.Time) {
	if now.Sub(rl.lastSweep) < sweepInterval {
		return
	}

	threshold := now.Add(-sweepInterval)
	for ip, bucket := range rl.buckets {
		if bucket.lastRefill.Before(threshold) {
			delete(rl.buckets, ip)
		}
	}

	rl.lastSweep = now
}

// Close cleans up resources for the in-memory limiter
// There is nothing to clean up; the method satisfies the Limiter interface
func (rl *MemoryLimiter) Close() error {
	return nil
}
