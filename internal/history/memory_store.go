package history

import (
	"fmt"
	"sync"
	"time"

	"github.com/Vishalg19/randomuser/internal/models"
)

// MemoryStore implements Store interface using an in-memory slice
// It is the default backend: no external service needed, history is lost on restart
type MemoryStore struct {
	// mu guards records; the HTTP server records and reads concurrently
	mu sync.Mutex

	// records holds the history newest-first, at most capacity entries
	records []models.FetchRecord

	capacity int
}

// NewMemoryStore creates an in-memory history store
//
// Parameters:
//   - capacity: maximum number of records to retain
//     Values <= 0 fall back to DefaultCapacity
//
// Returns:
//   - *MemoryStore: pointer to the created store
func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &MemoryStore{
		records:  make([]models.FetchRecord, 0, capacity),
		capacity: capacity,
	}
}

// Record appends a fetched profile to the history
// Implements the Store interface method
func (s *MemoryStore) Record(profile *models.UserProfile) error {
	if profile == nil {
		return fmt.Errorf("cannot record nil profile")
	}

	record := models.FetchRecord{
		Username:  profile.Username,
		City:      profile.City,
		FetchedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Insert at the front so the slice stays newest-first
	s.records = append(s.records, models.FetchRecord{})
	copy(s.records[1:], s.records)
	s.records[0] = record

	// Drop the oldest entries once the bound is exceeded
	if len(s.records) > s.capacity {
		s.records = s.records[:s.capacity]
	}

	return nil
}

// Recent returns up to limit records, newest first
// Implements the Store interface method
func (s *MemoryStore) Recent(limit int) ([]models.FetchRecord, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n := min(limit, len(s.records))

	// Return a copy so callers cannot mutate internal state
	out := make([]models.FetchRecord, n)
	copy(out, s.records[:n])
	return out, nil
}

// Close cleans up resources
// For the memory store there is nothing to clean up, but the method is
// needed to satisfy the Store interface
func (s *MemoryStore) Close() error {
	return nil
}
