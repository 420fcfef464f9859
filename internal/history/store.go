package history

import "github.com/Vishalg19/randomuser/internal/models"

// Store defines the interface for fetch-history operations
// Allows multiple implementations (memory, MySQL, Redis) and easy testing with mocks
type Store interface {
	// Record appends a successfully fetched profile to the history
	Record(profile *models.UserProfile) error

	// Recent returns up to limit records, newest first
	Recent(limit int) ([]models.FetchRecord, error)

	// Close cleans up resources (database connections, network clients, etc.)
	Close() error
}

// DefaultCapacity is how many records a store retains when no explicit
// capacity is configured. Older records are discarded once the bound is hit.
const DefaultCapacity = 100
