package history

import (
	"time"

	"github.com/Vishalg19/randomuser/internal/models"
)

// MockStore is a test double for the Store interface
// It allows tests to control behavior and verify interactions
type MockStore struct {
	// Records holds everything recorded so far, newest first
	Records []models.FetchRecord

	// Track method calls for verification in tests
	RecordCalls []models.UserProfile
	RecentCalls []int
	CloseCalled bool

	// Control behavior for error scenarios
	RecordError error
	RecentError error
	CloseError  error
}

// NewMockStore creates a mock store with no history
func NewMockStore() *MockStore {
	return &MockStore{
		Records:     []models.FetchRecord{},
		RecordCalls: []models.UserProfile{},
		RecentCalls: []int{},
	}
}

// Record implements the Store interface
// Tracks calls and appends to the in-memory history unless configured to fail
func (m *MockStore) Record(profile *models.UserProfile) error {
	if profile != nil {
		m.RecordCalls = append(m.RecordCalls, *profile)
	}

	if m.RecordError != nil {
		return m.RecordError
	}

	if profile != nil {
		record := models.FetchRecord{
			Username:  profile.Username,
			City:      profile.City,
			FetchedAt: time.Now().UTC(),
		}
		m.Records = append([]models.FetchRecord{record}, m.Records...)
	}

	return nil
}

// Recent implements the Store interface
// Tracks calls and returns configured data or errors
func (m *MockStore) Recent(limit int) ([]models.FetchRecord, error) {
	m.RecentCalls = append(m.RecentCalls, limit)

	if m.RecentError != nil {
		return nil, m.RecentError
	}

	n := min(limit, len(m.Records))
	out := make([]models.FetchRecord, n)
	copy(out, m.Records[:n])
	return out, nil
}

// Close implements the Store interface
// Tracks that close was called and returns configured error if any
func (m *MockStore) Close() error {
	m.CloseCalled = true
	return m.CloseError
}
