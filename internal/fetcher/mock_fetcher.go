package fetcher

import "github.com/Vishalg19/randomuser/internal/models"

// MockFetcher is a test double for the Fetcher interface
// It allows tests to control behavior and verify interactions
type MockFetcher struct {
	// Profile is returned by Fetch when no error is configured
	Profile *models.UserProfile

	// Track method calls for verification in tests
	FetchCalls  int
	CloseCalled bool

	// Control behavior for error scenarios
	FetchError error
	CloseError error
}

// NewMockFetcher creates a mock fetcher returning a fixed profile
func NewMockFetcher() *MockFetcher {
	return &MockFetcher{
		Profile: &models.UserProfile{
			Username: "jdoe",
			City:     "Paris",
		},
	}
}

// Fetch implements the Fetcher interface
// Tracks calls and returns the configured profile or error
func (m *MockFetcher) Fetch() (*models.UserProfile, error) {
	m.FetchCalls++

	if m.FetchError != nil {
		return nil, m.FetchError
	}

	return m.Profile, nil
}

// Close implements the Fetcher interface
// Tracks that close was called and returns the configured error if any
func (m *MockFetcher) Close() error {
	m.CloseCalled = true
	return m.CloseError
}
