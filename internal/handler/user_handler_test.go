package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Vishalg19/randomuser/internal/fetcher"
	"github.com/Vishalg19/randomuser/internal/history"
	"github.com/Vishalg19/randomuser/internal/models"
	"github.com/Vishalg19/randomuser/internal/service"
)

// newTestHandler wires a handler to a service backed by mocks
func newTestHandler() (*UserHandler, *fetcher.MockFetcher, *history.MockStore) {
	mockFetcher := fetcher.NewMockFetcher()
	mockHistory := history.NewMockStore()
	svc := service.NewRandomUserService(mockFetcher, mockHistory, nil, nil)
	return NewUserHandler(svc), mockFetcher, mockHistory
}

// TestUserHandler_GetRandomUser_Success tests successful response
func TestUserHandler_GetRandomUser_Success(t *testing.T) {
	// Arrange
	handler, _, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/v1/random-user", nil)
	rec := httptest.NewRecorder()

	// Act
	handler.GetRandomUser(rec, req)

	// Assert
	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}

	contentType := rec.Header().Get("Content-Type")
	if contentType != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", contentType)
	}

	var profile models.UserProfile
	if err := json.NewDecoder(rec.Body).Decode(&profile); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if profile.Username != "jdoe" {
		t.Errorf("expected username 'jdoe', got '%s'", profile.Username)
	}
	if profile.City != "Paris" {
		t.Errorf("expected city 'Paris', got '%s'", profile.City)
	}
}

// TestUserHandler_GetRandomUser_NetworkError tests upstream transport failures
func TestUserHandler_GetRandomUser_NetworkError(t *testing.T) {
	handler, mockFetcher, _ := newTestHandler()
	mockFetcher.FetchError = &fetcher.Error{Kind: fetcher.KindNetwork, Err: fmt.Errorf("connection refused")}

	req := httptest.NewRequest(http.MethodGet, "/v1/random-user", nil)
	rec := httptest.NewRecorder()

	handler.GetRandomUser(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Errorf("expected status 502, got %d", rec.Code)
	}

	var errResp models.ErrorResponse
	json.NewDecoder(rec.Body).Decode(&errResp)

	if errResp.Error != "upstream request failed" {
		t.Errorf("unexpected error message: %s", errResp.Error)
	}
}

// TestUserHandler_GetRandomUser_BadUpstreamData tests responses the upstream
// served but that could not be used
func TestUserHandler_GetRandomUser_BadUpstreamData(t *testing.T) {
	tests := []struct {
		name     string
		fetchErr error
	}{
		{"malformed body", &fetcher.Error{Kind: fetcher.KindFormat, Err: fmt.Errorf("invalid character '<'")}},
		{"failed envelope validation", &fetcher.Error{Kind: fetcher.KindLogic}},
		{"missing field", &fetcher.Error{Kind: fetcher.KindMissingField, Key: "login.username"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockFetcher, _ := newTestHandler()
			mockFetcher.FetchError = tt.fetchErr

			req := httptest.NewRequest(http.MethodGet, "/v1/random-user", nil)
			rec := httptest.NewRecorder()

			handler.GetRandomUser(rec, req)

			if rec.Code != http.StatusBadGateway {
				t.Errorf("expected status 502, got %d", rec.Code)
			}

			var errResp models.ErrorResponse
			json.NewDecoder(rec.Body).Decode(&errResp)

			if errResp.Error != "upstream returned invalid data" {
				t.Errorf("unexpected error message: %s", errResp.Error)
			}
		})
	}
}

// TestUserHandler_GetRandomUser_UnexpectedError tests unclassified failures
func TestUserHandler_GetRandomUser_UnexpectedError(t *testing.T) {
	handler, mockFetcher, _ := newTestHandler()
	mockFetcher.FetchError = fmt.Errorf("something broke")

	req := httptest.NewRequest(http.MethodGet, "/v1/random-user", nil)
	rec := httptest.NewRecorder()

	handler.GetRandomUser(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", rec.Code)
	}

	var errResp models.ErrorResponse
	json.NewDecoder(rec.Body).Decode(&errResp)

	// Should return generic error message, not leak internal details
	if errResp.Error != "Internal server error" {
		t.Errorf("expected generic error message, got: %s", errResp.Error)
	}
}

// TestUserHandler_GetRandomUser_HistoryFailureStillSucceeds tests that a
// broken history backend does not surface to the client
func TestUserHandler_GetRandomUser_HistoryFailureStillSucceeds(t *testing.T) {
	handler, _, mockHistory := newTestHandler()
	mockHistory.RecordError = fmt.Errorf("database connection failed")

	req := httptest.NewRequest(http.MethodGet, "/v1/random-user", nil)
	rec := httptest.NewRecorder()

	handler.GetRandomUser(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200 despite history failure, got %d", rec.Code)
	}
}

// TestUserHandler_RecentFetches_Success tests reading history
func TestUserHandler_RecentFetches_Success(t *testing.T) {
	handler, mockFetcher, _ := newTestHandler()

	// Seed two fetches through the handler
	mockFetcher.Profile = &models.UserProfile{Username: "first", City: "Oslo"}
	handler.GetRandomUser(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/random-user", nil))
	mockFetcher.Profile = &models.UserProfile{Username: "second", City: "Lima"}
	handler.GetRandomUser(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/random-user", nil))

	req := httptest.NewRequest(http.MethodGet, "/v1/history", nil)
	rec := httptest.NewRecorder()

	handler.RecentFetches(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}

	var records []models.FetchRecord
	if err := json.NewDecoder(rec.Body).Decode(&records); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Username != "second" {
		t.Errorf("expected newest record first, got '%s'", records[0].Username)
	}
}

// TestUserHandler_RecentFetches_DefaultLimit tests the implicit limit
func TestUserHandler_RecentFetches_DefaultLimit(t *testing.T) {
	handler, _, mockHistory := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/v1/history", nil)
	rec := httptest.NewRecorder()

	handler.RecentFetches(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if len(mockHistory.RecentCalls) != 1 {
		t.Fatalf("expected 1 history read, got %d", len(mockHistory.RecentCalls))
	}
	if mockHistory.RecentCalls[0] != defaultHistoryLimit {
		t.Errorf("expected default limit %d, got %d", defaultHistoryLimit, mockHistory.RecentCalls[0])
	}
}

// TestUserHandler_RecentFetches_ExplicitLimit tests the limit parameter
func TestUserHandler_RecentFetches_ExplicitLimit(t *testing.T) {
	handler, _, mockHistory := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/v1/history?limit=25", nil)
	rec := httptest.NewRecorder()

	handler.RecentFetches(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if len(mockHistory.RecentCalls) != 1 || mockHistory.RecentCalls[0] != 25 {
		t.Errorf("expected history read with limit 25, got %v", mockHistory.RecentCalls)
	}
}

// TestUserHandler_RecentFetches_InvalidLimit tests bad limit parameters
func TestUserHandler_RecentFetches_InvalidLimit(t *testing.T) {
	tests := []struct {
		name          string
		query         string
		expectedError string
	}{
		{"not a number", "?limit=abc", "Invalid 'limit' query parameter"},
		{"decimal", "?limit=2.5", "Invalid 'limit' query parameter"},
		{"zero", "?limit=0", "invalid history limit"},
		{"negative", "?limit=-3", "invalid history limit"},
		{"over the cap", "?limit=101", "invalid history limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _, _ := newTestHandler()

			req := httptest.NewRequest(http.MethodGet, "/v1/history"+tt.query, nil)
			rec := httptest.NewRecorder()

			handler.RecentFetches(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", rec.Code)
			}

			var errResp models.ErrorResponse
			json.NewDecoder(rec.Body).Decode(&errResp)

			if errResp.Error != tt.expectedError {
				t.Errorf("expected '%s', got '%s'", tt.expectedError, errResp.Error)
			}
		})
	}
}

// TestUserHandler_RecentFetches_BackendError tests history backend failures
func TestUserHandler_RecentFetches_BackendError(t *testing.T) {
	handler, _, mockHistory := newTestHandler()
	mockHistory.RecentError = fmt.Errorf("database connection failed")

	req := httptest.NewRequest(http.MethodGet, "/v1/history", nil)
	rec := httptest.NewRecorder()

	handler.RecentFetches(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", rec.Code)
	}

	var errResp models.ErrorResponse
	json.NewDecoder(rec.Body).Decode(&errResp)

	// Should return generic error message, not leak internal details
	if errResp.Error != "Internal server error" {
		t.Errorf("expected generic error message, got: %s", errResp.Error)
	}
}

// TestUserHandler_RecentFetches_EmptyHistory tests an empty history
func TestUserHandler_RecentFetches_EmptyHistory(t *testing.T) {
	handler, _, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/v1/history", nil)
	rec := httptest.NewRecorder()

	handler.RecentFetches(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}

	var records []models.FetchRecord
	if err := json.NewDecoder(rec.Body).Decode(&records); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected empty history, got %d records", len(records))
	}
}

// TestUserHandler_ContentType tests response headers across outcomes
func TestUserHandler_ContentType(t *testing.T) {
	tests := []struct {
		name     string
		fetchErr error
	}{
		{"success response", nil},
		{"error response", &fetcher.Error{Kind: fetcher.KindNetwork, Err: fmt.Errorf("refused")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockFetcher, _ := newTestHandler()
			mockFetcher.FetchError = tt.fetchErr

			req := httptest.NewRequest(http.MethodGet, "/v1/random-user", nil)
			rec := httptest.NewRecorder()

			handler.GetRandomUser(rec, req)

			contentType := rec.Header().Get("Content-Type")
			if contentType != "application/json" {
				t.Errorf("expected Content-Type application/json, got %s", contentType)
			}
		})
	}
}

// TestUserHandler_RespondJSON tests JSON response helper
func TestUserHandler_RespondJSON(t *testing.T) {
	handler := &UserHandler{}
	rec := httptest.NewRecorder()

	handler.respondJSON(rec, http.StatusOK, models.UserProfile{
		Username: "test_user",
		City:     "Test City",
	})

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}

	contentType := rec.Header().Get("Content-Type")
	if contentType != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", contentType)
	}

	var profile models.UserProfile
	if err := json.NewDecoder(rec.Body).Decode(&profile); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if profile.Username != "test_user" {
		t.Errorf("expected username 'test_user', got '%s'", profile.Username)
	}
}

// TestUserHandler_RespondError tests error response helper
func TestUserHandler_RespondError(t *testing.T) {
	handler := &UserHandler{}
	rec := httptest.NewRecorder()

	handler.respondError(rec, http.StatusBadRequest, "Test error message")

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}

	var errResp models.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&errResp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}

	if errResp.Error != "Test error message" {
		t.Errorf("expected 'Test error message', got '%s'", errResp.Error)
	}
}
