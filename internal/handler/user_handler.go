package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Vishalg19/randomuser/internal/fetcher"
	"github.com/Vishalg19/randomuser/internal/models"
	"github.com/Vishalg19/randomuser/internal/service"
)

// defaultHistoryLimit is used when GET /v1/history has no limit parameter
const defaultHistoryLimit = 10

// UserHandler handles HTTP requests for random-user fetches
// This is the handler layer - it deals with HTTP concerns only
//
// Responsibilities:
//   - Parse HTTP requests (query parameters)
//   - Call service methods
//   - Format HTTP responses (JSON)
//   - Set appropriate status codes
//   - NO business logic (that's in the service layer)
type UserHandler struct {
	service *service.RandomUserService
}

// NewUserHandler creates a new user handler with the given service
func NewUserHandler(service *service.RandomUserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

// GetRandomUser handles GET /v1/random-user
// Fetches one random user from the upstream API and returns its
// username and city
func (h *UserHandler) GetRandomUser(w http.ResponseWriter, r *http.Request) {
	// Step 1: Call service layer
	// The service runs the fetch and records it in the history
	profile, err := h.service.GetRandomUser()
	if err != nil {
		// Step 2: Map the error kind to an HTTP status
		// Upstream problems are 502s (this server is a gateway to the API);
		// anything unclassified is a plain 500
		switch fetcher.KindOf(err) {
		case fetcher.KindNetwork:
			h.respondError(w, http.StatusBadGateway, "upstream request failed")
		case fetcher.KindFormat, fetcher.KindLogic, fetcher.KindMissingField:
			h.respondError(w, http.StatusBadGateway, "upstream returned invalid data")
		default:
			h.respondError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	// Step 3: Return success response
	h.respondJSON(w, http.StatusOK, profile)
}

// RecentFetches handles GET /v1/history?limit=<n>
// Returns the most recent successful fetches, newest first
func (h *UserHandler) RecentFetches(w http.ResponseWriter, r *http.Request) {
	// Step 1: Parse query parameter
	limit := defaultHistoryLimit
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "Invalid 'limit' query parameter")
			return
		}
		limit = parsed
	}

	// Step 2: Call service layer
	// The service validates the limit range
	records, err := h.service.RecentFetches(limit)
	if err != nil {
		if err.Error() == "invalid history limit" {
			h.respondError(w, http.StatusBadRequest, err.Error())
		} else {
			// Any other error is an internal server error
			h.respondError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	// Step 3: Return success response
	h.respondJSON(w, http.StatusOK, records)
}

// respondJSON writes a JSON response with the given status code
func (h *UserHandler) respondJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// If encoding fails, we can't change the status code since headers are already sent
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// respondError writes an error response with consistent formatting
func (h *UserHandler) respondError(w http.ResponseWriter, statusCode int, message string) {
	h.respondJSON(w, statusCode, models.ErrorResponse{Error: message})
}
