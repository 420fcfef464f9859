package v1

import (
	"github.com/go-chi/chi/v5"

	"github.com/Vishalg19/randomuser/internal/handler"
)

// SetupRoutes configures all v1 API routes
// This function is called by the main router to setup /v1/* endpoints
//
// Parameters:
//   - userHandler: the random-user handler
//
// Returns:
//   - chi.Router: configured v1 router
func SetupRoutes(userHandler *handler.UserHandler) chi.Router {
	r := chi.NewRouter()

	// Fetch one random user from the upstream API
	// GET /v1/random-user
	r.Get("/random-user", userHandler.GetRandomUser)

	// Recent successful fetches, newest first
	// GET /v1/history?limit=<n>
	r.Get("/history", userHandler.RecentFetches)

	return r
}
