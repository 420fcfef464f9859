package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Vishalg19/randomuser/internal/handler"
	"github.com/Vishalg19/randomuser/internal/limiter"
	"github.com/Vishalg19/randomuser/internal/logger"
	"github.com/Vishalg19/randomuser/internal/metrics"
	custommiddleware "github.com/Vishalg19/randomuser/internal/middleware"
	v1 "github.com/Vishalg19/randomuser/internal/router/v1"
)

// SetupRouter creates and configures the Chi router with all middleware and routes
// This separates routing logic from the main application setup
//
// Parameters:
//   - userHandler: the random-user handler
//   - rateLimiter: the rate limiter (memory or Redis)
//   - m: metrics collector
//   - log: structured logger
//
// Returns:
//   - chi.Router: configured router ready to use
func SetupRouter(userHandler *handler.UserHandler, rateLimiter limiter.Limiter, m *metrics.Metrics, log *logger.Logger) chi.Router {
	// Create new Chi router
	r := chi.NewRouter()

	// Apply global middleware - these run on every request
	// Order matters! RequestID should be first, then logging, then rate limiting
	r.Use(middleware.RequestID)                               // Add unique request ID to each request
	r.Use(middleware.RealIP)                                  // Get real client IP (handles proxies/load balancers)
	r.Use(custommiddleware.LoggingMiddleware(log))            // Structured logging
	r.Use(middleware.Recoverer)                               // Recover from panics and return 500
	r.Use(custommiddleware.RateLimitMiddleware(rateLimiter))  // Rate limiting per client
	r.Use(custommiddleware.MetricsMiddleware(m))              // Collect Prometheus metrics

	// Mount v1 API routes under /v1 prefix
	// This allows for API versioning (future: /v2, /v3, etc.)
	r.Mount("/v1", v1.SetupRoutes(userHandler))

	// Root-level routes (not versioned)
	// Health check endpoint - used by load balancers and monitoring
	r.Get("/health", healthCheckHandler)

	// Prometheus metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// healthCheckHandler is a simple health check endpoint
// Returns 200 OK if the service is running
// It deliberately does not call the upstream API; a health probe must not
// burn upstream quota
func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
