package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Vishalg19/randomuser/internal/config"
	"github.com/Vishalg19/randomuser/internal/fetcher"
	"github.com/Vishalg19/randomuser/internal/handler"
	"github.com/Vishalg19/randomuser/internal/history"
	"github.com/Vishalg19/randomuser/internal/limiter"
	"github.com/Vishalg19/randomuser/internal/logger"
	"github.com/Vishalg19/randomuser/internal/metrics"
	"github.com/Vishalg19/randomuser/internal/router"
	"github.com/Vishalg19/randomuser/internal/service"
)

func main() {
	// Load configuration
	appConfig := config.Load()

	// Initialize components
	appLogger := setupLogger(appConfig)
	userFetcher := setupFetcher(appConfig, appLogger)
	historyStore := setupHistoryStore(appConfig, appLogger)

	rateLimiter := setupRateLimiter(appConfig, appLogger)
	defer rateLimiter.Close()

	metricsCollector := setupMetrics(appLogger)

	// Build application layers
	// The service owns the fetcher and the history store and closes both
	userService := service.NewRandomUserService(userFetcher, historyStore, metricsCollector, appLogger)
	defer userService.Close()

	userHandler := handler.NewUserHandler(userService)
	appRouter := router.SetupRouter(userHandler, rateLimiter, metricsCollector, appLogger)

	// Start server
	startServer(appConfig, appRouter, appLogger)
}

// setupLogger initializes the structured logger
func setupLogger(appConfig *config.Config) *logger.Logger {
	appLogger := logger.New(logger.Config{
		Level:  appConfig.LogLevel,
		Pretty: appConfig.LogPretty,
	})

	appLogger.Info().Msg("Starting Random User Server...")
	appLogger.Info().
		Str("port", appConfig.Port).
		Str("api_base_url", appConfig.APIBaseURL).
		Int("http_timeout", appConfig.HTTPTimeout).
		Str("rate_limiter_type", appConfig.RateLimitType).
		Int("rate_limit", appConfig.RateLimit).
		Int("rate_limit_window", appConfig.RateLimitWindow).
		Str("history_backend", appConfig.HistoryBackend).
		Int("history_limit", appConfig.HistoryLimit).
		Msg("Configuration loaded")

	return appLogger
}

// setupFetcher initializes the upstream API client
func setupFetcher(appConfig *config.Config, log *logger.Logger) fetcher.Fetcher {
	timeout := time.Duration(appConfig.HTTPTimeout) * time.Second

	userFetcher, err := fetcher.NewHTTPFetcher(appConfig.APIBaseURL, timeout)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize fetcher")
	}
	fmt.Println("✅ Upstream fetcher initialized")

	return userFetcher
}

// setupHistoryStore initializes the fetch-history backend based on configuration
// Supports memory, MySQL, and Redis backends
func setupHistoryStore(appConfig *config.Config, log *logger.Logger) history.Store {
	var historyStore history.Store
	var err error

	switch appConfig.HistoryBackend {
	case "memory", "":
		historyStore = history.NewMemoryStore(appConfig.HistoryLimit)
		fmt.Println("✅ In-memory history initialized")

	case "mysql":
		historyStore, err = history.NewMySQLStore(appConfig.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize MySQL history")
		}
		fmt.Println("✅ MySQL history initialized")

	case "redis":
		historyStore, err = history.NewRedisStore(appConfig.RedisAddr, appConfig.RedisPassword, appConfig.RedisDB, appConfig.HistoryLimit)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize Redis history")
		}
		fmt.Println("✅ Redis history initialized")

	default:
		log.Fatal().Str("backend", appConfig.HistoryBackend).Msg("Unknown history backend")
	}

	return historyStore
}

// setupRateLimiter initializes the rate limiter
// Supports in-memory and Redis-based rate limiting
func setupRateLimiter(appConfig *config.Config, log *logger.Logger) limiter.Limiter {
	window := time.Duration(appConfig.RateLimitWindow) * time.Second

	rateLimiter, err := limiter.NewLimiter(limiter.LimiterConfig{
		Type:          appConfig.RateLimitType,
		Limit:         appConfig.RateLimit,
		Window:        window,
		RedisAddr:     appConfig.RedisAddr,
		RedisPassword: appConfig.RedisPassword,
		RedisDB:       appConfig.RedisDB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize rate limiter")
	}

	fmt.Printf("✅ Rate limiter initialized (type: %s, limit: %d req per %d sec)\n",
		appConfig.RateLimitType, appConfig.RateLimit, appConfig.RateLimitWindow)

	return rateLimiter
}

// setupMetrics initializes the Prometheus metrics collector
func setupMetrics(log *logger.Logger) *metrics.Metrics {
	metricsCollector := metrics.New()
	log.Info().Msg("Metrics initialized")
	return metricsCollector
}

// startServer starts the HTTP server and blocks
func startServer(appConfig *config.Config, appRouter http.Handler, log *logger.Logger) {
	serverAddr := ":" + appConfig.Port

	log.Info().
		Str("port", appConfig.Port).
		Str("api_endpoint", "http://localhost:"+appConfig.Port+"/v1/random-user").
		Str("history_endpoint", "http://localhost:"+appConfig.Port+"/v1/history?limit=10").
		Str("health_check", "http://localhost:"+appConfig.Port+"/health").
		Str("metrics", "http://localhost:"+appConfig.Port+"/metrics").
		Msg("Server is running")

	log.Fatal().Err(http.ListenAndServe(serverAddr, appRouter)).Msg("Server failed")
}
