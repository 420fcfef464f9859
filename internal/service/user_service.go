package service

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Vishalg19/randomuser/internal/fetcher"
	"github.com/Vishalg19/randomuser/internal/history"
	"github.com/Vishalg19/randomuser/internal/logger"
	"github.com/Vishalg19/randomuser/internal/metrics"
	"github.com/Vishalg19/randomuser/internal/models"
)

// maxHistoryLimit caps how many records a single history read may request
const maxHistoryLimit = 100

// RandomUserService handles business logic around random-user fetches
// This is the service layer - it sits between handlers and the fetcher/history
//
// Responsibilities:
//   - Run the upstream fetch
//   - Record successful fetches in the history
//   - Validate input (history limits)
//   - Track metrics and log outcomes
type RandomUserService struct {
	fetcher   fetcher.Fetcher     // The upstream client (HTTP or mock)
	history   history.Store       // The history backend (memory, MySQL, or Redis)
	validator *validator.Validate // Validator for input validation
	metrics   *metrics.Metrics    // Metrics collector
	logger    *logger.Logger      // Structured logger
}

// NewRandomUserService creates a new random-user service
//
// Parameters:
//   - f: any implementation of the Fetcher interface
//   - h: any implementation of the history Store interface
//   - m: metrics collector (optional, can be nil)
//   - log: logger (optional, can be nil)
//
// Returns:
//   - *RandomUserService: pointer to the created service
func NewRandomUserService(f fetcher.Fetcher, h history.Store, m *metrics.Metrics, log *logger.Logger) *RandomUserService {
	if log == nil {
		log = logger.NewDefault()
	}
	return &RandomUserService{
		fetcher:   f,
		history:   h,
		validator: validator.New(),
		metrics:   m,
		logger:    log.WithComponent("RandomUserService"),
	}
}

// GetRandomUser fetches one random user from the upstream API
// This is the main business logic method
//
// Flow:
//  1. Run the fetch
//  2. Record the result in the history (best effort)
//  3. Return the profile or the fetch error
//
// Returns:
//   - *models.UserProfile: the fetched username and city
//   - error: the fetch error, classified by kind (see the fetcher package)
func (s *RandomUserService) GetRandomUser() (*models.UserProfile, error) {
	// Step 1: Run the fetch and time it
	s.logger.Debug().Msg("Fetching random user")
	start := time.Now()
	profile, err := s.fetcher.Fetch()
	elapsed := time.Since(start)

	if s.metrics != nil {
		s.metrics.UpstreamFetchDuration.Observe(elapsed.Seconds())
	}

	if err != nil {
		// The fetcher already classified the failure; just track and pass it up
		kind := fetcher.KindOf(err)
		s.logger.Warn().
			Err(err).
			Str("error_type", kind.String()).
			Dur("duration", elapsed).
			Msg("Random user fetch failed")
		if s.metrics != nil {
			s.metrics.UpstreamFetchesTotal.WithLabelValues("error").Inc()
			s.metrics.UpstreamFetchErrors.WithLabelValues(kind.String()).Inc()
		}
		return nil, err
	}

	s.logger.Info().
		Str("username", profile.Username).
		Str("city", profile.City).
		Dur("duration", elapsed).
		Msg("Random user fetched")
	if s.metrics != nil {
		s.metrics.UpstreamFetchesTotal.WithLabelValues("success").Inc()
	}

	// Step 2: Record the fetch in the history
	// A history failure must not fail the request, so it is logged and counted
	// but never returned
	if err := s.history.Record(profile); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to record fetch in history")
		if s.metrics != nil {
			s.metrics.HistoryWritesTotal.WithLabelValues("failed").Inc()
		}
	} else if s.metrics != nil {
		s.metrics.HistoryWritesTotal.WithLabelValues("ok").Inc()
	}

	// Step 3: Return the result
	return profile, nil
}

// RecentFetches returns up to limit history records, newest first
//
// Parameters:
//   - limit: how many records to return (1 to 100)
//
// Returns:
//   - []models.FetchRecord: the recent fetches
//   - error: validation error or history backend error
func (s *RandomUserService) RecentFetches(limit int) ([]models.FetchRecord, error) {
	// Validate the limit before touching the backend
	// "gte" and "lte" are built-in validation tags for numeric ranges
	if err := s.validator.Var(limit, fmt.Sprintf("gte=1,lte=%d", maxHistoryLimit)); err != nil {
		s.logger.Warn().Int("limit", limit).Msg("Invalid history limit")
		return nil, fmt.Errorf("invalid history limit")
	}

	records, err := s.history.Recent(limit)
	if err != nil {
		s.logger.Error().Err(err).Int("limit", limit).Msg("History read failed")
		if s.metrics != nil {
			s.metrics.HistoryReadsTotal.WithLabelValues("error").Inc()
		}
		return nil, err
	}

	s.logger.Debug().Int("limit", limit).Int("count", len(records)).Msg("History read")
	if s.metrics != nil {
		s.metrics.HistoryReadsTotal.WithLabelValues("ok").Inc()
	}
	return records, nil
}

// Close cleans up resources
// Should be called when the service is no longer needed
// Closes both the fetcher and the history backend even if one fails
func (s *RandomUserService) Close() error {
	fetchErr := s.fetcher.Close()
	histErr := s.history.Close()
	if fetchErr != nil {
		return fetchErr
	}
	return histErr
}
