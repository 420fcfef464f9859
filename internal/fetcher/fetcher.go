// Package fetcher performs the single request/parse/extract sequence
// against the freeapi.app random-users endpoint.
package fetcher

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Vishalg19/randomuser/internal/models"
	"github.com/go-playground/validator/v10"
)

const (
	// usersPath is the public random-users endpoint
	// It takes no query parameters in the default path
	usersPath = "/api/v1/public/randomusers"

	// defaultTimeout bounds the one outbound call
	// The API mandates no value; 10 seconds is a sane default
	defaultTimeout = 10 * time.Second
)

// Fetcher is the component performing one fetch of a random user
// Allows swapping the real HTTP implementation for a mock in tests
type Fetcher interface {
	// Fetch issues one GET and extracts the first record's username and city
	Fetch() (*models.UserProfile, error)

	// Close releases idle connections held by the underlying client
	Close() error
}

// HTTPFetcher implements Fetcher over net/http
// Stateless: every Fetch is an independent best-effort attempt,
// nothing is cached and nothing is retried
type HTTPFetcher struct {
	client *http.Client
	url    string
}

// NewHTTPFetcher creates a fetcher for the given API base URL
//
// Parameters:
//   - baseURL: scheme and host of the API (e.g. "https://api.freeapi.app")
//   - timeout: outbound request timeout; <= 0 selects the 10s default
//
// Returns:
//   - *HTTPFetcher: pointer to the created fetcher
//   - error: when the base URL is not a valid URL
func NewHTTPFetcher(baseURL string, timeout time.Duration) (*HTTPFetcher, error) {
	// "url" is a built-in validation tag that checks for a well-formed URL
	if err := validator.New().Var(baseURL, "required,url"); err != nil {
		return nil, fmt.Errorf("invalid API base URL %q", baseURL)
	}

	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &HTTPFetcher{
		// The timeout covers the whole exchange: dial, write, read
		client: &http.Client{Timeout: timeout},
		url:    strings.TrimRight(baseURL, "/") + usersPath,
	}, nil
}

// Fetch performs the request/parse/extract sequence
//
// Flow:
//  1. GET the endpoint
//  2. Check the transport outcome and status code
//  3. Parse the JSON body
//  4. Validate the envelope shape
//  5. Read login.username and location.city from the first record
//
// Returns either a fully populated profile or a classified *Error,
// never partial data. The one network call is the only side effect.
func (f *HTTPFetcher) Fetch() (*models.UserProfile, error) {
	// Step 1: Issue the GET request
	// This endpoint is public: no authentication headers, no query parameters.
	// An API that needs credentials would get an explicit request instead:
	//   req, _ := http.NewRequest(http.MethodGet, url, nil)
	//   req.Header.Set("Authorization", "Bearer <token>")  // OAuth / JWT
	//   req.Header.Set("X-API-Key", "<key>")               // simple API key
	resp, err := f.client.Get(f.url)
	if err != nil {
		// Connection refused, DNS failure, timeout, ...
		return nil, &Error{Kind: KindNetwork, Err: err}
	}
	defer resp.Body.Close()

	// Step 2: Check the status code
	// 2xx means success; anything else fails the fetch immediately
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{Kind: KindNetwork, Err: fmt.Errorf("unexpected HTTP status %s", resp.Status)}
	}

	// A failure while reading the body is still a transport problem
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Err: err}
	}

	// Step 3: Parse the JSON body
	var envelope models.Envelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &Error{Kind: KindFormat, Err: fmt.Errorf("parse response body: %w", err)}
	}

	// Step 4: Validate the envelope shape
	// The API reports failures inside a 200 response via "success": false,
	// and wraps the records twice (data.data); both wrapper keys must exist
	if !envelope.Success || envelope.Data == nil || envelope.Data.Data == nil {
		return nil, &Error{Kind: KindLogic}
	}

	// Step 5: Extract the fields from the first record
	// Only position 0 is consulted, there is no iteration
	records := *envelope.Data.Data
	if len(records) == 0 {
		return nil, &Error{Kind: KindMissingField, Key: "data.data[0]"}
	}

	record := records[0]
	if record.Login == nil || record.Login.Username == nil {
		return nil, &Error{Kind: KindMissingField, Key: "login.username"}
	}
	if record.Location == nil || record.Location.City == nil {
		return nil, &Error{Kind: KindMissingField, Key: "location.city"}
	}

	return &models.UserProfile{
		Username: *record.Login.Username,
		City:     *record.Location.City,
	}, nil
}

// Close releases idle connections
// The fetcher holds no other resources
func (f *HTTPFetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}
