package models

import "time"

// UserProfile is the pair extracted from one fetched user record
// In Go, structs are used to define data structures
// JSON tags tell Go how to convert this struct to/from JSON
type UserProfile struct {
	Username string `json:"username"` // Login name of the user
	City     string `json:"city"`     // City from the user's location block
}

// FetchRecord is one entry in the fetch history
// Every successful fetch appends one of these to the configured history store
type FetchRecord struct {
	Username  string    `json:"username"`
	City      string    `json:"city"`
	FetchedAt time.Time `json:"fetched_at"` // When the fetch happened (UTC)
}

// ErrorResponse is the standard error response format
// This is what we return when something goes wrong
type ErrorResponse struct {
	Error string `json:"error"` // Error message
}
