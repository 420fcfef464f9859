package models

// This file models the wire format of the freeapi.app random-users endpoint.
//
// The API wraps everything in a common envelope:
//
//	{
//	  "statusCode": 200,
//	  "success": true,
//	  "message": "Random users fetched successfully",
//	  "data": { "page": 1, "limit": 10, "data": [ <user records> ] }
//	}
//
// Fields that the extraction logic must distinguish between "absent" and
// "present but empty" are pointers: a nil pointer means the key was missing
// from the JSON, which is a different failure than an empty value.

// Envelope is the top-level response object
type Envelope struct {
	StatusCode int      `json:"statusCode"`
	Success    bool     `json:"success"` // False (or absent) means the request failed upstream
	Message    string   `json:"message"`
	Data       *Payload `json:"data"` // nil when the "data" key is missing
}

// Payload is the nested data wrapper inside the envelope
// The paging counters are returned by the API but not used here
type Payload struct {
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
	Data  *[]UserRecord `json:"data"` // nil when the nested "data" key is missing
}

// UserRecord is one user entry within the payload's data sequence
// Only login.username and location.city are consulted
type UserRecord struct {
	ID       int       `json:"id"`
	Login    *Login    `json:"login"`
	Location *Location `json:"location"`
}

// Login holds the account fields of a user record
type Login struct {
	UUID     string  `json:"uuid"`
	Username *string `json:"username"` // nil when the "username" key is missing
}

// Location holds the geographic fields of a user record
type Location struct {
	City    *string `json:"city"` // nil when the "city" key is missing
	Country string  `json:"country"`
}
