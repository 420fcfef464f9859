package fetcher

import (
	"errors"
	"fmt"
)

// Kind classifies a failed fetch
// Each failure branch gets an explicit tag so callers can switch on it
// instead of matching message strings
type Kind int

const (
	// KindUnexpected is the catch-all for anything not classified below
	KindUnexpected Kind = iota

	// KindNetwork is a transport-level failure:
	// connection refused, DNS, timeout, or a non-2xx HTTP status
	KindNetwork

	// KindFormat is a response body that is not valid JSON
	KindFormat

	// KindLogic is an envelope that parsed but failed validation:
	// success false, or the data / nested data wrapper keys absent
	KindLogic

	// KindMissingField is a valid envelope whose first record
	// lacks an expected user field (or has no records at all)
	KindMissingField
)

// String returns a short label for the kind
// Used as the error_type label on metrics
func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindFormat:
		return "format"
	case KindLogic:
		return "logic"
	case KindMissingField:
		return "missing_field"
	default:
		return "unexpected"
	}
}

// Error is the failure type returned by Fetch
// Exactly one is returned per failed fetch; nothing is retried
type Error struct {
	Kind Kind   // Which validation step failed
	Key  string // Dotted path of the missing field (KindMissingField only)
	Err  error  // Underlying cause, may be nil
}

// Error implements the error interface
// The logic message is a fixed string so callers and tests can rely on
// the exact text
func (e *Error) Error() string {
	switch e.Kind {
	case KindLogic:
		return "API request failed or returned invalid data"
	case KindMissingField:
		return fmt.Sprintf("missing field %q", e.Key)
	default:
		if e.Err != nil {
			return e.Err.Error()
		}
		return "fetch failed"
	}
}

// Unwrap exposes the underlying cause to errors.Is and errors.As
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf reports the kind of a fetch error
// Errors that did not come from this package classify as KindUnexpected
func KindOf(err error) Kind {
	var fetchErr *Error
	if errors.As(err, &fetchErr) {
		return fetchErr.Kind
	}
	return KindUnexpected
}
