// Command fetch retrieves a single random user from the public FreeAPI
// service and prints the username and city to stdout.
//
// This is the smallest possible consumer of the fetcher package: one
// request, one line of output. Failures are reported as friendly
// one-line messages instead of stack traces, which makes the binary
// safe to run from cron jobs and shell scripts.
//
// Usage:
//
//	fetch
//
// Output on success:
//
//	Username: jdoe, City: Paris
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Vishalg19/randomuser/internal/config"
	"github.com/Vishalg19/randomuser/internal/fetcher"
)

func main() {
	// Step 1: Load configuration (API base URL and timeout are tunable via env)
	appConfig := config.Load()
	timeout := time.Duration(appConfig.HTTPTimeout) * time.Second

	// Step 2: Build the API client
	userFetcher, err := fetcher.NewHTTPFetcher(appConfig.APIBaseURL, timeout)
	if err != nil {
		fmt.Printf("An unexpected error occurred: %v\n", err)
		return
	}
	defer userFetcher.Close()

	// Step 3: Fetch one user and report the result
	report(os.Stdout, userFetcher)
}

// report performs a single fetch and writes a one-line result to w.
//
// Every failure class gets its own message prefix so a reader can tell
// at a glance whether the network, the API payload, or something else
// was at fault. All output goes to w and the function never panics, so
// the caller always exits cleanly.
//
// Parameters:
//   - w: destination for the result line
//   - f: the fetcher to use for the request
func report(w io.Writer, f fetcher.Fetcher) {
	profile, err := f.Fetch()
	if err != nil {
		switch fetcher.KindOf(err) {
		case fetcher.KindNetwork:
			fmt.Fprintf(w, "Network error occurred: %v\n", err)
		case fetcher.KindMissingField:
			fmt.Fprintf(w, "Error parsing API response: %v\n", err)
		default:
			fmt.Fprintf(w, "An unexpected error occurred: %v\n", err)
		}
		return
	}

	fmt.Fprintf(w, "Username: %s, City: %s\n", profile.Username, profile.City)
}
