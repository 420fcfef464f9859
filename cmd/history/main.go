package main

import (
	"fmt"
	"log"
	"time"

	"github.com/Vishalg19/randomuser/internal/config"
	"github.com/Vishalg19/randomuser/internal/history"
)

// How many records to print, newest first
const recentLimit = 20

// This tool prints the most recent fetches recorded by the server
// Usage: go run cmd/history/main.go
func main() {
	fmt.Println("🔄 Reading fetch history...")

	// Load configuration
	appConfig := config.Load()

	// Connect to the configured history backend
	// The memory backend lives inside the server process, so only the
	// shared backends can be read from a separate tool
	var historyStore history.Store
	var err error

	switch appConfig.HistoryBackend {
	case "mysql":
		fmt.Println("📡 Connecting to MySQL...")
		historyStore, err = history.NewMySQLStore(appConfig.MySQLDSN)
	case "redis":
		fmt.Printf("📡 Connecting to Redis at %s...\n", appConfig.RedisAddr)
		historyStore, err = history.NewRedisStore(appConfig.RedisAddr, appConfig.RedisPassword, appConfig.RedisDB, appConfig.HistoryLimit)
	default:
		log.Fatalf("History backend %q is not readable from outside the server. Set HISTORY_BACKEND=mysql or HISTORY_BACKEND=redis", appConfig.HistoryBackend)
	}
	if err != nil {
		log.Fatalf("Failed to connect to history backend: %v", err)
	}
	defer historyStore.Close()

	fmt.Println("✅ Connected")

	// Read and print the records
	records, err := historyStore.Recent(recentLimit)
	if err != nil {
		log.Fatalf("Failed to read history: %v", err)
	}

	if len(records) == 0 {
		fmt.Println("\nNo fetches recorded yet")
		fmt.Println("💡 Hit /v1/random-user on a running server to record some")
		return
	}

	fmt.Printf("\n%-22s %-22s %s\n", "FETCHED AT", "USERNAME", "CITY")
	for _, record := range records {
		fmt.Printf("%-22s %-22s %s\n", record.FetchedAt.Format(time.RFC3339), record.Username, record.City)
	}
	fmt.Printf("\n✅ %d record(s), newest first\n", len(records))
}
