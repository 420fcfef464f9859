package history

import (
	"fmt"
	"time"

	"github.com/Vishalg19/randomuser/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// FetchRecordModel is the GORM model for the fetch_history table
// GORM uses struct tags to map to database columns
type FetchRecordModel struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement"`
	Username  string    `gorm:"column:username"`
	City      string    `gorm:"column:city"`
	FetchedAt time.Time `gorm:"column:fetched_at;index"`
}

// TableName specifies the table name for GORM
// By default, GORM would pluralize to "fetch_record_models"
// This override tells GORM to use "fetch_history" instead
func (FetchRecordModel) TableName() string {
	return "fetch_history"
}

// MySQLStore implements Store interface using MySQL with GORM
// Unlike the memory backend, history survives restarts
type MySQLStore struct {
	db *gorm.DB // GORM database instance
}

// NewMySQLStore creates a new MySQL history store using GORM
//
// Parameters:
//   - dsn: Data Source Name (connection string)
//     Format: user:password@tcp(host:port)/dbname?parseTime=true
//     Example: root:password@tcp(localhost:3306)/randomuser?parseTime=true
//
// Returns:
//   - *MySQLStore: pointer to the created store
//   - error: any error that occurred during connection or migration
func NewMySQLStore(dsn string) (*MySQLStore, error) {
	// Configure GORM
	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Disable query logging (set to Info for debugging)
	}

	// Open database connection with GORM
	// GORM handles connection pooling automatically
	db, err := gorm.Open(mysql.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MySQL with GORM: %w", err)
	}

	// Get underlying SQL database for configuration
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(25)                 // Maximum number of open connections
	sqlDB.SetMaxIdleConns(5)                  // Maximum number of idle connections
	sqlDB.SetConnMaxLifetime(5 * time.Minute) // Maximum connection lifetime

	// Test the connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping MySQL database: %w", err)
	}

	// Create the fetch_history table if it does not exist yet
	if err := db.AutoMigrate(&FetchRecordModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate fetch_history table: %w", err)
	}

	return &MySQLStore{db: db}, nil
}

// Record inserts a fetched profile using GORM
// Implements the Store interface method
func (s *MySQLStore) Record(profile *models.UserProfile) error {
	if profile == nil {
		return fmt.Errorf("cannot record nil profile")
	}

	record := FetchRecordModel{
		Username:  profile.Username,
		City:      profile.City,
		FetchedAt: time.Now().UTC(),
	}

	// GORM generates: INSERT INTO fetch_history (username, city, fetched_at) VALUES (?, ?, ?)
	if result := s.db.Create(&record); result.Error != nil {
		return fmt.Errorf("failed to insert fetch record: %w", result.Error)
	}

	return nil
}

// Recent returns up to limit records, newest first
// Implements the Store interface method
//
// GORM query: SELECT * FROM fetch_history ORDER BY fetched_at DESC LIMIT ?
func (s *MySQLStore) Recent(limit int) ([]models.FetchRecord, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive")
	}

	var rows []FetchRecordModel
	result := s.db.Order("fetched_at DESC").Limit(limit).Find(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("database query failed: %w", result.Error)
	}

	// Convert GORM models to our domain model
	records := make([]models.FetchRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, models.FetchRecord{
			Username:  row.Username,
			City:      row.City,
			FetchedAt: row.FetchedAt,
		})
	}

	return records, nil
}

// Close closes the database connection
// Should be called when the application shuts down
func (s *MySQLStore) Close() error {
	if s.db != nil {
		sqlDB, err := s.db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
