package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"brightbooks/internal/config"
	"brightbooks/internal/domain"
	"brightbooks/internal/metrics"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

var (
	db *gorm.DB
)

const (
	maxOpenConns    = 25
	maxIdleConns    = 5
	connMaxLifetime = 5 * time.Minute
	connMaxIdleTime = 10 * time.Minute
	pingTimeout     = 5 * time.Second
)

// Models lists every table the service owns, in migration order
func Models() []interface{} {
	return []interface{}{
		&domain.ContactSubmission{},
		&domain.NewsletterSubscription{},
		&domain.WaitlistEntry{},
		&domain.ServiceRequest{},
		&domain.TechnicalInquiry{},
		&domain.Solution{},
		&domain.Insight{},
		&domain.Template{},
		&domain.Policy{},
	}
}

// Init initializes the global database connection and runs migrations
func Init() error {
	cfg := config.Get()

	conn, err := Open(&cfg.Database)
	if err != nil {
		return err
	}
	db = conn

	// Test connection
	if err := testConnection(); err != nil {
		return fmt.Errorf("database connection test failed: %w", err)
	}

	log.Println("[DB] Running database migrations...")
	if err := Migrate(db); err != nil {
		return err
	}

	log.Println("[DB] Database connected and migrated successfully")
	return nil
}

// Open connects to PostgreSQL or SQLite depending on the URL and configures
// the connection pool. It does not migrate.
func Open(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector

	// Determine database type
	if cfg.IsPostgres() {
		log.Println("[DB] Connecting to PostgreSQL database...")
		dialector = postgres.Open(cfg.GetPostgresDSN())
	} else {
		log.Println("[DB] Connecting to SQLite database...")
		dbPath := cfg.GetSQLitePath()
		sqlDB, err := sql.Open("sqlite", dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite database: %w", err)
		}
		dialector = sqlite.Dialector{
			DriverName: "sqlite",
			DSN:        dbPath,
			Conn:       sqlDB,
		}
	}

	conn, err := OpenDialector(dialector)
	if err != nil {
		return nil, err
	}

	// Configure connection pool (PostgreSQL only)
	if cfg.IsPostgres() {
		sqlDB, err := conn.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
		}

		sqlDB.SetMaxOpenConns(maxOpenConns)
		sqlDB.SetMaxIdleConns(maxIdleConns)
		sqlDB.SetConnMaxLifetime(connMaxLifetime)
		sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

		log.Printf("[DB] Connection pool configured: maxOpen=%d, maxIdle=%d", maxOpenConns, maxIdleConns)
	}

	return conn, nil
}

// OpenDialector opens gorm on an arbitrary dialector with the service's gorm
// settings. Tests use it with sqlmock-backed connections.
func OpenDialector(dialector gorm.Dialector) (*gorm.DB, error) {
	// Never log SQL queries: parameters contain lead PII.
	// Errors are still returned to the caller.
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		// Every write is a single-row insert
		SkipDefaultTransaction: true,
		TranslateError:         true,
	}

	conn, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return conn, nil
}

// Migrate creates or updates every table in Models
func Migrate(conn *gorm.DB) error {
	if err := conn.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// testConnection tests the database connection
func testConnection() error {
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	return Ping(ctx, db)
}

// Ping checks that conn can reach the database
func Ping(ctx context.Context, conn *gorm.DB) error {
	sqlDB, err := conn.DB()
	if err != nil {
		return err
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}

	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	if db == nil {
		log.Fatal("[DB] Database not initialized. Call database.Init() first.")
	}
	return db
}

// HealthCheck performs a database health check and refreshes the pool gauges
func HealthCheck(ctx context.Context, conn *gorm.DB) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := Ping(ctx, conn); err != nil {
		return err
	}
	if stats, err := GetStats(conn); err == nil {
		metrics.UpdateDBConnections(stats.InUse, stats.Idle)
	}
	return nil
}

// GetStats returns database connection statistics
func GetStats(conn *gorm.DB) (*sql.DBStats, error) {
	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	stats := sqlDB.Stats()
	return &stats, nil
}
