package leads

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"brightbooks/internal/config"
	"brightbooks/internal/database"
	"brightbooks/internal/domain"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func testPolicies() Policies {
	return Policies{
		domain.FormContact:    {Limit: 5, Window: time.Hour},
		domain.FormNewsletter: {Limit: 3, Window: time.Hour, ScopeByIP: true},
		domain.FormWaitlist:   {Limit: 3, Window: time.Hour},
	}
}

// newSQLiteDB opens a migrated SQLite database in a temp directory
func newSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn := openSQLite(t)
	require.NoError(t, database.Migrate(conn))
	return conn
}

// openSQLite opens an empty SQLite database without creating any table
func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := &config.DatabaseConfig{URL: "sqlite:///" + filepath.Join(t.TempDir(), "leads.db")}
	conn, err := database.Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := conn.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return conn
}

// newMockDB returns gorm on the postgres dialector backed by sqlmock
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	conn, err := database.OpenDialector(postgres.New(postgres.Config{Conn: sqlDB}))
	require.NoError(t, err)
	return conn, mock
}

func newTestPipeline(conn *gorm.DB) *Pipeline {
	p := NewPipeline(conn, testPolicies())
	p.now = func() time.Time { return testNow }
	p.limiter.now = p.now
	return p
}

func countRows(t *testing.T, conn *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, conn.Model(model).Count(&n).Error)
	return n
}

// seedContacts inserts n contact rows created at the given time
func seedContacts(t *testing.T, conn *gorm.DB, n int, createdAt time.Time, ip string) {
	t.Helper()
	for i := 0; i < n; i++ {
		row := &domain.ContactSubmission{
			FullName:  "Seed Row",
			FirstName: "Seed",
			LastName:  "Row",
			Email:     "seed@example.com",
			Message:   "seed",
		}
		row.Stamp(ip, "", createdAt)
		require.NoError(t, conn.Create(row).Error)
	}
}

func validContact() *ContactForm {
	return &ContactForm{
		FirstName:      "Jane",
		LastName:       "Doe",
		Email:          "jane@co.com",
		Message:        "Hi",
		PrivacyConsent: true,
	}
}

var testMeta = RequestMeta{SourceIP: "203.0.113.7", UserAgent: "go-test"}
