package database

import (
	"context"
	"path/filepath"
	"testing"

	"brightbooks/internal/config"
	"brightbooks/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSQLiteAndMigrate(t *testing.T) {
	cfg := &config.DatabaseConfig{URL: "sqlite:///" + filepath.Join(t.TempDir(), "test.db")}

	conn, err := Open(cfg)
	require.NoError(t, err)
	require.NoError(t, Migrate(conn))

	for _, model := range Models() {
		assert.True(t, conn.Migrator().HasTable(model), "%T", model)
	}
	assert.True(t, conn.Migrator().HasIndex(&domain.NewsletterSubscription{}, "idx_newsletter_subscriptions_email"))

	require.NoError(t, HealthCheck(context.Background(), conn))

	stats, err := GetStats(conn)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, stats.OpenConnections, 1)
}
