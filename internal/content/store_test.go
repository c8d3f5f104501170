package content

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"brightbooks/internal/config"
	"brightbooks/internal/database"
	"brightbooks/internal/domain"
	apperrors "brightbooks/pkg/errors"
)

func openTestDB(t *testing.T, migrate bool) *gorm.DB {
	t.Helper()
	conn, err := database.Open(&config.DatabaseConfig{URL: "sqlite:///" + filepath.Join(t.TempDir(), "content.db")})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := conn.DB(); err == nil {
			sqlDB.Close()
		}
	})
	if migrate {
		require.NoError(t, database.Migrate(conn))
	}
	return conn
}

func loadDefaults(t *testing.T) *Defaults {
	t.Helper()
	d, err := LoadDefaults()
	require.NoError(t, err)
	return d
}

func TestDefaultsParse(t *testing.T) {
	d := loadDefaults(t)

	solutions := d.PublishedSolutions()
	require.NotEmpty(t, solutions)
	for i, s := range solutions {
		assert.True(t, s.Published)
		if i > 0 {
			assert.LessOrEqual(t, solutions[i-1].SortOrder, s.SortOrder)
		}
	}
	assert.Less(t, len(solutions), len(d.Solutions), "unpublished entries are filtered")

	insights := d.PublishedInsights(1)
	require.Len(t, insights, 1)
	assert.Equal(t, "month-end-close-checklist", insights[0].Slug)
	require.NotNil(t, insights[0].PublishedAt)

	for _, tpl := range d.PublishedTemplates() {
		assert.NotEmpty(t, tpl.FileURL, tpl.Slug)
	}
}

func TestStoreFallsBackWhenTablesMissing(t *testing.T) {
	conn := openTestDB(t, false)
	store := NewStore(conn, loadDefaults(t), true)
	ctx := context.Background()

	solutions, err := store.PublishedSolutions(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, solutions)

	insights, err := store.PublishedInsights(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, insights, 2)

	tpl, err := store.TemplateBySlug(ctx, "cash-flow-forecast")
	require.NoError(t, err)
	assert.Equal(t, "13-Week Cash Flow Forecast", tpl.Title)

	policy, err := store.PolicyBySlug(ctx, "privacy-policy")
	require.NoError(t, err)
	assert.Equal(t, "Privacy Policy", policy.Title)

	_, err = store.SolutionBySlug(ctx, "audit-support")
	assert.True(t, apperrors.IsNotFound(err), "unpublished defaults are hidden")
}

func TestStoreWithoutFallbackSurfacesUnavailable(t *testing.T) {
	conn := openTestDB(t, false)
	store := NewStore(conn, loadDefaults(t), false)

	_, err := store.PublishedTemplates(context.Background())
	assert.True(t, apperrors.IsStorageUnavailable(err))
}

func TestStoreReadsDatabase(t *testing.T) {
	conn := openTestDB(t, true)
	store := NewStore(conn, loadDefaults(t), true)
	ctx := context.Background()

	older := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, conn.Create(&[]domain.Insight{
		{Slug: "older", Title: "Older", Published: true, PublishedAt: &older},
		{Slug: "newer", Title: "Newer", Published: true, PublishedAt: &newer},
		{Slug: "draft", Title: "Draft"},
	}).Error)
	require.NoError(t, conn.Create(&domain.Solution{Slug: "payroll", Title: "Payroll", Published: true}).Error)

	insights, err := store.PublishedInsights(ctx, 10)
	require.NoError(t, err)
	require.Len(t, insights, 2)
	assert.Equal(t, "newer", insights[0].Slug)

	_, err = store.InsightBySlug(ctx, "draft")
	assert.True(t, apperrors.IsNotFound(err))

	sol, err := store.SolutionBySlug(ctx, "payroll")
	require.NoError(t, err)
	assert.Equal(t, "Payroll", sol.Title)

	// An existing but empty table is not a fallback case
	templates, err := store.PublishedTemplates(ctx)
	require.NoError(t, err)
	assert.Empty(t, templates)
}
