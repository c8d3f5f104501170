// Package content serves the published marketing content: solutions,
// insights, templates and policies. Reads fall back to embedded defaults
// when the content tables have not been created.
package content

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"brightbooks/internal/database"
	"brightbooks/internal/domain"
	"brightbooks/internal/metrics"
	apperrors "brightbooks/pkg/errors"
)

const (
	msgContentFailure = "Something went wrong. Please try again later."
)

// Store reads published content from the database
type Store struct {
	db       *gorm.DB
	defaults *Defaults
	fallback bool
}

// NewStore creates a content store. When fallback is true, a missing table
// is answered from defaults instead of failing.
func NewStore(db *gorm.DB, defaults *Defaults, fallback bool) *Store {
	return &Store{db: db, defaults: defaults, fallback: fallback}
}

// PublishedSolutions lists published solutions
func (s *Store) PublishedSolutions(ctx context.Context) ([]domain.Solution, error) {
	var rows []domain.Solution
	err := s.query(ctx, "list_solutions", func(q *gorm.DB) error {
		return q.Where("published = ?", true).Order("sort_order ASC, title ASC").Find(&rows).Error
	})
	if s.useFallback("solutions", err) {
		return s.defaults.PublishedSolutions(), nil
	}
	return rows, wrapReadError(err)
}

// SolutionBySlug returns one published solution
func (s *Store) SolutionBySlug(ctx context.Context, slug string) (*domain.Solution, error) {
	var row domain.Solution
	err := s.query(ctx, "get_solution", func(q *gorm.DB) error {
		return q.Where("slug = ? AND published = ?", slug, true).First(&row).Error
	})
	if s.useFallback("solutions", err) {
		for _, sol := range s.defaults.PublishedSolutions() {
			if sol.Slug == slug {
				return &sol, nil
			}
		}
		return nil, notFound("Solution")
	}
	if err != nil {
		return nil, wrapSlugError("Solution", err)
	}
	return &row, nil
}

// PublishedInsights lists published insights, newest first. limit <= 0 means
// no limit.
func (s *Store) PublishedInsights(ctx context.Context, limit int) ([]domain.Insight, error) {
	var rows []domain.Insight
	err := s.query(ctx, "list_insights", func(q *gorm.DB) error {
		q = q.Where("published = ?", true).Order("published_at DESC")
		if limit > 0 {
			q = q.Limit(limit)
		}
		return q.Find(&rows).Error
	})
	if s.useFallback("insights", err) {
		return s.defaults.PublishedInsights(limit), nil
	}
	return rows, wrapReadError(err)
}

// InsightBySlug returns one published insight
func (s *Store) InsightBySlug(ctx context.Context, slug string) (*domain.Insight, error) {
	var row domain.Insight
	err := s.query(ctx, "get_insight", func(q *gorm.DB) error {
		return q.Where("slug = ? AND published = ?", slug, true).First(&row).Error
	})
	if s.useFallback("insights", err) {
		for _, in := range s.defaults.PublishedInsights(0) {
			if in.Slug == slug {
				return &in, nil
			}
		}
		return nil, notFound("Insight")
	}
	if err != nil {
		return nil, wrapSlugError("Insight", err)
	}
	return &row, nil
}

// PublishedTemplates lists published templates
func (s *Store) PublishedTemplates(ctx context.Context) ([]domain.Template, error) {
	var rows []domain.Template
	err := s.query(ctx, "list_templates", func(q *gorm.DB) error {
		return q.Where("published = ?", true).Order("sort_order ASC").Find(&rows).Error
	})
	if s.useFallback("templates", err) {
		return s.defaults.PublishedTemplates(), nil
	}
	return rows, wrapReadError(err)
}

// TemplateBySlug returns one published template
func (s *Store) TemplateBySlug(ctx context.Context, slug string) (*domain.Template, error) {
	var row domain.Template
	err := s.query(ctx, "get_template", func(q *gorm.DB) error {
		return q.Where("slug = ? AND published = ?", slug, true).First(&row).Error
	})
	if s.useFallback("templates", err) {
		for _, t := range s.defaults.PublishedTemplates() {
			if t.Slug == slug {
				return &t, nil
			}
		}
		return nil, notFound("Template")
	}
	if err != nil {
		return nil, wrapSlugError("Template", err)
	}
	return &row, nil
}

// PolicyBySlug returns one published policy
func (s *Store) PolicyBySlug(ctx context.Context, slug string) (*domain.Policy, error) {
	var row domain.Policy
	err := s.query(ctx, "get_policy", func(q *gorm.DB) error {
		return q.Where("slug = ? AND published = ?", slug, true).First(&row).Error
	})
	if s.useFallback("policies", err) {
		for _, p := range s.defaults.PublishedPolicies() {
			if p.Slug == slug {
				return &p, nil
			}
		}
		return nil, notFound("Policy")
	}
	if err != nil {
		return nil, wrapSlugError("Policy", err)
	}
	return &row, nil
}

func (s *Store) query(ctx context.Context, operation string, fn func(q *gorm.DB) error) error {
	start := time.Now()
	err := fn(s.db.WithContext(ctx))
	metrics.RecordDBQuery(operation, time.Since(start), ignoreNotFound(err))
	return err
}

// useFallback reports whether err is a schema-absence error that should be
// answered from the static defaults
func (s *Store) useFallback(kind string, err error) bool {
	if err == nil || !s.fallback || s.defaults == nil || !database.IsMissingRelation(err) {
		return false
	}
	log.Printf("[CONTENT] Table for %s is missing, serving static defaults: %v", kind, err)
	metrics.RecordContentFallback(kind)
	return true
}

func ignoreNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

func notFound(what string) error {
	return apperrors.New(apperrors.ErrCodeNotFound, what+" not found")
}

func wrapSlugError(what string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(what)
	}
	return wrapReadError(err)
}

func wrapReadError(err error) error {
	if err == nil {
		return nil
	}
	log.Printf("[CONTENT] Read failed: %v", err)
	if database.IsMissingRelation(err) || database.IsConnectionFailure(err) {
		return apperrors.Wrap(apperrors.ErrCodeStorageUnavailable, "Service temporarily unavailable. Please try again later.", err)
	}
	return apperrors.Wrap(apperrors.ErrCodeStorageFailure, msgContentFailure, err)
}
