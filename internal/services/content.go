package services

import (
	"context"

	"brightbooks/internal/content"
	"brightbooks/internal/domain"
)

const (
	defaultInsightLimit = 12
	maxInsightLimit     = 50
)

// ContentService exposes published marketing content
type ContentService struct {
	store *content.Store
}

// NewContentService creates a new content service
func NewContentService(store *content.Store) *ContentService {
	return &ContentService{store: store}
}

// ListSolutions returns published solutions
func (s *ContentService) ListSolutions(ctx context.Context) ([]domain.Solution, error) {
	return s.store.PublishedSolutions(ctx)
}

// GetSolution returns one published solution
func (s *ContentService) GetSolution(ctx context.Context, slug string) (*domain.Solution, error) {
	return s.store.SolutionBySlug(ctx, slug)
}

// ListInsights returns the newest published insights. A non-positive limit
// selects the default page size; larger limits are capped.
func (s *ContentService) ListInsights(ctx context.Context, limit int) ([]domain.Insight, error) {
	switch {
	case limit <= 0:
		limit = defaultInsightLimit
	case limit > maxInsightLimit:
		limit = maxInsightLimit
	}
	return s.store.PublishedInsights(ctx, limit)
}

// GetInsight returns one published insight
func (s *ContentService) GetInsight(ctx context.Context, slug string) (*domain.Insight, error) {
	return s.store.InsightBySlug(ctx, slug)
}

// ListTemplates returns published templates
func (s *ContentService) ListTemplates(ctx context.Context) ([]domain.Template, error) {
	return s.store.PublishedTemplates(ctx)
}

// GetTemplate returns one published template
func (s *ContentService) GetTemplate(ctx context.Context, slug string) (*domain.Template, error) {
	return s.store.TemplateBySlug(ctx, slug)
}

// GetPolicy returns one published policy
func (s *ContentService) GetPolicy(ctx context.Context, slug string) (*domain.Policy, error) {
	return s.store.PolicyBySlug(ctx, slug)
}
