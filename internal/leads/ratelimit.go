package leads

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"brightbooks/internal/config"
	"brightbooks/internal/domain"
	"brightbooks/internal/metrics"
)

// Policy is the rate-limit policy of one form kind. A submission is allowed
// while fewer than Limit rows were created within Window. Limit 0 disables
// the check. ScopeByIP restricts the count to rows from the same source IP.
type Policy struct {
	Limit     int
	Window    time.Duration
	ScopeByIP bool
}

// Policies maps each form kind to its policy. Kinds without an entry are not
// rate limited.
type Policies map[domain.FormKind]Policy

// PoliciesFromConfig builds the per-form policies from configuration
func PoliciesFromConfig(cfg *config.FormsConfig) Policies {
	window := cfg.RateLimitWindow
	return Policies{
		domain.FormContact:          {Limit: cfg.ContactLimit, Window: window, ScopeByIP: cfg.ContactScopeByIP},
		domain.FormNewsletter:       {Limit: cfg.NewsletterLimit, Window: window, ScopeByIP: cfg.NewsletterScopeByIP},
		domain.FormWaitlist:         {Limit: cfg.WaitlistLimit, Window: window, ScopeByIP: cfg.WaitlistScopeByIP},
		domain.FormServiceRequest:   {Limit: cfg.ServiceLimit, Window: window},
		domain.FormTechnicalInquiry: {Limit: cfg.TechnicalLimit, Window: window},
	}
}

// RateLimiter counts persisted rows in a trailing window. It keeps no state
// of its own; the window is recomputed from created_at on every check.
type RateLimiter struct {
	db       *gorm.DB
	policies Policies
	now      func() time.Time
}

// NewRateLimiter creates a rate limiter over db
func NewRateLimiter(db *gorm.DB, policies Policies) *RateLimiter {
	return &RateLimiter{db: db, policies: policies, now: time.Now}
}

// Allow reports whether a submission of kind from scopeKey is within the
// limit. A failing count query allows the submission.
func (l *RateLimiter) Allow(ctx context.Context, kind domain.FormKind, scopeKey string) bool {
	policy, ok := l.policies[kind]
	if !ok || policy.Limit <= 0 {
		return true
	}

	count, err := l.Count(ctx, kind, policy, scopeKey)
	if err != nil {
		log.Printf("[LEADS] Rate limit check failed for %s, allowing submission: %v", kind, err)
		metrics.RecordRateLimitCheckError(string(kind))
		return true
	}

	return count < int64(policy.Limit)
}

// Count returns the number of rows of kind created within the policy window
func (l *RateLimiter) Count(ctx context.Context, kind domain.FormKind, policy Policy, scopeKey string) (int64, error) {
	windowStart := l.now().UTC().Add(-policy.Window)

	query := l.db.WithContext(ctx).Model(modelFor(kind)).Where("created_at >= ?", windowStart)
	if policy.ScopeByIP {
		if scopeKey == "" {
			scopeKey = domain.UnknownSourceIP
		}
		query = query.Where("source_ip = ?", scopeKey)
	}

	start := time.Now()
	var count int64
	err := query.Count(&count).Error
	metrics.RecordDBQuery("count_"+string(kind), time.Since(start), err)
	return count, err
}

// modelFor returns a fresh model value for the table of kind
func modelFor(kind domain.FormKind) interface{} {
	switch kind {
	case domain.FormContact:
		return &domain.ContactSubmission{}
	case domain.FormNewsletter:
		return &domain.NewsletterSubscription{}
	case domain.FormWaitlist:
		return &domain.WaitlistEntry{}
	case domain.FormServiceRequest:
		return &domain.ServiceRequest{}
	case domain.FormTechnicalInquiry:
		return &domain.TechnicalInquiry{}
	}
	return nil
}
