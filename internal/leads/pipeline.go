package leads

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"brightbooks/internal/domain"
	"brightbooks/internal/metrics"
	apperrors "brightbooks/pkg/errors"
)

// Outcome is the result of one submission. Message is empty for a plain
// success; the caller supplies its own confirmation text in that case.
type Outcome struct {
	Accepted bool
	Code     apperrors.ErrorCode
	Message  string
	// Record is the persisted row, nil unless the insert succeeded
	Record interface{}
}

// Duplicate reports whether the submission was accepted as an already
// existing newsletter subscription
func (o Outcome) Duplicate() bool {
	return o.Accepted && o.Code == apperrors.ErrCodeDuplicateSubscription
}

// Notifier is told about every newly persisted row. Its error is logged and
// counted but never changes the outcome.
type Notifier interface {
	Notify(ctx context.Context, record interface{}) error
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(ctx context.Context, record interface{}) error

// Notify calls f(ctx, record)
func (f NotifierFunc) Notify(ctx context.Context, record interface{}) error {
	return f(ctx, record)
}

// Pipeline runs submissions through the bot filter, validator, rate limiter,
// gateway and notifier
type Pipeline struct {
	limiter *RateLimiter
	gateway *Gateway
	now     func() time.Time
}

// NewPipeline creates a pipeline over db using policies for rate limiting
func NewPipeline(db *gorm.DB, policies Policies) *Pipeline {
	return &Pipeline{
		limiter: NewRateLimiter(db, policies),
		gateway: NewGateway(db),
		now:     time.Now,
	}
}

// Submit processes one form. notifier may be nil.
func (p *Pipeline) Submit(ctx context.Context, form Form, meta RequestMeta, notifier Notifier) (out Outcome) {
	kind := form.Kind()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[LEADS] Panic while processing %s submission: %v", kind, r)
			out = reject(apperrors.ErrCodeInternalError, MsgGenericFailure)
		}
		metrics.RecordSubmission(string(kind), outcomeLabel(out))
	}()

	if IsBot(form.BotTrap()) {
		log.Printf("[LEADS] Bot detected on %s form from %s", kind, meta.SourceIP)
		return reject(apperrors.ErrCodeBotDetected, MsgInvalidSubmission)
	}

	if err := form.Validate(); err != nil {
		return reject(apperrors.CodeOf(err), apperrors.MessageOf(err, MsgInvalidSubmission))
	}

	if !p.limiter.Allow(ctx, kind, meta.SourceIP) {
		log.Printf("[LEADS] Rate limit exceeded for %s form from %s", kind, meta.SourceIP)
		return reject(apperrors.ErrCodeRateLimited, MsgRateLimited)
	}

	record := form.Record(meta, p.now())
	if err := p.gateway.Insert(ctx, kind, record); err != nil {
		if apperrors.IsDuplicateSubscription(err) {
			return Outcome{
				Accepted: true,
				Code:     apperrors.ErrCodeDuplicateSubscription,
				Message:  MsgAlreadySubscribed,
			}
		}
		return reject(apperrors.CodeOf(err), apperrors.MessageOf(err, MsgGenericFailure))
	}

	if notifier != nil {
		p.notify(ctx, kind, notifier, record)
	}

	return Outcome{Accepted: true, Record: record}
}

// notify runs the notifier and swallows its failure, including a panic
func (p *Pipeline) notify(ctx context.Context, kind domain.FormKind, notifier Notifier, record interface{}) {
	var err error
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("notifier panic: %v", r)
		}
		if err != nil {
			log.Printf("[LEADS] Notification for %s failed: %v", kind, err)
		}
		metrics.RecordNotification(string(kind), err)
	}()
	err = notifier.Notify(ctx, record)
}

func reject(code apperrors.ErrorCode, message string) Outcome {
	return Outcome{Code: code, Message: message}
}

// outcomeLabel maps an outcome to its form_submissions_total label
func outcomeLabel(out Outcome) string {
	switch {
	case out.Duplicate():
		return "already_subscribed"
	case out.Accepted:
		return "accepted"
	case out.Code == "":
		return "internal_error"
	}
	return strings.ToLower(string(out.Code))
}
