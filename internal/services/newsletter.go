package services

import (
	"context"
	"log"

	"brightbooks/internal/leads"
	"brightbooks/internal/util"
)

// MsgNewsletterSuccess confirms a new newsletter subscription
const MsgNewsletterSuccess = "Thank you for subscribing to our newsletter!"

// NewsletterService implements newsletter sign-up
type NewsletterService struct {
	pipeline *leads.Pipeline
}

// NewNewsletterService creates a new newsletter service
func NewNewsletterService(pipeline *leads.Pipeline) *NewsletterService {
	return &NewsletterService{pipeline: pipeline}
}

// Subscribe subscribes an email address. Subscribing an address twice
// succeeds both times.
func (s *NewsletterService) Subscribe(ctx context.Context, form *leads.NewsletterForm, meta leads.RequestMeta) *MessageResult {
	out := s.pipeline.Submit(ctx, form, meta, nil)

	switch {
	case out.Duplicate():
		log.Printf("[NEWSLETTER] Already subscribed: %s", util.RedactEmail(util.NormalizeEmail(form.Email)))
	case out.Accepted:
		log.Printf("[NEWSLETTER] Subscribed: %s", util.RedactEmail(util.NormalizeEmail(form.Email)))
	default:
		log.Printf("[NEWSLETTER] Subscribe rejected: %s", out.Code)
	}
	return messageResult(out, MsgNewsletterSuccess)
}
