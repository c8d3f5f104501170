package services

import (
	"context"
	"log"
	"strings"

	"brightbooks/internal/leads"
	"brightbooks/internal/util"
)

// MsgWaitlistSuccess confirms a waitlist entry
const MsgWaitlistSuccess = "You're on the list! We'll be in touch soon."

// DefaultWaitlistSource is recorded when the client names no known source
const DefaultWaitlistSource = "waitlist"

// TemplateSourcePrefix prefixes the source of leads captured by the template
// download wizard
const TemplateSourcePrefix = "template:"

var waitlistSources = map[string]bool{
	DefaultWaitlistSource: true,
	"homepage":            true,
	"pricing":             true,
	"solutions":           true,
	"insights":            true,
}

// WaitlistSource returns source when it is a known public source and
// DefaultWaitlistSource otherwise. Template sources are never accepted from
// clients.
func WaitlistSource(source string) string {
	source = strings.ToLower(strings.TrimSpace(source))
	if waitlistSources[source] {
		return source
	}
	return DefaultWaitlistSource
}

// WaitlistService implements waitlist sign-up
type WaitlistService struct {
	pipeline *leads.Pipeline
}

// NewWaitlistService creates a new waitlist service
func NewWaitlistService(pipeline *leads.Pipeline) *WaitlistService {
	return &WaitlistService{pipeline: pipeline}
}

// Submit adds a waitlist entry recorded under source. The caller decides
// source; use WaitlistSource for client supplied values.
func (s *WaitlistService) Submit(ctx context.Context, form *leads.WaitlistForm, source string, meta leads.RequestMeta) *FormResult {
	form.Source = source
	out := s.pipeline.Submit(ctx, form, meta, nil)
	if !out.Accepted {
		log.Printf("[WAITLIST] Submit rejected: source=%s, code=%s", source, out.Code)
		return formResult(out, "", nil)
	}

	log.Printf("[WAITLIST] Joined: email=%s, source=%s", util.RedactEmail(util.NormalizeEmail(form.Email)), source)
	return formResult(out, MsgWaitlistSuccess, nil)
}
