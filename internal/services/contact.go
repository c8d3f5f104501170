package services

import (
	"context"
	"log"

	"brightbooks/internal/domain"
	"brightbooks/internal/leads"
	"brightbooks/internal/util"
)

// MsgContactSuccess confirms a stored contact submission
const MsgContactSuccess = "Thank you for contacting us! We'll get back to you within 24 hours."

// ContactService implements the contact service
type ContactService struct {
	pipeline     *leads.Pipeline
	emailService *EmailService
}

// NewContactService creates a new contact service
func NewContactService(pipeline *leads.Pipeline, emailService *EmailService) *ContactService {
	return &ContactService{
		pipeline:     pipeline,
		emailService: emailService,
	}
}

// Submit implements the submit contact form method
func (s *ContactService) Submit(ctx context.Context, form *leads.ContactForm, meta leads.RequestMeta) *MessageResult {
	log.Printf("[CONTACT] Submit request: email=%s, ip=%s", util.RedactEmail(util.NormalizeEmail(form.Email)), meta.SourceIP)

	out := s.pipeline.Submit(ctx, form, meta, leads.NotifierFunc(s.notify))
	if !out.Accepted {
		log.Printf("[CONTACT] Submit rejected: %s", out.Code)
		return messageResult(out, "")
	}

	if row, ok := out.Record.(*domain.ContactSubmission); ok {
		log.Printf("[CONTACT] Submit successful: id=%d", row.ID)
	}
	return messageResult(out, MsgContactSuccess)
}

func (s *ContactService) notify(ctx context.Context, record interface{}) error {
	row, ok := record.(*domain.ContactSubmission)
	if !ok || s.emailService == nil {
		return nil
	}
	return s.emailService.NotifyContact(ctx, row)
}
