package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"brightbooks/internal/domain"
)

const submittedAtLayout = "January 2, 2006 at 3:04 PM MST"

// NotifyContact sends the admin notification for a contact submission
func (s *EmailService) NotifyContact(ctx context.Context, row *domain.ContactSubmission) error {
	return s.SendTemplate(ctx, TemplateContactAdmin, s.AdminEmail(), row.Email, map[string]interface{}{
		"name":         row.FullName,
		"email":        row.Email,
		"company":      deref(row.Company),
		"subject":      deref(row.Subject),
		"message":      row.Message,
		"submitted_at": submittedAt(row.CreatedAt),
	})
}

// NotifyServiceRequest sends the admin notification for a service request
func (s *EmailService) NotifyServiceRequest(ctx context.Context, row *domain.ServiceRequest) error {
	return s.SendTemplate(ctx, TemplateServiceRequestAdmin, s.AdminEmail(), row.Email, map[string]interface{}{
		"solution":     row.SolutionID,
		"name":         row.FullName,
		"email":        row.Email,
		"company":      deref(row.Company),
		"phone":        deref(row.Phone),
		"message":      deref(row.Message),
		"submitted_at": submittedAt(row.CreatedAt),
	})
}

// NotifyTechnicalInquiry sends the admin notification and the submitter's
// acknowledgement. Both are attempted; the errors are joined.
func (s *EmailService) NotifyTechnicalInquiry(ctx context.Context, row *domain.TechnicalInquiry) error {
	data := map[string]interface{}{
		"reference_id":    row.ReferenceID,
		"title":           deref(row.Title),
		"name":            row.FullName,
		"first_name":      firstWord(row.FullName),
		"email":           row.Email,
		"phone":           deref(row.Phone),
		"company":         deref(row.Company),
		"job_title":       deref(row.JobTitle),
		"subject":         row.Subject,
		"subcategory":     deref(row.Subcategory),
		"background":      row.Background,
		"question":        deref(row.Question),
		"additional_info": deref(row.AdditionalInfo),
		"submitted_at":    submittedAt(row.CreatedAt),
	}

	adminErr := s.SendTemplate(ctx, TemplateTechnicalInquiryAdmin, s.AdminEmail(), row.Email, data)
	ackErr := s.SendTemplate(ctx, TemplateTechnicalInquiryAck, row.Email, s.AdminEmail(), data)
	return errors.Join(adminErr, ackErr)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func firstWord(s string) string {
	if fields := strings.Fields(s); len(fields) > 0 {
		return fields[0]
	}
	return ""
}

func submittedAt(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Format(submittedAtLayout)
}
