package services

import (
	"context"
	"log"
	"time"

	"brightbooks/internal/domain"
	"brightbooks/internal/leads"
)

// MsgTechnicalInquirySuccess confirms a stored technical inquiry
const MsgTechnicalInquirySuccess = "Thank you! Your technical inquiry has been received."

// TechnicalInquiryData is returned to the client after a stored inquiry
type TechnicalInquiryData struct {
	ReferenceID string    `json:"referenceId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TechnicalInquiryService handles the technical inquiry form
type TechnicalInquiryService struct {
	pipeline     *leads.Pipeline
	emailService *EmailService
}

// NewTechnicalInquiryService creates a new technical inquiry service
func NewTechnicalInquiryService(pipeline *leads.Pipeline, emailService *EmailService) *TechnicalInquiryService {
	return &TechnicalInquiryService{pipeline: pipeline, emailService: emailService}
}

// Submit stores an inquiry, notifies the admin and acknowledges the submitter
func (s *TechnicalInquiryService) Submit(ctx context.Context, form *leads.TechnicalInquiryForm, meta leads.RequestMeta) *FormResult {
	out := s.pipeline.Submit(ctx, form, meta, leads.NotifierFunc(s.notify))
	if !out.Accepted {
		log.Printf("[TECHNICAL_INQUIRY] Submit rejected: %s", out.Code)
		return formResult(out, "", nil)
	}

	row, ok := out.Record.(*domain.TechnicalInquiry)
	if !ok {
		return formResult(out, MsgTechnicalInquirySuccess, nil)
	}

	log.Printf("[TECHNICAL_INQUIRY] Submit successful: ref=%s", row.ReferenceID)
	return formResult(out, MsgTechnicalInquirySuccess, &TechnicalInquiryData{
		ReferenceID: row.ReferenceID,
		CreatedAt:   row.CreatedAt,
	})
}

func (s *TechnicalInquiryService) notify(ctx context.Context, record interface{}) error {
	row, ok := record.(*domain.TechnicalInquiry)
	if !ok || s.emailService == nil {
		return nil
	}
	return s.emailService.NotifyTechnicalInquiry(ctx, row)
}
