package services

import (
	"context"
	"log"

	"brightbooks/internal/domain"
	"brightbooks/internal/leads"
)

// MsgServiceRequestSuccess confirms a stored service request
const MsgServiceRequestSuccess = "Thank you! Your request has been received."

// ServiceRequestService handles "request this service" forms
type ServiceRequestService struct {
	pipeline     *leads.Pipeline
	emailService *EmailService
}

// NewServiceRequestService creates a new service request service
func NewServiceRequestService(pipeline *leads.Pipeline, emailService *EmailService) *ServiceRequestService {
	return &ServiceRequestService{pipeline: pipeline, emailService: emailService}
}

// Submit stores a service request and notifies the admin
func (s *ServiceRequestService) Submit(ctx context.Context, form *leads.ServiceRequestForm, meta leads.RequestMeta) *FormResult {
	out := s.pipeline.Submit(ctx, form, meta, leads.NotifierFunc(s.notify))
	if !out.Accepted {
		log.Printf("[SERVICE_REQUEST] Submit rejected: %s", out.Code)
		return formResult(out, "", nil)
	}

	if row, ok := out.Record.(*domain.ServiceRequest); ok {
		log.Printf("[SERVICE_REQUEST] Submit successful: id=%d, solution=%s", row.ID, row.SolutionID)
	}
	return formResult(out, MsgServiceRequestSuccess, nil)
}

func (s *ServiceRequestService) notify(ctx context.Context, record interface{}) error {
	row, ok := record.(*domain.ServiceRequest)
	if !ok || s.emailService == nil {
		return nil
	}
	return s.emailService.NotifyServiceRequest(ctx, row)
}
