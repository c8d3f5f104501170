package transport

import (
	"net/http"

	goahttp "goa.design/goa/v3/http"
	goa "goa.design/goa/v3/pkg"

	"brightbooks/internal/leads"
	"brightbooks/internal/services"
	apperrors "brightbooks/pkg/errors"
)

// waitlistRequest is the waitlist body. Source is vetted before it reaches
// the form.
type waitlistRequest struct {
	leads.WaitlistForm
	Source string `json:"source,omitempty"`
}

// decodeBody decodes the request body into v. A failure is answered with 400
// and reported as false.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := goahttp.RequestDecoder(r).Decode(v); err != nil {
		writeError(r.Context(), w, apperrors.Wrap(apperrors.ErrCodeBadRequest, msgBadRequestBody, goa.DecodePayloadError(err.Error())))
		return false
	}
	return true
}

func writeMessageResult(w http.ResponseWriter, r *http.Request, res *services.MessageResult) {
	writeJSON(r.Context(), w, StatusFor(res.Code), res)
}

func writeFormResult(w http.ResponseWriter, r *http.Request, res *services.FormResult) {
	writeJSON(r.Context(), w, StatusFor(res.Code), res)
}

func (s *Server) submitContact(w http.ResponseWriter, r *http.Request) {
	var form leads.ContactForm
	if !decodeBody(w, r, &form) {
		return
	}
	writeMessageResult(w, r, s.svc.Contact.Submit(r.Context(), &form, RequestMetaFrom(r.Context())))
}

func (s *Server) subscribeNewsletter(w http.ResponseWriter, r *http.Request) {
	var form leads.NewsletterForm
	if !decodeBody(w, r, &form) {
		return
	}
	writeMessageResult(w, r, s.svc.Newsletter.Subscribe(r.Context(), &form, RequestMetaFrom(r.Context())))
}

func (s *Server) submitWaitlist(w http.ResponseWriter, r *http.Request) {
	var body waitlistRequest
	if !decodeBody(w, r, &body) {
		return
	}
	source := services.WaitlistSource(body.Source)
	writeFormResult(w, r, s.svc.Waitlist.Submit(r.Context(), &body.WaitlistForm, source, RequestMetaFrom(r.Context())))
}

func (s *Server) submitServiceRequest(w http.ResponseWriter, r *http.Request) {
	var form leads.ServiceRequestForm
	if !decodeBody(w, r, &form) {
		return
	}
	writeFormResult(w, r, s.svc.ServiceRequests.Submit(r.Context(), &form, RequestMetaFrom(r.Context())))
}

func (s *Server) submitTechnicalInquiry(w http.ResponseWriter, r *http.Request) {
	var form leads.TechnicalInquiryForm
	if !decodeBody(w, r, &form) {
		return
	}
	writeFormResult(w, r, s.svc.TechnicalInquiries.Submit(r.Context(), &form, RequestMetaFrom(r.Context())))
}
