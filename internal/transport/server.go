// Package transport mounts the public HTTP API on a goa muxer.
package transport

import (
	"net/http"

	goahttp "goa.design/goa/v3/http"

	"brightbooks/internal/services"
)

// maxBodyBytes bounds every request body
const maxBodyBytes = 64 << 10

// Services groups the services the HTTP API calls
type Services struct {
	Health             *services.HealthService
	Contact            *services.ContactService
	Newsletter         *services.NewsletterService
	Waitlist           *services.WaitlistService
	ServiceRequests    *services.ServiceRequestService
	TechnicalInquiries *services.TechnicalInquiryService
	Content            *services.ContentService
	Templates          *services.TemplateDownloadService
}

// MountPoint describes one mounted endpoint
type MountPoint struct {
	Method  string
	Pattern string
	handler http.HandlerFunc
}

// Server lists the HTTP handlers of the API
type Server struct {
	Mounts []*MountPoint
	mux    goahttp.Muxer
	svc    *Services
}

// New instantiates the HTTP server for svc. mux is used both to mount the
// handlers and to read path parameters.
func New(svc *Services, mux goahttp.Muxer) *Server {
	s := &Server{mux: mux, svc: svc}
	s.Mounts = []*MountPoint{
		{"GET", "/health", s.health},

		{"POST", "/api/v1/contact", s.submitContact},
		{"POST", "/api/v1/newsletter", s.subscribeNewsletter},
		{"POST", "/api/v1/waitlist", s.submitWaitlist},
		{"POST", "/api/v1/service-requests", s.submitServiceRequest},
		{"POST", "/api/v1/technical-inquiries", s.submitTechnicalInquiry},

		{"GET", "/api/v1/solutions", s.listSolutions},
		{"GET", "/api/v1/solutions/{slug}", s.getSolution},
		{"GET", "/api/v1/insights", s.listInsights},
		{"GET", "/api/v1/insights/{slug}", s.getInsight},
		{"GET", "/api/v1/templates", s.listTemplates},
		{"GET", "/api/v1/templates/{slug}", s.getTemplate},
		{"POST", "/api/v1/templates/{slug}/download-request", s.requestTemplateDownload},
		{"GET", "/api/v1/templates/{slug}/download", s.downloadTemplate},
		{"GET", "/api/v1/policies/{slug}", s.getPolicy},
	}
	return s
}

// Use wraps every handler with m. The last middleware added runs first.
func (s *Server) Use(m func(http.Handler) http.Handler) {
	for _, mp := range s.Mounts {
		mp.handler = m(mp.handler).ServeHTTP
	}
}

// Mount registers every handler on the muxer
func (s *Server) Mount(mux goahttp.Muxer) {
	for _, mp := range s.Mounts {
		mux.Handle(mp.Method, mp.Pattern, mp.handler)
	}
}

func (s *Server) slug(r *http.Request) string {
	return s.mux.Vars(r)["slug"]
}
