package transport

import (
	"net/http"

	"brightbooks/internal/leads"
	apperrors "brightbooks/pkg/errors"
)

func (s *Server) requestTemplateDownload(w http.ResponseWriter, r *http.Request) {
	var form leads.WaitlistForm
	if !decodeBody(w, r, &form) {
		return
	}

	res, err := s.svc.Templates.RequestDownload(r.Context(), s.slug(r), &form, RequestMetaFrom(r.Context()))
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeFormResult(w, r, res)
}

func (s *Server) downloadTemplate(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		writeError(r.Context(), w, apperrors.New(apperrors.ErrCodeBadRequest, "A download token is required."))
		return
	}

	fileURL, err := s.svc.Templates.ResolveDownload(r.Context(), s.slug(r), token)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	http.Redirect(w, r, fileURL, http.StatusFound)
}
