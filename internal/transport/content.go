package transport

import (
	"net/http"
	"strconv"

	apperrors "brightbooks/pkg/errors"
)

// listResponse wraps content lists
type listResponse struct {
	Data  interface{} `json:"data"`
	Count int         `json:"count"`
}

// itemResponse wraps a single content item
type itemResponse struct {
	Data interface{} `json:"data"`
}

func (s *Server) listSolutions(w http.ResponseWriter, r *http.Request) {
	rows, err := s.svc.Content.ListSolutions(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, &listResponse{Data: rows, Count: len(rows)})
}

func (s *Server) getSolution(w http.ResponseWriter, r *http.Request) {
	row, err := s.svc.Content.GetSolution(r.Context(), s.slug(r))
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, &itemResponse{Data: row})
}

func (s *Server) listInsights(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(r.Context(), w, apperrors.New(apperrors.ErrCodeBadRequest, "limit must be a number"))
			return
		}
		limit = n
	}

	rows, err := s.svc.Content.ListInsights(r.Context(), limit)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, &listResponse{Data: rows, Count: len(rows)})
}

func (s *Server) getInsight(w http.ResponseWriter, r *http.Request) {
	row, err := s.svc.Content.GetInsight(r.Context(), s.slug(r))
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, &itemResponse{Data: row})
}

func (s *Server) listTemplates(w http.ResponseWriter, r *http.Request) {
	rows, err := s.svc.Content.ListTemplates(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, &listResponse{Data: rows, Count: len(rows)})
}

func (s *Server) getTemplate(w http.ResponseWriter, r *http.Request) {
	row, err := s.svc.Content.GetTemplate(r.Context(), s.slug(r))
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, &itemResponse{Data: row})
}

func (s *Server) getPolicy(w http.ResponseWriter, r *http.Request) {
	row, err := s.svc.Content.GetPolicy(r.Context(), s.slug(r))
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, &itemResponse{Data: row})
}
