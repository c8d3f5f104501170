package transport

import "net/http"

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	res := s.svc.Health.Check(r.Context())
	status := http.StatusOK
	if !res.Healthy() {
		status = http.StatusServiceUnavailable
	}
	writeJSON(r.Context(), w, status, res)
}
