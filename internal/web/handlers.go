package web

import (
	"encoding/json"
	"net/http"
)

// handleSummary handles /api/summary requests
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.summary)
}

// handleTarget handles /api/targets/{target} requests
func (s *Server) handleTarget(w http.ResponseWriter, r *http.Request) {
	target := r.PathValue("target")

	report, ok := s.summary.Find(target)
	if !ok {
		http.Error(w, "unknown target", http.StatusNotFound)
		return
	}

	writeJSON(w, report)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
