package api

import (
	"net/http"

	"github.com/vytor/wordull/internal/models"
)

func (s *Server) handleStatistics(w http.ResponseWriter, r *http.Request) {
	aggregate, err := s.StatsService.GetStatistics(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, aggregate)
}

func (s *Server) handleImportStats(w http.ResponseWriter, r *http.Request) {
	var req models.ImportedStats
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	if _, err := s.StatsService.ImportStatistics(r.Context(), req); err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{
		"success": true,
		"message": "Statistics imported successfully",
	})
}
