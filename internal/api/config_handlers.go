package api

import (
	"net/http"

	"github.com/vytor/wordull/internal/models"
)

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.ConfigService.GetConfig(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, cfg)
}

func (s *Server) handleUpdateConfig(w http.ResponseWriter, r *http.Request) {
	var req models.UserConfig
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	if _, err := s.ConfigService.UpdateConfig(r.Context(), req); err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}
