package api

import (
	"net/http"
	"time"

	"github.com/vytor/wordull/internal/errors"
)

type testNotificationRequest struct {
	AppriseURL string `json:"appriseUrl"`
}

func (s *Server) handleTestNotification(w http.ResponseWriter, r *http.Request) {
	var req testNotificationRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.ReminderService.TestNotification(r.Context(), req.AppriseURL); err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{
		"success": true,
		"message": "Test notification sent successfully",
	})
}

func (s *Server) handleNextReset(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{
		"nextReset": s.Clock.NextMidnight().Format(time.RFC3339),
	})
}

func (s *Server) handleWordOfDay(w http.ResponseWriter, r *http.Request) {
	today := s.Clock.Today()

	solution, err := s.WordClient.FetchSolution(r.Context(), today)
	if err != nil {
		handleError(w, r, errors.NewFetchError(err))
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{
		"date":     today,
		"solution": solution,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{
		"status": "healthy",
		"date":   s.Clock.Today(),
	})
}
