package api

import (
	"net/http"

	"github.com/vytor/wordull/internal/models"
)

func (s *Server) handleGameState(w http.ResponseWriter, r *http.Request) {
	state, err := s.GameService.GetCurrentState(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, state)
}

func (s *Server) handleSaveGameState(w http.ResponseWriter, r *http.Request) {
	var state models.GameState
	if err := decodeJSON(r, &state); err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.GameService.SaveState(r.Context(), &state); err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}

type guessRequest struct {
	Word     string `json:"word"`
	RowIndex int    `json:"rowIndex"`
}

func (s *Server) handleEvaluateGuess(w http.ResponseWriter, r *http.Request) {
	var req guessRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	result, err := s.GameService.SubmitGuess(r.Context(), req.Word, req.RowIndex)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}

type validateWordRequest struct {
	Word string `json:"word"`
}

func (s *Server) handleValidateWord(w http.ResponseWriter, r *http.Request) {
	var req validateWordRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]bool{"valid": s.Words.Valid(req.Word)})
}
