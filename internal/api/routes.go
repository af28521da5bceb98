package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Get("/game-state", s.handleGameState)
		r.Post("/game-state", s.handleSaveGameState)
		r.Post("/evaluate-guess", s.handleEvaluateGuess)
		r.Get("/statistics", s.handleStatistics)
		r.Post("/import-stats", s.handleImportStats)
		r.Get("/config", s.handleGetConfig)
		r.Post("/config", s.handleUpdateConfig)
		r.Post("/validate-word", s.handleValidateWord)
		r.Post("/test-notification", s.handleTestNotification)
		r.Get("/next-reset", s.handleNextReset)
		r.Get("/word-of-day", s.handleWordOfDay)
		r.Get("/health", s.handleHealth)
	})

	r.Handle("/*", http.FileServer(http.Dir(s.StaticDir)))
	return r
}
