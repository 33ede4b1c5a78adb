// Package web serves a read-only JSON view of stored game results.
package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vovakirdan/tui-reversi/internal/storage"
)

// ResultSource is the part of the results store the API reads from.
type ResultSource interface {
	RecentResults(mode string, limit int) ([]storage.Result, error)
	ResultByMatchID(matchID string) (storage.Result, error)
	GetStats(mode string) (*storage.Stats, error)
}

// NewServer wires routes and returns an http.Handler.
func NewServer(src ResultSource) http.Handler {
	r := chi.NewRouter()
	h := &handlers{src: src}
	r.Get("/healthz", h.health)
	r.Route("/api", func(r chi.Router) {
		r.Get("/results", h.results)
		r.Get("/results/{matchID}", h.result)
		r.Get("/stats", h.stats)
	})
	return r
}
