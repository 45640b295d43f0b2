package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	router.Route("/coins", func(r chi.Router) {
		r.Get("/", h.listCoins)
		r.Post("/", h.addCoin)
		r.Delete("/{coinID}", h.removeCoin)
	})

	router.Get("/version", h.getServerVersion)

	return router
}
