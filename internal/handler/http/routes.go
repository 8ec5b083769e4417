package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.health)
		r.Post("/api/signup", h.signup)
		r.Post("/api/signin", h.signin)
	})

	// routes behind bearer-token authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/records/{table}", h.saveRecord)
		r.Get("/api/records/{table}/latest", h.latestRecord)
		r.Get("/api/food/search", h.searchFood)
		r.Get("/api/videos/search", h.searchVideos)
	})

	return router
}
