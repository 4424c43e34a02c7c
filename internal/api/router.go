package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/vasuli-app/vasuli/docs" // swagger docs
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.HandleFunc("/swagger/*", httpSwagger.Handler())

		r.Route("/clients", func(r chi.Router) {
			r.Get("/", h.Clients)
			r.Post("/", h.CreateClient)
			r.Get("/{id}", h.Client)
		})

		r.Route("/cases", func(r chi.Router) {
			r.Get("/", h.Cases)
			r.Post("/", h.CreateCase)
			r.Get("/{id}", h.Case)
			r.Patch("/{id}", h.UpdateCase)
		})
	})

	return mux
}
