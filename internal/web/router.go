package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"

	"github.com/vasuli-app/vasuli/pkg/logger"
)

func NewRouter(h *Handler) http.Handler {
	mux := chi.NewRouter()
	mux.Use(logMiddleware, recoverMiddleware)

	mux.Get("/", h.Home)
	mux.Handle("/static/*", http.FileServer(http.FS(staticFS)))

	mux.Route("/clients", func(r chi.Router) {
		r.Get("/", h.ClientsIndex)
		r.Get("/new", h.ClientsNew)
		r.Post("/", h.ClientsCreate)
	})

	mux.Route("/cases", func(r chi.Router) {
		r.Get("/", h.CasesIndex)
		r.Get("/new", h.CasesNew)
		r.Post("/", h.CasesCreate)
		r.Get("/{id}", h.CaseShow)
		r.Get("/{id}/edit", h.CaseEdit)
		r.Post("/{id}", h.CaseUpdate)
	})

	return mux
}

func logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.Must(uuid.NewV4()).String()
		}

		ctx = logger.WithRequestID(ctx, requestID)
		w.Header().Set("X-Request-Id", requestID)

		slog.InfoContext(ctx, "incoming request", "request", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			err := recover()
			if err != nil {
				slog.ErrorContext(ctx, "recovered from panic", "error", err, "stack", string(debug.Stack()))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
