package web

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pages = []string{
	"home.html",
	"clients_index.html",
	"clients_new.html",
	"cases_index.html",
	"cases_new.html",
	"case_show.html",
	"case_edit.html",
	"case_not_found.html",
}

func parseTemplates() (map[string]*template.Template, error) {
	ts := make(map[string]*template.Template, len(pages))

	for _, page := range pages {
		t, err := template.New("layout.html").ParseFS(templatesFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", page, err)
		}

		ts[page] = t
	}

	return ts, nil
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, code int, page string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)

	err := h.templates[page].ExecuteTemplate(w, "layout.html", data)
	if err != nil {
		slog.ErrorContext(r.Context(), "render template", "page", page, "error", err)
	}
}
