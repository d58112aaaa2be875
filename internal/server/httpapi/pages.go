package httpapi

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/dmitrijs2005/rfidcredits/internal/server/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type loginView struct {
	Error string
}

type adminView struct {
	Cards []models.Card
}

func (s *HTTPServer) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		s.logger.Error(r.Context(), "render page", "page", name, "error", err)
	}
}
