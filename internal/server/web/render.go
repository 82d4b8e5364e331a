package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/psustentables/taskboard/internal/server/models"
)

//go:embed templates/*.gohtml
var templatesFS embed.FS

// pageTemplates holds every page parsed together with the base layout.
var pageTemplates = parseTemplates()

func parseTemplates() map[string]*template.Template {
	pages := []string{"login", "register", "dashboard", "edit_task", "profile"}

	parsed := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		parsed[page] = template.Must(template.ParseFS(templatesFS,
			"templates/base.gohtml", "templates/"+page+".gohtml"))
	}
	return parsed
}

// pageData is the part of the view model every page shares.
type pageData struct {
	CurrentUser *models.User
	Flash       *Flash
}

func (s *Server) newPageData(w http.ResponseWriter, r *http.Request) pageData {
	return pageData{
		CurrentUser: CurrentUser(r.Context()),
		Flash:       s.popFlash(w, r),
	}
}

// render executes a page into a buffer first so a template fault becomes a
// clean 500 instead of a half-written body.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	tmpl, ok := pageTemplates[page]
	if !ok {
		s.internalError(w, r, "unknown page: "+page)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		s.internalError(w, r, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, msg string) {
	s.logger.Error(r.Context(), msg, "path", r.URL.Path)
	http.Error(w, "internal error", http.StatusInternalServerError)
}
