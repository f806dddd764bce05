package server

import (
	"embed"
	"html/template"
	"net/http"

	log "github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// render writes a template with an explicit status code. Failures past the
// header write can only be logged.
func render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		log.WithError(err).WithField("template", name).Error("render failed")
	}
}

// renderError is the shared error view for failures that do not belong to a
// specific form.
func renderError(w http.ResponseWriter, status int, message string) {
	render(w, status, "error.html", map[string]any{
		"Status":  status,
		"Message": message,
	})
}
