package api

import (
	"embed"
	"html/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// loadTemplates parses the page templates. Each page is addressed by its
// file name, e.g. "feed.tmpl".
func loadTemplates() (*template.Template, error) {
	return template.New("").ParseFS(templateFS, "templates/*.tmpl")
}
