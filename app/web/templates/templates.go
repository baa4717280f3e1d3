package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Parse loads every page template of the web client
func Parse() (*template.Template, error) {
	return template.ParseFS(files, "*.html")
}
