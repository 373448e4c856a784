// Package templates holds the console's embedded HTML views.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.gohtml
var files embed.FS

// Parse loads every embedded view into one template set.
func Parse() (*template.Template, error) {
	return template.ParseFS(files, "*.gohtml")
}
