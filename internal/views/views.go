// Package views holds the HTML templates rendered by the handlers.
package views

import (
	"embed"
	"html/template"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

const timeLayout = "2006-01-02 15:04"

// Funcs are the helpers available inside every template
var Funcs = template.FuncMap{
	"formatTime": formatTime,
	"inc":        func(n int) int { return n + 1 },
	"dec":        func(n int) int { return n - 1 },
}

// Load parses all embedded templates into one set. Pages are addressed by
// file name, e.g. "index.html".
func Load() (*template.Template, error) {
	return template.New("").Funcs(Funcs).ParseFS(templateFS, "templates/*.html")
}

// MustLoad is like Load but panics on a parse error
func MustLoad() *template.Template {
	return template.Must(Load())
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timeLayout)
}
