package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
)

//go:embed templates
var viewsFS embed.FS

const (
	DASHBOARD_PAGE = "dashboard.html"
	WEATHER_PAGE   = "weather.html"
	ERROR_PAGE     = "error.html"
	DEBUG_PAGE     = "debug.html"
)

var pageNames = []string{DASHBOARD_PAGE, WEATHER_PAGE, ERROR_PAGE, DEBUG_PAGE}

// Renderer executes the page templates. Each page is the base layout plus the
// shared partials plus its own "content" block.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses the embedded templates. Call during startup; if it
// returns an error, do not start the server.
func NewRenderer() (*Renderer, error) {
	return newRendererFromFS(viewsFS, "templates")
}

func newRendererFromFS(fsys fs.FS, dir string) (*Renderer, error) {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		return nil, err
	}

	layout, err := template.ParseFS(sub, "base.html", "partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout templates: %w", err)
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		page, err := layout.Clone()
		if err != nil {
			return nil, err
		}
		if page, err = page.ParseFS(sub, name); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		pages[name] = page
	}

	return &Renderer{pages: pages}, nil
}

func (r *Renderer) render(w io.Writer, page string, data any) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page template %q", page)
	}
	return tmpl.ExecuteTemplate(w, "base", data)
}
