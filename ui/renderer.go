package ui

import (
	"fmt"
	"html/template"
	"io"

	domainreport "heartscope/domain/report"
	"heartscope/ports"
)

// HTMLRenderer renders a report document to HTML using the embedded
// templates. It is the default DocumentRenderer backend.
type HTMLRenderer struct {
	templates *template.Template
}

var _ ports.DocumentRenderer = (*HTMLRenderer)(nil)

// NewHTMLRenderer parses the embedded templates.
func NewHTMLRenderer() (*HTMLRenderer, error) {
	funcMap := template.FuncMap{
		"chart": RenderChartSVG,
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &HTMLRenderer{templates: templates}, nil
}

// Render writes the full document page.
func (r *HTMLRenderer) Render(w io.Writer, doc domainreport.Document) error {
	return r.templates.ExecuteTemplate(w, "index.html", doc)
}
