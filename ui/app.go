// Package ui serves the rendered analysis document and its JSON
// fragments over HTTP.
package ui

import (
	"bytes"
	"embed"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	domainreport "heartscope/domain/report"
	applog "heartscope/internal"
	"heartscope/internal/analysis"
	"heartscope/internal/report"
)

//go:embed templates/* static/*
var embeddedFiles embed.FS

// App represents the report viewer application.
type App struct {
	router   *chi.Mux
	renderer *HTMLRenderer
	log      *applog.Logger

	doc      domainreport.Document
	prepared *analysis.PreparedData // nil when the dataset failed to load
}

// NewApp builds the viewer around an already-assembled document. The
// prepared data may be nil (missing dataset); the page then carries
// the error notice instead of data sections.
func NewApp(doc domainreport.Document, prepared *analysis.PreparedData) (*App, error) {
	renderer, err := NewHTMLRenderer()
	if err != nil {
		return nil, err
	}

	app := &App{
		router:   chi.NewRouter(),
		renderer: renderer,
		log:      applog.DefaultLogger,
		doc:      doc,
		prepared: prepared,
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))

	staticFS := http.FileServer(http.FS(embeddedFiles))
	a.router.Handle("/static/*", http.StripPrefix("/", staticFS))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/", a.handleIndex)
	a.router.Get("/healthz", a.handleHealth)

	// JSON endpoints backing the interactive fragments
	a.router.Get("/api/summary", a.handleSummary)
	a.router.Get("/api/describe", a.handleDescribe)
	a.router.Get("/api/charts/{id}", a.handleChart)
}

// Handler exposes the router for tests.
func (a *App) Handler() http.Handler {
	return a.router
}

// Start starts the web server on the given address.
func (a *App) Start(addr string) error {
	a.log.Info("Serving report on http://%s", addr)
	return http.ListenAndServe(addr, a.router)
}

// handleIndex renders the full report document. The template executes
// into a buffer first so a render error never leaks a half-written page.
func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := a.renderer.Render(&buf, a.doc); err != nil {
		a.log.Error("Template error: %v", err)
		http.Error(w, "template rendering failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"run_id":  string(a.doc.RunID),
		"rows":    a.doc.RowCount,
		"columns": a.doc.ColumnCount,
		"dataset": a.doc.SourcePath,
	}
	if a.doc.LoadError != "" {
		status["dataset_error"] = a.doc.LoadError
	}
	writeJSON(w, http.StatusOK, status)
}

func (a *App) handleSummary(w http.ResponseWriter, r *http.Request) {
	if a.prepared == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": a.doc.LoadError})
		return
	}
	writeJSON(w, http.StatusOK, a.prepared)
}

func (a *App) handleDescribe(w http.ResponseWriter, r *http.Request) {
	if a.prepared == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": a.doc.LoadError})
		return
	}
	writeJSON(w, http.StatusOK, a.prepared.Describe)
}

// handleChart returns one chart spec by ID, for clients that redraw
// fragments without reloading the page.
func (a *App) handleChart(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	for _, sec := range a.doc.Sections {
		for _, c := range sec.Charts {
			if c.ID == id {
				writeJSON(w, http.StatusOK, c)
				return
			}
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown chart: " + id})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Builder-backed constructor used by main: prepares the document from
// the pipeline output in one step.
func NewAppFromPipeline(prepared *analysis.PreparedData, source string, loadErr error) (*App, error) {
	builder := report.NewBuilder()
	if loadErr != nil {
		return NewApp(builder.BuildError(source, loadErr), nil)
	}
	return NewApp(builder.Build(prepared), prepared)
}
