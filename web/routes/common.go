package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/piperubio/registry/model"
	"github.com/piperubio/registry/registry"
	"github.com/yuin/goldmark"
)

// Catalog lists the items shown on the HTML pages.
type Catalog interface {
	Items() ([]model.RegistryItem, error)
	Item(name string) (*model.RegistryItem, error)
}

// ServerHandler holds all dependencies needed for the web server handlers.
type ServerHandler struct {
	Source      registry.Source
	Catalog     Catalog
	RegistryURL string
	Markdown    goldmark.Markdown
}

func NewServerHandler(source registry.Source, catalog Catalog, registryURL string) *ServerHandler {
	return &ServerHandler{
		Source:      source,
		Catalog:     catalog,
		RegistryURL: registryURL,
		Markdown:    goldmark.New(),
	}
}

// SafeRenderTemplate safely renders a templ component to an http.ResponseWriter.
func SafeRenderTemplate(ctx context.Context, component templ.Component, w http.ResponseWriter) error {
	// Do not write to w because it implies 200 status
	var buf bytes.Buffer

	err := component.Render(ctx, &buf)
	if err != nil {
		return fmt.Errorf("could not render template: %w", err)
	}

	// Template executed successfully to the buffer.
	// Now, copy it over to the ResponseWriter
	// This implies a 200 OK status code
	w.Header().Set("Content-Type", "text/html; charset=UTF-8")

	if _, err := buf.WriteTo(w); err != nil {
		slog.ErrorContext(ctx, "Failed to write response", "error", err)

		return fmt.Errorf("could not write to response writer: %w", err)
	}

	return nil
}

// renderPage renders a page and turns a render failure into a 500.
func renderPage(w http.ResponseWriter, r *http.Request, page string, component templ.Component) {
	timer := observeRender(page)
	defer timer()

	if err := SafeRenderTemplate(r.Context(), component, w); err != nil {
		slog.ErrorContext(r.Context(), "Failed to render page", "page", page, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

type errorBody struct {
	Error string `json:"error"`
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	body, _ := json.Marshal(errorBody{Error: message})
	writeJSONBytes(w, status, body)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to encode response", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to encode response")

		return
	}

	writeJSONBytes(w, status, body)
}

// writeJSONBytes sends an already encoded document unchanged.
func writeJSONBytes(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if _, err := w.Write(body); err != nil {
		slog.Error("Failed to write response", "error", err)
	}
}
