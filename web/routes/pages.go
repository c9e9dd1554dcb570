package routes

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/piperubio/registry/layout"
	"github.com/piperubio/registry/model"
	"github.com/piperubio/registry/registry"
	cs "github.com/piperubio/registry/web/components"
)

// HomeHandle renders the component list and the layout demos. A missing
// catalog still renders the demos.
func (s *ServerHandler) HomeHandle(w http.ResponseWriter, r *http.Request) {
	items, err := s.Catalog.Items()
	if err != nil {
		slog.WarnContext(r.Context(), "Could not load registry catalog", "error", err)

		items = nil
	}

	rc := cs.RenderContext{Page: cs.PageTypeHome, RegistryURL: s.RegistryURL, Items: items}
	renderPage(w, r, "home", cs.HomePage(&rc))
}

// ComponentPageHandle renders the documentation page of one registry item.
func (s *ServerHandler) ComponentPageHandle(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	item, err := s.Catalog.Item(name)
	if errors.Is(err, registry.ErrNotFound) {
		http.NotFound(w, r)

		return
	}

	if err != nil {
		slog.ErrorContext(r.Context(), "Could not load registry item", "name", name, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	doc, err := s.BuildComponentDoc(r.Context(), item)
	if err != nil {
		slog.ErrorContext(r.Context(), "Could not render component description", "name", name, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	rc := cs.RenderContext{Page: cs.PageTypeComponent, Title: item.Title, RegistryURL: s.RegistryURL}
	if rc.Title == "" {
		rc.Title = item.Name
	}

	renderPage(w, r, "component", cs.ComponentPage(&rc, doc))
}

// BuildComponentDoc renders the item's markdown description to HTML and lists
// what its sources export. Unreadable sources only leave the exports empty.
func (s *ServerHandler) BuildComponentDoc(ctx context.Context, item *model.RegistryItem) (*cs.ComponentDoc, error) {
	var buf bytes.Buffer
	if err := s.Markdown.Convert([]byte(item.Description), &buf); err != nil {
		return nil, fmt.Errorf("could not convert description of %s: %w", item.Name, err)
	}

	doc := &cs.ComponentDoc{
		Item:            *item,
		DescriptionHTML: buf.String(),
		InstallCommand:  cs.InstallCommand(s.RegistryURL, item.Name),
	}

	code, err := s.Source.Code(ctx, item.Name)
	countRead("code", err)

	if err != nil {
		slog.WarnContext(ctx, "Could not read component sources", "name", item.Name, "error", err)

		return doc, nil
	}

	doc.Exports, err = registry.CodeExports(ctx, code)
	if err != nil {
		slog.WarnContext(ctx, "Could not list component exports", "name", item.Name, "error", err)
	}

	return doc, nil
}

// PlaygroundHandle resolves the grid described by the query string.
func (s *ServerHandler) PlaygroundHandle(w http.ResponseWriter, r *http.Request) {
	pg := BuildPlayground(r.URL.Query())

	slog.DebugContext(r.Context(), "Resolved playground grid", "columns", pg.Columns.String(), "span", pg.Span.Raw())

	rc := cs.RenderContext{Page: cs.PageTypePlayground, Title: "Playground", RegistryURL: s.RegistryURL}
	renderPage(w, r, "playground", cs.PlaygroundPage(&rc, pg))
}

// BuildPlayground reads columns, span, variant and layout from the query.
// A bare column count uses the preset ladder for that count.
func BuildPlayground(query url.Values) *cs.Playground {
	variant := model.ParseVariant(query.Get("variant"))

	columns := parseColumns(query.Get("columns"), variant)

	spanText := strings.TrimSpace(query.Get("span"))
	if spanText == "" {
		spanText = "1"
	}

	span := model.ParseSpanSpec(spanText)
	resolved := layout.NormalizeColumns(columns)

	return &cs.Playground{
		Columns:   columns,
		Span:      span,
		Variant:   variant,
		Direction: model.ParseDirection(query.Get("layout")),
		Resolved:  resolved,
		SpanOut:   layout.ResolveSpan(span, resolved),
	}
}

func parseColumns(text string, variant model.Variant) model.ColumnConfig {
	text = strings.TrimSpace(text)
	if text == "" {
		return layout.PresetColumns(layout.DefaultColumns, variant)
	}

	if n, err := strconv.Atoi(text); err == nil {
		return layout.PresetColumns(n, variant)
	}

	columns := model.ParseColumnConfig(text)
	if len(columns) == 0 {
		return layout.PresetColumns(layout.DefaultColumns, variant)
	}

	return columns
}
