// Package terminal renders registry items and description grids for the CLI.
package terminal

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/piperubio/registry/layout"
	"github.com/piperubio/registry/model"
)

// Description is the content type of grids previewed in the terminal.
type Description = layout.Description[string]

type entryFile struct {
	Label    string          `json:"label"`
	Value    string          `json:"value"`
	Span     *model.SpanSpec `json:"span,omitempty"`
	Class    string          `json:"className,omitempty"`
	Section  bool            `json:"section,omitempty"`
	Children []entryFile     `json:"children,omitempty"`
}

type descriptionFile struct {
	Title   string             `json:"title"`
	Columns model.ColumnConfig `json:"columns"`
	Variant string             `json:"variant"`
	Layout  string             `json:"layout"`
	Class   string             `json:"className"`
	Items   []entryFile        `json:"items"`
}

// LoadDescription reads a grid definition such as
//
//	{"columns": {"base": 1, "md": 2}, "variant": "bordered",
//	 "items": [{"label": "Name", "value": "John", "span": 2}]}
//
// Entries with children or "section": true become sections.
func LoadDescription(r io.Reader) (Description, error) {
	var file descriptionFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return Description{}, fmt.Errorf("could not decode description: %w", err)
	}

	return Description{
		Title:     file.Title,
		Columns:   file.Columns,
		Variant:   model.ParseVariant(file.Variant),
		Direction: model.ParseDirection(file.Layout),
		Class:     file.Class,
		Entries:   toEntries(file.Items),
	}, nil
}

func toEntries(files []entryFile) []layout.Entry[string] {
	entries := make([]layout.Entry[string], 0, len(files))

	for _, f := range files {
		if f.Section || len(f.Children) > 0 {
			entries = append(entries, layout.Section[string]{
				Label:    f.Label,
				Content:  f.Value,
				Children: toEntries(f.Children),
				Span:     f.Span,
				Class:    f.Class,
			})

			continue
		}

		entries = append(entries, layout.Item[string]{
			Label:   f.Label,
			Content: f.Value,
			Span:    f.Span,
			Class:   f.Class,
		})
	}

	return entries
}

// Previewer draws a resolved grid as it would look at one breakpoint.
type Previewer struct {
	Width    int
	renderer *lipgloss.Renderer
	label    lipgloss.Style
	title    lipgloss.Style
}

// NewPreviewer styles output for w. Width is the total width of the grid in
// terminal cells.
func NewPreviewer(w io.Writer, width int) *Previewer {
	r := lipgloss.NewRenderer(w)

	return &Previewer{
		Width:    max(width, 20),
		renderer: r,
		label:    r.NewStyle().Foreground(lipgloss.Color("240")),
		title:    r.NewStyle().Bold(true),
	}
}

// Preview renders d at breakpoint bp.
func (p *Previewer) Preview(d Description, bp model.Breakpoint) string {
	tree := layout.Render(d)

	var parts []string
	if tree.Title != "" {
		parts = append(parts, p.title.Render(tree.Title))
	}

	parts = append(parts, p.grid(tree.Context, tree.Cells, bp, p.Width))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// grid places cells left to right, starting a new row when a cell does not
// fit in what remains of the current one.
func (p *Previewer) grid(ctx layout.Context, cells []layout.Cell[string], bp model.Breakpoint, width int) string {
	columns := max(ctx.Columns[bp], 1)
	colWidth := max(width/columns, 1)

	var (
		rows []string
		row  []string
		used int
	)

	flush := func() {
		if len(row) > 0 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
		}

		row, used = nil, 0
	}

	for _, cell := range cells {
		span := min(max(cell.Span.Effective[bp].Columns, 1), columns)
		if used+span > columns {
			flush()
		}

		row = append(row, p.cell(ctx, cell, bp, span*colWidth))
		used += span
	}

	flush()

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (p *Previewer) cell(ctx layout.Context, cell layout.Cell[string], bp model.Breakpoint, width int) string {
	style := p.renderer.NewStyle()

	// Width covers padding but not the border.
	if ctx.Bordered() {
		style = style.Border(lipgloss.NormalBorder())
		width -= 2
	} else {
		style = style.PaddingRight(1)
	}

	width = max(width, 2)
	style = style.Width(width)
	inner := width - style.GetHorizontalPadding()

	label := p.label.Render(cell.Caption())

	var body string

	switch {
	case cell.Kind == layout.KindSection:
		parts := []string{label}
		if cell.Content != "" {
			parts = append(parts, cell.Content)
		}

		if len(cell.Children) > 0 {
			parts = append(parts, p.grid(ctx, cell.Children, bp, inner))
		}

		body = strings.Join(parts, "\n")
	case cell.Stacked:
		body = label + "\n" + cell.Content
	default:
		body = label + " " + cell.Content
	}

	return style.Render(body)
}
