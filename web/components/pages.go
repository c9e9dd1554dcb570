package components

import (
	"strconv"
	"strings"

	"github.com/piperubio/registry/layout"
	"github.com/piperubio/registry/model"
)

const siteTitle = "Piperubio Component Registry"

func pageTitle(rc *RenderContext) string {
	if rc.Title == "" {
		return siteTitle
	}

	return rc.Title + " · " + siteTitle
}

// componentMeta lays out the item's metadata as a bordered grid.
func componentMeta(doc *ComponentDoc) Props {
	item := doc.Item

	return Props{
		Title:   "Details",
		Variant: model.VariantBordered,
		Columns: model.ColumnConfig{model.Base: 1, model.MD: 2},
		Entries: []Entry{
			Item{Label: "Name", Content: Text(item.Name)},
			Item{Label: "Type", Content: Text(orDash(item.Type))},
			Item{Label: "Dependencies", Content: Text(joinOrDash(item.Dependencies))},
			Item{Label: "Registry dependencies", Content: Text(joinOrDash(item.RegistryDependencies))},
			Item{Label: "Exports", Content: Text(joinOrDash(doc.Exports))},
			Item{Label: "Files", Span: model.UniformSpan(model.Filled()), Content: fileList(item.Files)},
		},
	}
}

// playgroundProps places the span under test next to two single-column
// neighbors.
func playgroundProps(pg *Playground) Props {
	return Props{
		Title:     "Preview",
		Columns:   pg.Columns,
		Variant:   pg.Variant,
		Direction: pg.Direction,
		Entries: []Entry{
			Item{Label: "Span under test", Span: pg.Span, Content: Text(pg.Span.Raw())},
			Item{Label: "Neighbor", Content: Text("1")},
			Item{Label: "Neighbor", Content: Text("1")},
		},
	}
}

func spanLabel(e layout.EffectiveSpan) string {
	if e.Filled {
		return "filled (" + strconv.Itoa(e.Columns) + ")"
	}

	return strconv.Itoa(e.Columns)
}

func displayName(item model.RegistryItem) string {
	if item.Title != "" {
		return item.Title
	}

	return item.Name
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}

func joinOrDash(values []string) string {
	if len(values) == 0 {
		return "-"
	}

	return strings.Join(values, ", ")
}
