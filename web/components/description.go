package components

import (
	"github.com/a-h/templ"
	"github.com/piperubio/registry/layout"
	"github.com/piperubio/registry/model"
)

//go:generate go tool templ generate

// Item and Section are the web flavors of the layout entries.
type (
	Item    = layout.Item[templ.Component]
	Section = layout.Section[templ.Component]
	Entry   = layout.Entry[templ.Component]
)

// Props declares a description grid for the web.
type Props = layout.Description[templ.Component]

// Columns is a convenience for pages that use the classic fixed ladders.
func Columns(n int, variant model.Variant) model.ColumnConfig {
	return layout.PresetColumns(n, variant)
}
