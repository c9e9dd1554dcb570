package components

import (
	"github.com/piperubio/registry/layout"
	"github.com/piperubio/registry/model"
)

type PageType int

const (
	PageTypeHome PageType = iota
	PageTypeComponent
	PageTypePlayground
)

// RenderContext carries what a page needs besides its own body.
type RenderContext struct {
	Page        PageType
	Title       string
	RegistryURL string
	Items       []model.RegistryItem
}

// ComponentDoc is the component documentation page.
type ComponentDoc struct {
	Item            model.RegistryItem
	DescriptionHTML string
	InstallCommand  string
	// Exports are the names exported by the component's script files.
	Exports []string
}

// Playground holds the parsed query of the playground page and the grid
// resolved from it.
type Playground struct {
	Columns   model.ColumnConfig
	Span      *model.SpanSpec
	Variant   model.Variant
	Direction model.Direction
	Resolved  model.ResolvedColumns
	SpanOut   layout.ResolvedSpan
}
