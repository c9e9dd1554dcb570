package layout

import (
	"strings"

	"github.com/piperubio/registry/model"
)

// Entry is a child of a description grid: an Item or a Section.
type Entry[C any] interface {
	isEntry()
}

// Item is a labeled value. A nil Span means one column.
type Item[C any] struct {
	Label   string
	Content C
	Span    *model.SpanSpec
	Class   string
}

// Section groups content under a header. It always spans the full row; Span
// is only echoed back for inspection.
type Section[C any] struct {
	Label    string
	Content  C
	Children []Entry[C]
	Span     *model.SpanSpec
	Class    string
}

func (Item[C]) isEntry()    {}
func (Section[C]) isEntry() {}

type Description[C any] struct {
	Title     string
	Columns   model.ColumnConfig
	Variant   model.Variant
	Direction model.Direction
	Class     string
	Entries   []Entry[C]
}

// Context is shared by every cell of one render pass. It is built once and
// handed down by value.
type Context struct {
	Columns   model.ResolvedColumns
	Variant   model.Variant
	Direction model.Direction
	Total     int
}

// NewContext normalizes the declared columns. An empty declaration uses the
// default preset for the variant.
func NewContext(columns model.ColumnConfig, variant model.Variant, direction model.Direction, total int) Context {
	if variant != model.VariantBordered {
		variant = model.VariantBasic
	}

	if direction != model.Vertical {
		direction = model.Horizontal
	}

	if len(columns) == 0 {
		columns = PresetColumns(DefaultColumns, variant)
	}

	return Context{
		Columns:   NormalizeColumns(columns),
		Variant:   variant,
		Direction: direction,
		Total:     total,
	}
}

func (c Context) Bordered() bool {
	return c.Variant == model.VariantBordered
}

type CellKind int

const (
	KindItem CellKind = iota
	KindSection
)

type Cell[C any] struct {
	Kind    CellKind
	Index   int
	Last    bool
	Label   string
	Content C
	Span    ResolvedSpan
	// RawSpan is the caller's unclamped request, rendered as data-span.
	RawSpan string
	// Stacked cells put the label above the content.
	Stacked      bool
	Class        string
	LabelClass   string
	ContentClass string
	Children     []Cell[C]
}

// Caption is the label as displayed. Item labels end with a colon.
func (c Cell[C]) Caption() string {
	if c.Kind == KindItem {
		return c.Label + ":"
	}

	return c.Label
}

// Tree is the resolved description, ready for a renderer.
type Tree[C any] struct {
	Title          string
	Context        Context
	TestID         string
	CardClass      string
	ContainerClass string
	Cells          []Cell[C]
}

const (
	cardClass          = "rounded-lg border bg-card text-card-foreground shadow-sm p-0 overflow-hidden"
	mutedLabelClass    = "p-4 bg-muted/30 text-sm font-medium text-muted-foreground"
	sectionLabelClass  = mutedLabelClass + " border-b"
	sectionContentCls  = "p-4 text-sm space-y-1"
	borderedContentCls = "p-4 text-sm break-words"
)

// Render resolves columns and spans for every entry, in declaration order.
// The input is not modified.
func Render[C any](d Description[C]) Tree[C] {
	ctx := NewContext(d.Columns, d.Variant, d.Direction, len(d.Entries))

	tree := Tree[C]{
		Title:   d.Title,
		Context: ctx,
		Cells:   buildCells(ctx, d.Entries),
	}

	if ctx.Bordered() {
		tree.TestID = "description-bordered"
		tree.CardClass = cardClass
		tree.ContainerClass = joinClasses("grid", GridClasses(ctx.Columns), DividerClasses(ctx.Columns, ctx.Direction), d.Class)
	} else {
		tree.TestID = "description-basic"
		tree.ContainerClass = joinClasses("grid gap-6 text-sm", GridClasses(ctx.Columns), d.Class)
	}

	return tree
}

func buildCells[C any](ctx Context, entries []Entry[C]) []Cell[C] {
	cells := make([]Cell[C], 0, len(entries))

	for i, e := range entries {
		last := i == len(entries)-1

		switch entry := e.(type) {
		case Item[C]:
			cells = append(cells, itemCell(ctx, i, last, entry))
		case *Item[C]:
			if entry != nil {
				cells = append(cells, itemCell(ctx, i, last, *entry))
			}
		case Section[C]:
			cells = append(cells, sectionCell(ctx, i, last, entry))
		case *Section[C]:
			if entry != nil {
				cells = append(cells, sectionCell(ctx, i, last, *entry))
			}
		}
	}

	return cells
}

func itemCell[C any](ctx Context, index int, last bool, item Item[C]) Cell[C] {
	span := ResolveSpan(item.Span, ctx.Columns)

	cell := Cell[C]{
		Kind:    KindItem,
		Index:   index,
		Last:    last,
		Label:   item.Label,
		Content: item.Content,
		Span:    span,
		RawSpan: item.Span.Raw(),
	}

	if !ctx.Bordered() {
		cell.Stacked = ctx.Direction == model.Vertical
		if cell.Stacked {
			cell.Class = joinClasses("flex flex-col gap-1", span.Class(), item.Class)
		} else {
			cell.Class = joinClasses("flex gap-2", span.Class(), item.Class)
		}

		cell.LabelClass = "text-muted-foreground shrink-0"
		cell.ContentClass = "font-medium break-words"

		return cell
	}

	cell.Stacked = ctx.Direction == model.Vertical || spansMultiple(item.Span)

	grid := "grid grid-cols-2"
	cell.LabelClass = mutedLabelClass + " border-r shrink-0"

	if cell.Stacked {
		grid = "grid grid-cols-1"
		cell.LabelClass = mutedLabelClass + " border-b"
	}

	cell.Class = joinClasses(grid, span.Class(), borderUnlessLast(last), item.Class)
	cell.ContentClass = borderedContentCls

	return cell
}

func sectionCell[C any](ctx Context, index int, last bool, section Section[C]) Cell[C] {
	cell := Cell[C]{
		Kind:         KindSection,
		Index:        index,
		Last:         last,
		Label:        section.Label,
		Content:      section.Content,
		Span:         fullRow(ctx.Columns),
		RawSpan:      section.Span.Raw(),
		Stacked:      true,
		LabelClass:   sectionLabelClass,
		ContentClass: sectionContentCls,
		Children:     buildCells(ctx, section.Children),
	}

	if ctx.Bordered() {
		cell.Class = joinClasses("grid grid-cols-1", cell.Span.Class(), borderUnlessLast(last), section.Class)
	} else {
		cell.Class = joinClasses("grid", cell.Span.Class(), section.Class)
	}

	return cell
}

func fullRow(cols model.ResolvedColumns) ResolvedSpan {
	return ResolveSpan(model.UniformSpan(model.Filled()), cols)
}

// spansMultiple reports whether the request asks for more than one column at
// any declared breakpoint.
func spansMultiple(spec *model.SpanSpec) bool {
	if spec == nil {
		return false
	}

	for _, v := range spec.Values {
		if v.Filled || (v.Valid && v.Count > 1) {
			return true
		}
	}

	return false
}

func borderUnlessLast(last bool) string {
	if last {
		return ""
	}

	return "border-b"
}

func joinClasses(parts ...string) string {
	out := make([]string, 0, len(parts))

	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return strings.Join(out, " ")
}
