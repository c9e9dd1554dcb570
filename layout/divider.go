package layout

import "github.com/piperubio/registry/model"

// SelectDividerBreakpoint returns the first breakpoint where the grid has
// more than one column. ok is false for single-column grids.
func SelectDividerBreakpoint(columns model.ColumnConfig) (model.Breakpoint, bool) {
	return firstMultiColumn(NormalizeColumns(columns))
}

func firstMultiColumn(cols model.ResolvedColumns) (model.Breakpoint, bool) {
	for _, bp := range model.Breakpoints {
		if cols[bp] > 1 {
			return bp, true
		}
	}

	return model.Base, false
}

// DividerClasses picks the border rule for the bordered container: stacked
// cells get horizontal dividers, and from the first multi-column breakpoint on
// the dividers turn vertical. Vertical direction always keeps horizontal ones.
func DividerClasses(cols model.ResolvedColumns, direction model.Direction) string {
	if direction == model.Vertical {
		return "divide-y"
	}

	bp, ok := firstMultiColumn(cols)

	switch {
	case !ok:
		return "divide-y"
	case bp == model.Base:
		return "divide-x"
	default:
		return "divide-y " + bp.Prefix() + "divide-y-0 " + bp.Prefix() + "divide-x"
	}
}
