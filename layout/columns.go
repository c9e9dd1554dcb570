package layout

import (
	"strconv"
	"strings"

	"github.com/piperubio/registry/model"
)

// DefaultColumns is the column count used when a description declares none.
const DefaultColumns = 3

// NormalizeColumns gives every breakpoint a concrete column count. Base
// defaults to 1, missing or non-positive entries inherit the previous
// breakpoint, and counts above model.MaxColumns are capped.
func NormalizeColumns(columns model.ColumnConfig) model.ResolvedColumns {
	var resolved model.ResolvedColumns

	current := 1

	for _, bp := range model.Breakpoints {
		if n, ok := columns[bp]; ok && n > 0 {
			current = min(n, model.MaxColumns)
		}

		resolved[bp] = current
	}

	return resolved
}

// PresetColumns maps a bare column count onto the responsive ladder the
// description grid uses by default: one column on small screens, growing at
// md and lg. The bordered variant waits until lg before going to two columns.
func PresetColumns(n int, variant model.Variant) model.ColumnConfig {
	if n <= 0 {
		n = DefaultColumns
	}

	n = min(n, model.MaxColumns)

	switch {
	case n == 1:
		return model.ColumnConfig{model.Base: 1}
	case n == 2 && variant == model.VariantBordered:
		return model.ColumnConfig{model.Base: 1, model.LG: 2}
	case n == 2:
		return model.ColumnConfig{model.Base: 1, model.MD: 2}
	default:
		return model.ColumnConfig{model.Base: 1, model.MD: 2, model.LG: n}
	}
}

// GridClasses emits the grid template classes, mobile first, repeating a
// breakpoint only when its count changes.
func GridClasses(cols model.ResolvedColumns) string {
	classes := make([]string, 0, model.BreakpointCount)

	for _, bp := range model.Breakpoints {
		if bp != model.Base && cols[bp] == cols[bp-1] {
			continue
		}

		classes = append(classes, bp.Prefix()+"grid-cols-"+strconv.Itoa(cols[bp]))
	}

	return strings.Join(classes, " ")
}
