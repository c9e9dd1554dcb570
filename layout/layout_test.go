package layout_test

import (
	"testing"

	"github.com/piperubio/registry/layout"
	"github.com/piperubio/registry/model"
	"github.com/stretchr/testify/assert"
)

func resolved(base, sm, md, lg, xl, xxl int) model.ResolvedColumns {
	return model.ResolvedColumns{base, sm, md, lg, xl, xxl}
}

func TestNormalizeColumns(t *testing.T) {
	tests := []struct {
		name    string
		columns model.ColumnConfig
		want    model.ResolvedColumns
	}{
		{
			name:    "nil config defaults to one column",
			columns: nil,
			want:    resolved(1, 1, 1, 1, 1, 1),
		},
		{
			name:    "carries forward the last declared value",
			columns: model.ColumnConfig{model.Base: 1, model.MD: 2, model.LG: 3},
			want:    resolved(1, 1, 2, 3, 3, 3),
		},
		{
			name:    "missing base starts at one",
			columns: model.ColumnConfig{model.LG: 4},
			want:    resolved(1, 1, 1, 4, 4, 4),
		},
		{
			name:    "does not force wider breakpoints to grow",
			columns: model.ColumnConfig{model.Base: 4, model.XL: 2},
			want:    resolved(4, 4, 4, 4, 2, 2),
		},
		{
			name:    "non-positive entries are ignored",
			columns: model.ColumnConfig{model.Base: 0, model.SM: -3, model.MD: 2},
			want:    resolved(1, 1, 2, 2, 2, 2),
		},
		{
			name:    "caps at twelve columns",
			columns: model.ColumnConfig{model.Base: 40},
			want:    resolved(12, 12, 12, 12, 12, 12),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, layout.NormalizeColumns(tt.columns))
		})
	}
}

func TestNormalizeColumnsDoesNotMutateInput(t *testing.T) {
	columns := model.ColumnConfig{model.MD: 2}

	layout.NormalizeColumns(columns)

	assert.Equal(t, model.ColumnConfig{model.MD: 2}, columns)
}

func TestPresetColumns(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		variant model.Variant
		want    string
	}{
		{"basic one", 1, model.VariantBasic, "grid-cols-1"},
		{"basic two", 2, model.VariantBasic, "grid-cols-1 md:grid-cols-2"},
		{"basic three", 3, model.VariantBasic, "grid-cols-1 md:grid-cols-2 lg:grid-cols-3"},
		{"bordered two waits for lg", 2, model.VariantBordered, "grid-cols-1 lg:grid-cols-2"},
		{"bordered three", 3, model.VariantBordered, "grid-cols-1 md:grid-cols-2 lg:grid-cols-3"},
		{"zero uses the default", 0, model.VariantBasic, "grid-cols-1 md:grid-cols-2 lg:grid-cols-3"},
		{"wide grid", 6, model.VariantBasic, "grid-cols-1 md:grid-cols-2 lg:grid-cols-6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols := layout.NormalizeColumns(layout.PresetColumns(tt.n, tt.variant))
			assert.Equal(t, tt.want, layout.GridClasses(cols))
		})
	}
}

func TestSelectDividerBreakpoint(t *testing.T) {
	t.Run("first multi-column breakpoint", func(t *testing.T) {
		bp, ok := layout.SelectDividerBreakpoint(model.ColumnConfig{model.Base: 1, model.LG: 2})

		assert.True(t, ok)
		assert.Equal(t, model.LG, bp)
	})

	t.Run("single column has none", func(t *testing.T) {
		_, ok := layout.SelectDividerBreakpoint(model.ColumnConfig{model.Base: 1})

		assert.False(t, ok)
	})

	t.Run("multi-column from base", func(t *testing.T) {
		bp, ok := layout.SelectDividerBreakpoint(model.ColumnConfig{model.Base: 3})

		assert.True(t, ok)
		assert.Equal(t, model.Base, bp)
	})
}

func TestDividerClasses(t *testing.T) {
	tests := []struct {
		name      string
		columns   model.ColumnConfig
		direction model.Direction
		want      string
	}{
		{"single column", model.ColumnConfig{model.Base: 1}, model.Horizontal, "divide-y"},
		{"switches at lg", model.ColumnConfig{model.Base: 1, model.LG: 2}, model.Horizontal, "divide-y lg:divide-y-0 lg:divide-x"},
		{"switches at md", model.ColumnConfig{model.Base: 1, model.MD: 2, model.LG: 3}, model.Horizontal, "divide-y md:divide-y-0 md:divide-x"},
		{"columns from base", model.ColumnConfig{model.Base: 2}, model.Horizontal, "divide-x"},
		{"vertical direction ignores columns", model.ColumnConfig{model.Base: 1, model.MD: 3}, model.Vertical, "divide-y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, layout.DividerClasses(layout.NormalizeColumns(tt.columns), tt.direction))
		})
	}
}

func TestGridClassesSkipsRepeats(t *testing.T) {
	cols := layout.NormalizeColumns(model.ColumnConfig{model.Base: 1, model.SM: 1, model.MD: 2, model.XL: 2, model.XXL: 4})

	assert.Equal(t, "grid-cols-1 md:grid-cols-2 2xl:grid-cols-4", layout.GridClasses(cols))
}
