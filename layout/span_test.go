package layout_test

import (
	"testing"

	"github.com/piperubio/registry/layout"
	"github.com/piperubio/registry/model"
	"github.com/stretchr/testify/assert"
)

func effective(spans ...int) [model.BreakpointCount]int {
	var out [model.BreakpointCount]int
	copy(out[:], spans)

	return out
}

func columnsOf(r layout.ResolvedSpan) [model.BreakpointCount]int {
	var out [model.BreakpointCount]int
	for i, e := range r.Effective {
		out[i] = e.Columns
	}

	return out
}

func TestResolveSpanClamping(t *testing.T) {
	t.Run("unclamped when the grid is wide enough", func(t *testing.T) {
		cols := layout.NormalizeColumns(model.ColumnConfig{model.Base: 1, model.MD: 2, model.LG: 3})
		got := layout.ResolveSpan(model.UniformSpan(model.Cols(3)), cols)

		assert.Equal(t, effective(1, 1, 2, 3, 3, 3), columnsOf(got))
		assert.Equal(t, "col-span-1 md:col-span-2 lg:col-span-3", got.Class())
	})

	t.Run("inherited column count clamps lg", func(t *testing.T) {
		cols := layout.NormalizeColumns(model.ColumnConfig{model.Base: 1, model.MD: 2})
		got := layout.ResolveSpan(model.UniformSpan(model.Cols(3)), cols)

		assert.Equal(t, 2, got.Effective[model.LG].Columns)
		assert.Equal(t, "col-span-1 md:col-span-2", got.Class())
	})

	t.Run("span 3 in a fixed two column grid", func(t *testing.T) {
		cols := layout.NormalizeColumns(model.ColumnConfig{model.Base: 2})
		got := layout.ResolveSpan(model.UniformSpan(model.Cols(3)), cols)

		assert.Equal(t, "col-span-2", got.Class())
	})
}

func TestResolveSpanFilled(t *testing.T) {
	cols := layout.NormalizeColumns(model.ColumnConfig{model.Base: 2, model.MD: 4, model.LG: 6})
	got := layout.ResolveSpan(model.UniformSpan(model.Filled()), cols)

	assert.Equal(t, effective(2, 2, 4, 6, 6, 6), columnsOf(got))

	for _, bp := range model.Breakpoints {
		assert.True(t, got.Effective[bp].Filled, bp.String())
	}

	assert.Equal(t, "col-span-full", got.Class())
}

func TestResolveSpanResponsive(t *testing.T) {
	cols := layout.NormalizeColumns(model.ColumnConfig{model.Base: 1, model.MD: 3, model.LG: 5})
	span := model.ResponsiveSpan(map[model.Breakpoint]model.SpanValue{
		model.Base: model.Filled(),
		model.MD:   model.Cols(2),
		model.LG:   model.Cols(3),
	})

	got := layout.ResolveSpan(span, cols)

	assert.Equal(t, layout.EffectiveSpan{Columns: 1, Filled: true}, got.Effective[model.Base])
	assert.Equal(t, layout.EffectiveSpan{Columns: 2}, got.Effective[model.MD])
	assert.Equal(t, layout.EffectiveSpan{Columns: 3}, got.Effective[model.LG])
	assert.Equal(t, layout.EffectiveSpan{Columns: 3}, got.Effective[model.XXL])
	assert.Equal(t, "col-span-full md:col-span-2 lg:col-span-3", got.Class())
}

func TestResolveSpanResponsiveWithoutBase(t *testing.T) {
	cols := layout.NormalizeColumns(model.ColumnConfig{model.Base: 4})
	span := model.ResponsiveSpan(map[model.Breakpoint]model.SpanValue{model.LG: model.Cols(3)})

	got := layout.ResolveSpan(span, cols)

	assert.Equal(t, effective(1, 1, 1, 3, 3, 3), columnsOf(got))
	assert.Equal(t, "col-span-1 lg:col-span-3", got.Class())
}

func TestResolveSpanInvalidValues(t *testing.T) {
	cols := layout.NormalizeColumns(model.ColumnConfig{model.Base: 2, model.LG: 4})

	for _, raw := range []string{"0", "-2", "NaN", "abc", "2.5", ""} {
		t.Run("value "+raw, func(t *testing.T) {
			got := layout.ResolveSpan(model.UniformSpan(model.ParseSpanValue(raw)), cols)

			assert.Equal(t, effective(1, 1, 1, 1, 1, 1), columnsOf(got))
			assert.Equal(t, "col-span-1", got.Class())
		})
	}

	t.Run("invalid responsive entry", func(t *testing.T) {
		span := model.ResponsiveSpan(map[model.Breakpoint]model.SpanValue{
			model.Base: model.Cols(2),
			model.LG:   model.Cols(0),
		})

		got := layout.ResolveSpan(span, cols)

		assert.Equal(t, 2, got.Effective[model.MD].Columns)
		assert.Equal(t, 1, got.Effective[model.LG].Columns)
	})
}

func TestResolveSpanNilIsOne(t *testing.T) {
	got := layout.ResolveSpan(nil, layout.NormalizeColumns(model.ColumnConfig{model.Base: 3}))

	assert.Equal(t, "col-span-1", got.Class())
	assert.Len(t, got.Tokens, 1)
	assert.Equal(t, model.Base, got.Tokens[0].Breakpoint)
}

func TestResolveSpanNeverExceedsColumns(t *testing.T) {
	configs := []model.ColumnConfig{
		{model.Base: 1},
		{model.Base: 1, model.MD: 2, model.LG: 3},
		{model.Base: 6, model.SM: 2, model.XL: 12},
		{model.LG: 5},
	}

	spans := []*model.SpanSpec{
		nil,
		model.UniformSpan(model.Cols(1)),
		model.UniformSpan(model.Cols(7)),
		model.UniformSpan(model.Cols(12)),
		model.UniformSpan(model.Filled()),
		model.ParseSpanSpec("base:filled,md:2,lg:9"),
		model.ParseSpanSpec("sm:4,xl:filled"),
	}

	for _, c := range configs {
		cols := layout.NormalizeColumns(c)

		for _, s := range spans {
			got := layout.ResolveSpan(s, cols)

			for _, bp := range model.Breakpoints {
				e := got.Effective[bp]
				if e.Filled {
					assert.Equal(t, cols[bp], e.Columns, "%s at %s", s.Raw(), bp)
				} else {
					assert.LessOrEqual(t, e.Columns, cols[bp], "%s at %s", s.Raw(), bp)
					assert.GreaterOrEqual(t, e.Columns, 1)
				}
			}

			assert.Equal(t, got, layout.ResolveSpan(s, cols), "resolution must be repeatable")
		}
	}
}

func TestResolveSpanTokensInBreakpointOrder(t *testing.T) {
	cols := layout.NormalizeColumns(model.ColumnConfig{model.Base: 1, model.SM: 2, model.MD: 3, model.LG: 4, model.XL: 5, model.XXL: 6})
	got := layout.ResolveSpan(model.UniformSpan(model.Cols(12)), cols)

	assert.Equal(t, "col-span-1 sm:col-span-2 md:col-span-3 lg:col-span-4 xl:col-span-5 2xl:col-span-6", got.Class())

	for i := 1; i < len(got.Tokens); i++ {
		assert.Less(t, got.Tokens[i-1].Breakpoint, got.Tokens[i].Breakpoint)
	}
}
