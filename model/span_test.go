package model_test

import (
	"encoding/json"
	"testing"

	"github.com/piperubio/registry/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpanValue(t *testing.T) {
	tests := []struct {
		raw    string
		count  int
		filled bool
		valid  bool
	}{
		{"3", 3, false, true},
		{" 2 ", 2, false, true},
		{"filled", 0, true, true},
		{"FILLED", 0, true, true},
		{"0", 0, false, false},
		{"-1", 0, false, false},
		{"NaN", 0, false, false},
		{"1.5", 0, false, false},
		{"wide", 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			v := model.ParseSpanValue(tt.raw)

			assert.Equal(t, tt.count, v.Count)
			assert.Equal(t, tt.filled, v.Filled)
			assert.Equal(t, tt.valid, v.Valid)
			assert.Equal(t, tt.raw, v.Raw())
		})
	}
}

func TestParseSpanSpec(t *testing.T) {
	t.Run("uniform", func(t *testing.T) {
		s := model.ParseSpanSpec("2")

		assert.False(t, s.Responsive)
		assert.Equal(t, 2, s.Values[model.Base].Count)
		assert.Equal(t, "2", s.Raw())
	})

	t.Run("responsive", func(t *testing.T) {
		s := model.ParseSpanSpec("lg:3,base:filled,md:2,bogus:4")

		assert.True(t, s.Responsive)
		assert.Len(t, s.Values, 3)
		assert.True(t, s.Values[model.Base].Filled)
		assert.Equal(t, "base:filled,md:2,lg:3", s.Raw())
	})

	t.Run("no known breakpoint keeps the text", func(t *testing.T) {
		s := model.ParseSpanSpec("abc:1")

		assert.False(t, s.Responsive)
		assert.False(t, s.Values[model.Base].Valid)
		assert.Equal(t, "abc:1", s.Raw())
	})
}

func TestSpanSpecJSON(t *testing.T) {
	tests := []struct {
		name string
		json string
		raw  string
	}{
		{"number", `2`, "2"},
		{"filled string", `"filled"`, "filled"},
		{"numeric string", `"3"`, "3"},
		{"object", `{"base":"filled","md":2,"lg":3}`, "base:filled,md:2,lg:3"},
		{"zero", `0`, "0"},
		{"object without known breakpoints", `{"wide":2}`, "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s model.SpanSpec
			require.NoError(t, json.Unmarshal([]byte(tt.json), &s))

			assert.Equal(t, tt.raw, s.Raw())
		})
	}
}

func TestColumnConfig(t *testing.T) {
	t.Run("parse responsive", func(t *testing.T) {
		c := model.ParseColumnConfig("base:1, md:2,lg:x,2xl:4")

		assert.Equal(t, model.ColumnConfig{model.Base: 1, model.MD: 2, model.XXL: 4}, c)
		assert.Equal(t, "base:1,md:2,2xl:4", c.String())
	})

	t.Run("parse bare count", func(t *testing.T) {
		assert.Equal(t, model.ColumnConfig{model.Base: 3}, model.ParseColumnConfig("3"))
		assert.Empty(t, model.ParseColumnConfig(""))
	})

	t.Run("json", func(t *testing.T) {
		var c model.ColumnConfig
		require.NoError(t, json.Unmarshal([]byte(`{"base":1,"lg":2}`), &c))
		assert.Equal(t, model.ColumnConfig{model.Base: 1, model.LG: 2}, c)

		require.NoError(t, json.Unmarshal([]byte(`2`), &c))
		assert.Equal(t, model.ColumnConfig{model.Base: 2}, c)
	})

	t.Run("json drops counts that are not positive integers", func(t *testing.T) {
		tests := []struct {
			name     string
			json     string
			expected model.ColumnConfig
		}{
			{"fraction", `{"base":1,"md":2.5,"lg":3}`, model.ColumnConfig{model.Base: 1, model.LG: 3}},
			{"numeric string", `{"base":1,"md":"2"}`, model.ColumnConfig{model.Base: 1, model.MD: 2}},
			{"word", `{"base":"wide","lg":4}`, model.ColumnConfig{model.LG: 4}},
			{"negative", `{"base":-1,"md":0}`, model.ColumnConfig{}},
			{"bare fraction", `1.5`, model.ColumnConfig{}},
			{"bare string", `"3"`, model.ColumnConfig{model.Base: 3}},
			{"not an object", `[1,2]`, model.ColumnConfig{}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				var c model.ColumnConfig
				require.NoError(t, json.Unmarshal([]byte(tt.json), &c))

				assert.Equal(t, tt.expected, c)
			})
		}
	})
}

func TestBreakpoint(t *testing.T) {
	assert.Equal(t, "", model.Base.Prefix())
	assert.Equal(t, "2xl:", model.XXL.Prefix())
	assert.Equal(t, "md", model.MD.String())

	bp, ok := model.ParseBreakpoint("2XL")
	assert.True(t, ok)
	assert.Equal(t, model.XXL, bp)

	_, ok = model.ParseBreakpoint("xxl")
	assert.False(t, ok)
}

func TestParseVariantAndDirection(t *testing.T) {
	assert.Equal(t, model.VariantBordered, model.ParseVariant("Bordered"))
	assert.Equal(t, model.VariantBasic, model.ParseVariant("fancy"))
	assert.Equal(t, model.Vertical, model.ParseDirection("vertical"))
	assert.Equal(t, model.Horizontal, model.ParseDirection(""))
}
