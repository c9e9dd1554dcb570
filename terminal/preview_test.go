package terminal_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/piperubio/registry/layout"
	"github.com/piperubio/registry/model"
	"github.com/piperubio/registry/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profileJSON = `{
  "title": "User Profile",
  "columns": {"base": 1, "md": 2},
  "items": [
    {"label": "Name", "value": "John"},
    {"label": "Email", "value": "john@example.com"},
    {"label": "Bio", "value": "Developer", "span": "filled"}
  ]
}`

func lineWith(t *testing.T, out, needle string) string {
	t.Helper()

	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, needle) {
			return line
		}
	}

	require.Failf(t, "line not found", "no line contains %q in:\n%s", needle, out)

	return ""
}

func TestLoadDescription(t *testing.T) {
	d, err := terminal.LoadDescription(strings.NewReader(`{
		"columns": 3,
		"variant": "bordered",
		"layout": "vertical",
		"items": [
			{"label": "Summary", "value": "x", "span": {"base": "filled", "md": 2}},
			{"label": "Personal", "children": [{"label": "Name", "value": "John"}]}
		]
	}`))

	require.NoError(t, err)
	assert.Equal(t, model.ColumnConfig{model.Base: 3}, d.Columns)
	assert.Equal(t, model.VariantBordered, d.Variant)
	assert.Equal(t, model.Vertical, d.Direction)
	require.Len(t, d.Entries, 2)

	item, ok := d.Entries[0].(layout.Item[string])
	require.True(t, ok)
	assert.Equal(t, "base:filled,md:2", item.Span.Raw())

	section, ok := d.Entries[1].(layout.Section[string])
	require.True(t, ok)
	assert.Len(t, section.Children, 1)
}

func TestLoadDescriptionRejectsBadJSON(t *testing.T) {
	_, err := terminal.LoadDescription(strings.NewReader(`{"items": [`))

	assert.Error(t, err)
}

func TestLoadDescriptionKeepsBadColumnCounts(t *testing.T) {
	d, err := terminal.LoadDescription(strings.NewReader(`{"columns":{"base":1,"md":2.5,"lg":"3"},"items":[{"label":"a","value":"b"}]}`))

	require.NoError(t, err)
	assert.Equal(t, model.ColumnConfig{model.Base: 1, model.LG: 3}, d.Columns)
}

func TestPreviewFollowsBreakpoint(t *testing.T) {
	d, err := terminal.LoadDescription(strings.NewReader(profileJSON))
	require.NoError(t, err)

	var buf bytes.Buffer
	p := terminal.NewPreviewer(&buf, 60)

	t.Run("two columns at md", func(t *testing.T) {
		out := p.Preview(d, model.MD)

		assert.Contains(t, out, "User Profile")
		assert.Contains(t, lineWith(t, out, "Name:"), "Email:")
		assert.NotContains(t, lineWith(t, out, "Bio:"), "Name:")
	})

	t.Run("one column at base", func(t *testing.T) {
		out := p.Preview(d, model.Base)

		assert.NotContains(t, lineWith(t, out, "Name:"), "Email:")
	})
}

func TestPreviewBordered(t *testing.T) {
	d := terminal.Description{
		Variant: model.VariantBordered,
		Columns: model.ColumnConfig{model.Base: 2},
		Entries: []layout.Entry[string]{
			layout.Section[string]{
				Label:    "Personal Information",
				Children: []layout.Entry[string]{layout.Item[string]{Label: "Name", Content: "John"}},
			},
			layout.Item[string]{Label: "Status", Content: "Active"},
		},
	}

	var buf bytes.Buffer
	out := terminal.NewPreviewer(&buf, 60).Preview(d, model.Base)

	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "Personal Information")
	assert.NotContains(t, out, "Personal Information:")
	assert.Contains(t, out, "Name: John")
	assert.Contains(t, out, "Status: Active")
}
