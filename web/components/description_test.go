package components_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/piperubio/registry/layout"
	"github.com/piperubio/registry/model"
	"github.com/piperubio/registry/web/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))

	return buf.String()
}

func TestDescriptionBasic(t *testing.T) {
	html := render(t, components.Description(components.Props{
		Title: "User Profile",
		Entries: []components.Entry{
			components.Item{Label: "Name", Content: components.Text("John Doe")},
			components.Item{Label: "Status", Content: components.Styled("text-green-600", "Active")},
		},
	}))

	assert.Contains(t, html, `<h2 class="text-xl font-semibold mb-4">User Profile</h2>`)
	assert.Contains(t, html, `data-testid="description-basic"`)
	assert.Contains(t, html, `class="grid gap-6 text-sm grid-cols-1 md:grid-cols-2 lg:grid-cols-3"`)
	assert.NotContains(t, html, `data-slot="card"`)
	assert.Contains(t, html, `<div class="flex gap-2 col-span-1" data-span="1"><span class="text-muted-foreground shrink-0">Name:</span><span class="font-medium break-words">John Doe</span></div>`)
	assert.Contains(t, html, `<span class="text-green-600">Active</span>`)
}

func TestDescriptionWithoutTitle(t *testing.T) {
	html := render(t, components.Description(components.Props{
		Entries: []components.Entry{components.Item{Label: "Name", Content: components.Text("John")}},
	}))

	assert.NotContains(t, html, "<h2")
}

func TestDescriptionBorderedKeepsRawSpan(t *testing.T) {
	html := render(t, components.Description(components.Props{
		Variant: model.VariantBordered,
		Columns: components.Columns(2, model.VariantBordered),
		Entries: []components.Entry{
			components.Item{Label: "Bio", Span: model.UniformSpan(model.Cols(3)), Content: components.Text("Marketing")},
			components.Section{
				Label:    "Personal Information",
				Content:  components.Text("Some content"),
				Children: []components.Entry{components.Item{Label: "Name", Content: components.Text("John")}},
			},
		},
	}))

	assert.Contains(t, html, `data-slot="card"`)
	assert.Contains(t, html, `data-testid="description-bordered"`)
	assert.Contains(t, html, `divide-y lg:divide-y-0 lg:divide-x`)
	assert.Contains(t, html, `class="grid grid-cols-1 col-span-1 lg:col-span-2 border-b" data-span="3"`)
	assert.Contains(t, html, `data-testid="description-section"`)
	assert.Contains(t, html, `Personal Information</div>`)
	assert.Contains(t, html, "Some content")
	assert.Contains(t, html, "Name:")
	assert.NotContains(t, html, "Personal Information:")
}

func TestDescriptionEscapesText(t *testing.T) {
	html := render(t, components.Description(components.Props{
		Title:   "<script>",
		Entries: []components.Entry{components.Item{Label: "a&b", Content: components.Text(`"quoted"`)}},
	}))

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "a&amp;b:")
}

func TestDescriptionPropagatesContentErrors(t *testing.T) {
	failing := templ.ComponentFunc(func(_ context.Context, _ io.Writer) error {
		return errors.New("boom")
	})

	err := components.Description(components.Props{
		Entries: []components.Entry{components.Item{Label: "Broken", Content: failing}},
	}).Render(context.Background(), io.Discard)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestDescriptionTreeMatchesLayout(t *testing.T) {
	props := components.Props{
		Columns: model.ColumnConfig{model.Base: 1, model.MD: 3, model.LG: 5},
		Entries: []components.Entry{
			components.Item{Label: "Summary", Span: model.ParseSpanSpec("base:filled,md:2,lg:3"), Content: components.Text("x")},
		},
	}

	tree := layout.Render(props)
	html := render(t, components.DescriptionTree(tree))

	assert.Contains(t, html, `class="flex gap-2 col-span-full md:col-span-2 lg:col-span-3"`)
	assert.Contains(t, html, `data-span="base:filled,md:2,lg:3"`)
}

func TestDescriptionKeepsUnknownBreakpointSpan(t *testing.T) {
	html := render(t, components.Description(components.Props{
		Entries: []components.Entry{
			components.Item{Label: "Odd", Span: model.ParseSpanSpec("abc:1"), Content: components.Text("x")},
		},
	}))

	assert.Contains(t, html, `class="flex gap-2 col-span-1" data-span="abc:1"`)
}

func TestHomePage(t *testing.T) {
	html := render(t, components.HomePage(&components.RenderContext{
		Page:  components.PageTypeHome,
		Items: []model.RegistryItem{{Name: "description", Title: "Description", Description: "Key/value grid"}},
	}))

	assert.True(t, strings.HasPrefix(strings.ToLower(html), "<!doctype html>"))
	assert.Contains(t, html, `href="/components/description"`)
	assert.Contains(t, html, "Key/value grid")
	assert.Equal(t, len(components.HomeDemos()), strings.Count(html, `<h3 class="font-semibold">`))
}

func TestComponentPage(t *testing.T) {
	html := render(t, components.ComponentPage(
		&components.RenderContext{Page: components.PageTypeComponent, Title: "Description"},
		&components.ComponentDoc{
			Item: model.RegistryItem{
				Name:  "description",
				Files: []model.RegistryFileRef{{Path: "registry/ui/description.tsx"}},
			},
			DescriptionHTML: "<p>Grid</p>",
			InstallCommand:  components.InstallCommand("https://example.com/", "description"),
			Exports:         []string{"Description", "DescriptionItem"},
		}))

	assert.Contains(t, html, "<title>Description · Piperubio Component Registry</title>")
	assert.Contains(t, html, "<p>Grid</p>")
	assert.Contains(t, html, "npx shadcn@latest add https://example.com/r/description.json")
	assert.Contains(t, html, "registry/ui/description.tsx")
	assert.Contains(t, html, `href="/api/registry/description/code"`)
	assert.Contains(t, html, "Description, DescriptionItem")
}
