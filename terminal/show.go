package terminal

import (
	"fmt"
	"path"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/piperubio/registry/model"
)

// ItemMarkdown describes a registry item, with its sources when code is set.
func ItemMarkdown(item model.RegistryItem, code *model.ComponentCode, installCommand string) string {
	var b strings.Builder

	title := item.Title
	if title == "" {
		title = item.Name
	}

	fmt.Fprintf(&b, "# %s\n\n", title)

	if item.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", item.Description)
	}

	fmt.Fprintf(&b, "```sh\n%s\n```\n\n", installCommand)

	if item.Type != "" {
		fmt.Fprintf(&b, "- **Type:** %s\n", item.Type)
	}

	if len(item.Dependencies) > 0 {
		fmt.Fprintf(&b, "- **Dependencies:** %s\n", strings.Join(item.Dependencies, ", "))
	}

	if len(item.RegistryDependencies) > 0 {
		fmt.Fprintf(&b, "- **Registry dependencies:** %s\n", strings.Join(item.RegistryDependencies, ", "))
	}

	if code == nil {
		if len(item.Files) > 0 {
			b.WriteString("\n## Files\n\n")

			for _, f := range item.Files {
				fmt.Fprintf(&b, "- `%s`\n", f.Path)
			}
		}

		return b.String()
	}

	for _, f := range code.Files {
		fmt.Fprintf(&b, "\n## %s\n\n```%s\n%s\n```\n", f.Path, fenceLanguage(f.Path), strings.TrimRight(f.Content, "\n"))
	}

	return b.String()
}

func fenceLanguage(p string) string {
	switch path.Ext(p) {
	case ".tsx":
		return "tsx"
	case ".ts":
		return "typescript"
	case ".css":
		return "css"
	case ".json":
		return "json"
	default:
		return ""
	}
}

// RenderMarkdown styles markdown for the terminal. An empty style picks one
// from the terminal background.
func RenderMarkdown(markdown string, width int, style string) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("could not create markdown renderer: %w", err)
	}

	out, err := renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("could not render markdown: %w", err)
	}

	return out, nil
}
