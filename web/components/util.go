package components

import (
	"fmt"
	"net/url"
	"strings"
)

// getLinkForComponent returns the docs page of a registry item.
func getLinkForComponent(name string) string {
	return "/components/" + url.PathEscape(name)
}

// getAPILink returns the JSON endpoint of a registry item.
func getAPILink(name string, code bool) string {
	link := "/api/registry/" + url.PathEscape(name)
	if code {
		link += "/code"
	}

	return link
}

// InstallCommand is the shadcn CLI invocation for a registry item.
func InstallCommand(registryURL, name string) string {
	return fmt.Sprintf("npx shadcn@latest add %s/r/%s.json", strings.TrimRight(registryURL, "/"), name)
}

// getNavClass highlights the current page in the header.
func getNavClass(current, target PageType) string {
	if current == target {
		return "font-semibold text-foreground"
	}

	return "text-muted-foreground hover:text-foreground"
}
