package registry

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/piperubio/registry/logging"
	"github.com/piperubio/registry/model"
)

// Catalog reads the root registry.json once and keeps it until ClearCache.
type Catalog struct {
	path string

	mu     sync.RWMutex
	cached *model.Registry
}

func NewCatalog(root string) *Catalog {
	return &Catalog{path: filepath.Join(root, "registry.json")}
}

func (c *Catalog) Path() string {
	return c.path
}

func (c *Catalog) load() (*model.Registry, error) {
	c.mu.RLock()
	cached := c.cached
	c.mu.RUnlock()

	if cached != nil {
		return cached, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cached != nil {
		return c.cached, nil
	}

	raw, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", c.path, notFound(err))
	}

	var parsed model.Registry
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", c.path, err)
	}

	slog.DebugContext(logging.PackageCtx("registry"), "Loaded registry catalog", "path", c.path, "items", len(parsed.Items))

	c.cached = &parsed

	return c.cached, nil
}

// Registry returns the whole parsed registry.
func (c *Catalog) Registry() (*model.Registry, error) {
	return c.load()
}

func (c *Catalog) Items() ([]model.RegistryItem, error) {
	reg, err := c.load()
	if err != nil {
		return nil, err
	}

	if reg.Items == nil {
		return []model.RegistryItem{}, nil
	}

	return reg.Items, nil
}

func (c *Catalog) Item(name string) (*model.RegistryItem, error) {
	items, err := c.Items()
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].Name == name {
			item := items[i]

			return &item, nil
		}
	}

	return nil, fmt.Errorf("registry item not found: %s: %w", name, ErrNotFound)
}

func (c *Catalog) ClearCache() {
	c.mu.Lock()
	c.cached = nil
	c.mu.Unlock()
}
