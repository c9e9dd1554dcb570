package registry

import (
	"cmp"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/renameio/v2"
	"github.com/piperubio/registry/logging"
	"github.com/piperubio/registry/model"
)

// LoadComponents decodes every component file, sorted by name.
func (s *FileStore) LoadComponents() ([]model.RegistryItem, error) {
	entries, err := os.ReadDir(s.ComponentsDir())
	if err != nil {
		return nil, fmt.Errorf("could not list components: %w", notFound(err))
	}

	items := make([]model.RegistryItem, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		raw, err := os.ReadFile(filepath.Join(s.ComponentsDir(), entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("could not read %s: %w", entry.Name(), err)
		}

		var item model.RegistryItem
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, fmt.Errorf("could not decode %s: %w", entry.Name(), err)
		}

		if item.Name == "" {
			item.Name = strings.TrimSuffix(entry.Name(), ".json")
		}

		items = append(items, item)
	}

	slices.SortFunc(items, func(a, b model.RegistryItem) int {
		return cmp.Compare(a.Name, b.Name)
	})

	return items, nil
}

// BuildIndex regenerates registry/index.json from the component files. The
// file is replaced atomically so a running server never serves half of it.
func (s *FileStore) BuildIndex(name, homepage string) (*model.Registry, error) {
	items, err := s.LoadComponents()
	if err != nil {
		return nil, err
	}

	index := &model.Registry{Name: name, Homepage: homepage, Items: items}

	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("could not encode index: %w", err)
	}

	if err := renameio.WriteFile(s.IndexPath(), append(data, '\n'), 0o644); err != nil {
		return nil, fmt.Errorf("could not write %s: %w", s.IndexPath(), err)
	}

	slog.InfoContext(logging.PackageCtx("registry"), "Wrote registry index", "path", s.IndexPath(), "items", len(items))

	return index, nil
}
