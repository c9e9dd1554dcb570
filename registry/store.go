// Package registry reads the component registry from disk.
package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/piperubio/registry/logging"
	"github.com/piperubio/registry/model"
	"golang.org/x/sync/errgroup"
)

var ErrNotFound = errors.New("not found")

// Source serves registry documents. Index and Component return the stored
// JSON verbatim.
type Source interface {
	Index(ctx context.Context) ([]byte, error)
	Component(ctx context.Context, name string) ([]byte, error)
	Code(ctx context.Context, name string) (*model.ComponentCode, error)
}

// FileStore serves the registry from a directory laid out as
//
//	<root>/registry/index.json
//	<root>/registry/components/<name>.json
//
// with component file paths relative to root.
type FileStore struct {
	Root string
}

func NewFileStore(root string) *FileStore {
	return &FileStore{Root: root}
}

func (s *FileStore) IndexPath() string {
	return filepath.Join(s.Root, "registry", "index.json")
}

func (s *FileStore) ComponentsDir() string {
	return filepath.Join(s.Root, "registry", "components")
}

func (s *FileStore) Index(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.IndexPath())
	if err != nil {
		return nil, fmt.Errorf("could not read registry index: %w", notFound(err))
	}

	if !json.Valid(data) {
		return nil, fmt.Errorf("registry index %s is not valid JSON", s.IndexPath())
	}

	return data, nil
}

func (s *FileStore) Component(_ context.Context, name string) ([]byte, error) {
	if !ValidName(name) {
		return nil, fmt.Errorf("component %q: %w", name, ErrNotFound)
	}

	data, err := os.ReadFile(filepath.Join(s.ComponentsDir(), name+".json"))
	if err != nil {
		return nil, fmt.Errorf("could not read component %s: %w", name, notFound(err))
	}

	if !json.Valid(data) {
		return nil, fmt.Errorf("component %s is not valid JSON", name)
	}

	return data, nil
}

// Code loads a component and inlines the contents of every file it lists.
func (s *FileStore) Code(ctx context.Context, name string) (*model.ComponentCode, error) {
	data, err := s.Component(ctx, name)
	if err != nil {
		return nil, err
	}

	var item model.RegistryItem
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, fmt.Errorf("could not decode component %s: %w", name, err)
	}

	files := make([]model.ComponentFile, len(item.Files))

	g, gctx := errgroup.WithContext(ctx)

	for i, ref := range item.Files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			content, err := s.readSource(ref.Path)
			if err != nil {
				return err
			}

			files[i] = model.ComponentFile{
				Name:    ref.Name,
				Path:    ref.Path,
				Type:    ref.Type,
				Target:  ref.Target,
				Content: content,
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		slog.ErrorContext(logging.PackageCtx("registry"), "Failed to read component sources", "component", name, "error", err)

		return nil, fmt.Errorf("component %s sources: %w", name, err)
	}

	return NewComponentCode(item, files), nil
}

// NewComponentCode assembles the code payload. registryDependencies is
// always a list.
func NewComponentCode(item model.RegistryItem, files []model.ComponentFile) *model.ComponentCode {
	regDeps := item.RegistryDependencies
	if regDeps == nil {
		regDeps = []string{}
	}

	if files == nil {
		files = []model.ComponentFile{}
	}

	return &model.ComponentCode{
		Name:                 item.Name,
		Files:                files,
		Dependencies:         item.Dependencies,
		RegistryDependencies: regDeps,
	}
}

func (s *FileStore) readSource(path string) (string, error) {
	full := filepath.Join(s.Root, filepath.FromSlash(path))

	rel, err := filepath.Rel(s.Root, full)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("file %s is outside the registry root: %w", path, ErrNotFound)
	}

	content, err := os.ReadFile(full)
	if err != nil {
		return "", fmt.Errorf("could not read %s: %w", path, notFound(err))
	}

	return string(content), nil
}

// ValidName accepts registry item names only, never paths.
func ValidName(name string) bool {
	if name == "" || strings.HasPrefix(name, ".") {
		return false
	}

	return !strings.ContainsAny(name, `/\`) && !strings.Contains(name, "..")
}

func notFound(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	return err
}
