package registry_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/piperubio/registry/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestCatalogItem(t *testing.T) {
	catalog := registry.NewCatalog(newRegistryRoot(t))

	item, err := catalog.Item("description")
	require.NoError(t, err)
	assert.Equal(t, "Description", item.Title)

	_, err = catalog.Item("missing")
	assert.ErrorIs(t, err, registry.ErrNotFound)

	items, err := catalog.Items()
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestCatalogCachesUntilCleared(t *testing.T) {
	root := newRegistryRoot(t)
	catalog := registry.NewCatalog(root)

	items, err := catalog.Items()
	require.NoError(t, err)
	require.Len(t, items, 2)

	writeFile(t, root, "registry.json", `{"items":[{"name":"only"}]}`)

	items, err = catalog.Items()
	require.NoError(t, err)
	assert.Len(t, items, 2, "cached copy is still served")

	catalog.ClearCache()

	items, err = catalog.Items()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "only", items[0].Name)
}

func TestCatalogEmptyItems(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "registry.json"), []byte(`{"name":"x"}`), 0o644))

	items, err := registry.NewCatalog(root).Items()

	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NotNil(t, items)
}

func TestCatalogMissingFile(t *testing.T) {
	_, err := registry.NewCatalog(t.TempDir()).Items()

	assert.ErrorIs(t, err, registry.ErrNotFound)
}

func TestWatchClearsCache(t *testing.T) {
	defer goleak.VerifyNone(t)

	root := newRegistryRoot(t)
	catalog := registry.NewCatalog(root)

	_, err := catalog.Items()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watcher, err := registry.Watch(ctx, catalog)
	require.NoError(t, err)

	writeFile(t, root, "registry.json", `{"items":[{"name":"fresh"}]}`)

	assert.Eventually(t, func() bool {
		_, err := catalog.Item("fresh")

		return err == nil
	}, 5*time.Second, 20*time.Millisecond)

	require.NoError(t, watcher.Close())
}
