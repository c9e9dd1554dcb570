package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/piperubio/registry/logging"
	"github.com/piperubio/registry/registry"
	"github.com/schollz/progressbar/v3"
)

// Import copies the index, every component and its sources from a file
// registry into storage. With showProgress a bar is drawn on stderr.
func Import(ctx context.Context, src *registry.FileStore, out *SQLiteStorage, showProgress bool) (int, error) {
	logCtx := logging.PackageCtx("db")

	index, err := src.Index(ctx)
	if err != nil {
		return 0, err
	}

	if err := out.StoreIndex(ctx, index); err != nil {
		return 0, err
	}

	items, err := src.LoadComponents()
	if err != nil {
		return 0, err
	}

	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.Default(int64(len(items)), "Importing components")
	}

	imported := 0

	for _, item := range items {
		document, err := src.Component(ctx, item.Name)
		if err != nil {
			return imported, fmt.Errorf("import %s: %w", item.Name, err)
		}

		code, err := src.Code(ctx, item.Name)
		if err != nil {
			return imported, fmt.Errorf("import %s: %w", item.Name, err)
		}

		if err := out.StoreComponent(ctx, item.Name, document, code); err != nil {
			return imported, err
		}

		imported++

		if bar != nil {
			if err := bar.Add(1); err != nil {
				slog.ErrorContext(logCtx, "could not update progress bar", "error", err)
			}
		}
	}

	if bar != nil {
		if err := bar.Finish(); err != nil {
			slog.ErrorContext(logCtx, "could not finish progress bar", "error", err)
		}
	}

	slog.InfoContext(logCtx, "Imported registry", "components", imported)

	return imported, nil
}
