package registry

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/piperubio/registry/db"
	rs "github.com/piperubio/registry/registry"
	"github.com/piperubio/registry/web"
	"github.com/piperubio/registry/web/routes"
	"github.com/spf13/cobra"
)

var (
	storagePath string
	port        int
	dev         bool
	rateLimit   int
	assetsDir   string
)

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the registry API and documentation pages",
	Long: `Serve the registry JSON API, the component pages and the layout playground.
Documents are read from the registry folder, or from a sqlite mirror made by
the import command when --storage is given.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		var source rs.Source = rs.NewFileStore(rootDir)

		if storagePath != "" {
			storage, err := db.ConnectDB(storagePath)
			if err != nil {
				return fmt.Errorf("could not open %s as sqlite file: %w", storagePath, err)
			}

			defer storage.Close()

			source = storage
		}

		catalog := rs.NewCatalog(rootDir)
		startWatcher(ctx, catalog)

		slog.InfoContext(ctx, "Serving registry", "root", rootDir, "storage", storagePath, "registryURL", registryURL)

		handler := routes.NewServerHandler(source, catalog, registryURL)

		return web.StartServer(ctx, handler, web.Options{
			Port:                 port,
			Dev:                  dev,
			AssetsDir:            assetsDir,
			APIRequestsPerMinute: rateLimit,
		})
	},
}

// startWatcher keeps the catalog fresh while serving. Failing to watch only
// costs freshness, so it is logged rather than returned.
func startWatcher(ctx context.Context, catalog *rs.Catalog) {
	watcher, err := rs.Watch(ctx, catalog)
	if err != nil {
		slog.WarnContext(ctx, "Could not watch registry catalog", "path", catalog.Path(), "error", err)

		return
	}

	go func() {
		<-ctx.Done()

		if err := watcher.Close(); err != nil {
			slog.Error("Could not close catalog watcher", "error", err)
		}
	}()
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVarP(&port, "port", "p", 8080,
		"Port on which server should be watching")

	serveCmd.Flags().StringVarP(
		&storagePath,
		"storage",
		"s",
		"",
		"Serve documents from this sqlite mirror instead of the registry folder")

	serveCmd.Flags().BoolVar(&dev,
		"dev",
		false,
		"Enable developer mode")

	serveCmd.Flags().IntVar(&rateLimit,
		"rate-limit",
		120,
		"Requests per minute allowed per IP on /api, 0 to disable")

	serveCmd.Flags().StringVar(&assetsDir,
		"assets",
		"assets",
		"Directory served under /assets")
}
