package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/piperubio/registry/web/routes"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options configure the HTTP server.
type Options struct {
	Port      int
	Dev       bool
	AssetsDir string
	// APIRequestsPerMinute is the per-IP limit on /api. Zero disables it.
	APIRequestsPerMinute int
}

func disableCacheInDevMode(dev bool, next http.Handler) http.Handler {
	if !dev {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

func apiRateLimit(requestsPerMinute int) func(http.Handler) http.Handler {
	return httprate.Limit(
		requestsPerMinute,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", "60")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"Too many requests"}`))
		}),
	)
}

func BuildServer(handler *routes.ServerHandler, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	assetsDir := opts.AssetsDir
	if assetsDir == "" {
		assetsDir = "assets"
	}

	r.Handle("/assets/*",
		disableCacheInDevMode(opts.Dev,
			http.StripPrefix("/assets",
				http.FileServer(http.Dir(assetsDir)))))

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/registry", func(api chi.Router) {
		if opts.APIRequestsPerMinute > 0 {
			api.Use(apiRateLimit(opts.APIRequestsPerMinute))
		}

		api.Get("/", handler.RegistryHandle)
		api.Get("/{name}", handler.ComponentHandle)
		api.Get("/{name}/code", handler.CodeHandle)
	})

	r.Get("/", handler.HomeHandle)
	r.Get("/components/{name}", handler.ComponentPageHandle)
	r.Get("/playground", handler.PlaygroundHandle)

	return r
}

// StartServer serves until ctx is cancelled, then shuts down gracefully.
func StartServer(ctx context.Context, handler *routes.ServerHandler, opts Options) error {
	server := &http.Server{
		Addr:              ":" + strconv.Itoa(opts.Port),
		Handler:           BuildServer(handler, opts),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		slog.InfoContext(ctx, "Running interface", "port", opts.Port, "dev", opts.Dev)

		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("could not run server: %w", err)
	case <-ctx.Done():
		slog.InfoContext(ctx, "Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not shut down server: %w", err)
		}

		return nil
	}
}
