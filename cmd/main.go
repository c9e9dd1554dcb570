package main

import (
	"log/slog"
	"os"

	"github.com/piperubio/registry/cmd/registry"
	"github.com/piperubio/registry/logging"
)

func main() {
	slog.SetDefault(slog.New(logging.NewHandler(os.Stderr, slog.LevelDebug)))

	registry.Execute()
}
