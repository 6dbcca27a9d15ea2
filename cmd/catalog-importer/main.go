package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/louisbranch/timetable/internal/platform/config"
	catalogimporter "github.com/louisbranch/timetable/internal/tools/importer/catalog"
)

// main loads a JSON subject catalog into the SQLite catalog store.
func main() {
	cfg, err := catalogimporter.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exit("catalog-importer", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := catalogimporter.Run(ctx, cfg, os.Stdout); err != nil {
		config.Exit("catalog-importer", err)
	}
}
