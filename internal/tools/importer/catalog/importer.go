// Package catalogimporter loads a JSON subject catalog into the SQLite
// catalog store.
package catalogimporter

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	platformcmd "github.com/louisbranch/timetable/internal/platform/cmd"
	"github.com/louisbranch/timetable/internal/platform/config"
	"github.com/louisbranch/timetable/internal/services/timetable/domain/catalog"
	"github.com/louisbranch/timetable/internal/services/timetable/storage/memory"
	"github.com/louisbranch/timetable/internal/services/timetable/storage/sqlite"
)

// Config holds configuration for the catalog importer.
type Config struct {
	File   string
	DBPath string `env:"DB_PATH" envDefault:"data/timetable.db"`
	DryRun bool
}

// ParseConfig parses environment and CLI flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.File, "file", "", "catalog JSON file")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "catalog database path")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "validate without writing to the database")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}

	if strings.TrimSpace(cfg.File) == "" {
		return Config{}, fmt.Errorf("file is required: %w", config.ErrUsage)
	}
	if !cfg.DryRun && strings.TrimSpace(cfg.DBPath) == "" {
		return Config{}, fmt.Errorf("db-path is required: %w", config.ErrUsage)
	}
	return cfg, nil
}

// catalogWriter is the write side of a catalog store.
type catalogWriter interface {
	PutSubject(ctx context.Context, subject catalog.Subject) error
	PutGroup(ctx context.Context, group catalog.Group) error
}

// Run executes the importer using the provided Config.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if out == nil {
		out = io.Discard
	}
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceCatalogImporter, func(ctx context.Context) error {
		return run(ctx, cfg, out)
	})
}

func run(ctx context.Context, cfg Config, out io.Writer) error {
	payload, err := readPayload(cfg.File)
	if err != nil {
		return err
	}
	validated, err := payload.entries()
	if err != nil {
		return fmt.Errorf("validate %s: %w", cfg.File, err)
	}

	if cfg.DryRun {
		// A scratch catalog catches write-side rejections without touching disk.
		if err := upsert(ctx, memory.NewCatalog(), validated); err != nil {
			return fmt.Errorf("validate %s: %w", cfg.File, err)
		}
		_, err = fmt.Fprintf(out, "validated %d subject(s), %d group(s)\n", len(validated.Subjects), len(validated.Groups))
		return err
	}

	if dir := filepath.Dir(cfg.DBPath); dir != "." && cfg.DBPath != ":memory:" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create database directory: %w", err)
		}
	}
	store, err := sqlite.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open catalog store: %w", err)
	}
	defer store.Close()

	if err := upsert(ctx, store, validated); err != nil {
		return fmt.Errorf("import %s: %w", cfg.File, err)
	}
	_, err = fmt.Fprintf(out, "imported %d subject(s), %d group(s) into %s\n", len(validated.Subjects), len(validated.Groups), cfg.DBPath)
	return err
}

func readPayload(path string) (catalogPayload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return catalogPayload{}, err
	}
	var payload catalogPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return catalogPayload{}, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return payload, nil
}

// upsert writes subjects before groups so every group finds its subject.
func upsert(ctx context.Context, store catalogWriter, validated entries) error {
	if store == nil {
		return fmt.Errorf("catalog store is required")
	}
	for _, subject := range validated.Subjects {
		if err := store.PutSubject(ctx, subject); err != nil {
			return fmt.Errorf("put subject %s: %w", subject.Code, err)
		}
	}
	for _, group := range validated.Groups {
		if err := store.PutGroup(ctx, group); err != nil {
			return fmt.Errorf("put group %s: %w", group.Key(), err)
		}
	}
	return nil
}
