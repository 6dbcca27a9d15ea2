// Package mcp parses MCP command configuration and serves the schedule
// engine over stdio.
package mcp

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	platformcmd "github.com/louisbranch/timetable/internal/platform/cmd"
	"github.com/louisbranch/timetable/internal/platform/config"
	"github.com/louisbranch/timetable/internal/platform/logging"
	"github.com/louisbranch/timetable/internal/services/mcp/domain"
	"github.com/louisbranch/timetable/internal/services/mcp/service"
	"github.com/louisbranch/timetable/internal/services/timetable/domain/timeslot"
	"github.com/louisbranch/timetable/internal/services/timetable/schedule"
	"github.com/louisbranch/timetable/internal/services/timetable/storage/sqlite"
	"go.uber.org/zap"
)

// Config holds MCP command configuration. Variables are read with the
// TIMETABLE_ prefix.
type Config struct {
	DBPath           string `env:"DB_PATH"            envDefault:"data/timetable.db"`
	Locale           string `env:"LOCALE"             envDefault:"en-US"`
	GridFirstHour    int    `env:"GRID_FIRST_HOUR"    envDefault:"7"`
	GridLastHour     int    `env:"GRID_LAST_HOUR"     envDefault:"19"`
	CreditsMin       int    `env:"CREDITS_MIN"        envDefault:"12"`
	CreditsNormalMax int    `env:"CREDITS_NORMAL_MAX" envDefault:"18"`
	CreditsHighMax   int    `env:"CREDITS_HIGH_MAX"   envDefault:"22"`
	Logging          logging.Config
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "catalog database path")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale for result messages (en-US, es-CO)")
	fs.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.Logging.Development, "log-development", cfg.Logging.Development, "human-readable console logs")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if strings.TrimSpace(cfg.DBPath) == "" {
		return Config{}, fmt.Errorf("db-path is required: %w", config.ErrUsage)
	}
	return cfg, nil
}

func (c Config) scheduleConfig(logger *zap.Logger) schedule.Config {
	return schedule.Config{
		Grid: timeslot.Grid{First: c.GridFirstHour, Last: c.GridLastHour},
		Load: schedule.LoadThresholds{
			Min:       c.CreditsMin,
			NormalMax: c.CreditsNormalMax,
			HighMax:   c.CreditsHighMax,
		},
		Locale: c.Locale,
		Logger: logger,
	}
}

// Run starts the MCP protocol adapter and blocks until ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	logger, err := logging.New(platformcmd.ServiceMCP, cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	return platformcmd.RunWithTelemetryAndOptions(ctx, platformcmd.ServiceMCP, platformcmd.RunOptions{Logger: logger}, func(ctx context.Context) error {
		server, store, err := newServer(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer func() {
			if err := store.Close(); err != nil {
				logger.Warn("close catalog store", zap.Error(err))
			}
		}()

		logger.Info("serving MCP on stdio", zap.String("db_path", cfg.DBPath), zap.String("locale", cfg.Locale))
		return server.Serve(ctx)
	})
}

// newServer opens the catalog and builds an MCP server over a fresh schedule.
func newServer(ctx context.Context, cfg Config, logger *zap.Logger) (*service.Server, *sqlite.Store, error) {
	if cfg.DBPath != ":memory:" {
		if dir := filepath.Dir(cfg.DBPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("create database directory: %w", err)
			}
		}
	}
	store, err := sqlite.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open catalog store: %w", err)
	}

	sched, err := schedule.New(store, cfg.scheduleConfig(logger.Named("schedule")))
	if err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("build schedule: %w", err)
	}
	ws, err := domain.NewWorkspace(sched, cfg.Locale, logger)
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	server, err := service.New(service.Config{Workspace: ws, Catalog: store, Logger: logger})
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	return server, store, nil
}
