package cmd

import (
	"context"
	"errors"
	"flag"
	"testing"
)

type testConfig struct {
	DBPath string `env:"CMD_TEST_DB_PATH" envDefault:"data/test.db"`
	Locale string `env:"CMD_TEST_LOCALE" envDefault:"en-US"`
}

func TestParseConfigReadsEnvAndFlags(t *testing.T) {
	t.Setenv("TIMETABLE_CMD_TEST_DB_PATH", "env.db")
	t.Setenv("TIMETABLE_CMD_TEST_LOCALE", "es-CO")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfgRef := testConfig{}
	if err := ParseConfig(&cfgRef); err != nil {
		t.Fatalf("load config defaults: %v", err)
	}
	fs.StringVar(&cfgRef.DBPath, "db-path", cfgRef.DBPath, "db path")
	fs.StringVar(&cfgRef.Locale, "locale", cfgRef.Locale, "locale")

	if err := ParseArgs(fs, []string{"-db-path", "flag.db"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if cfgRef.DBPath != "flag.db" {
		t.Fatalf("expected flag value for db path, got %q", cfgRef.DBPath)
	}
	if cfgRef.Locale != "es-CO" {
		t.Fatalf("expected env locale, got %q", cfgRef.Locale)
	}
}

func TestParseConfigRejectsNilTarget(t *testing.T) {
	if err := ParseConfig[testConfig](nil); err == nil {
		t.Fatal("expected nil target error")
	}
}

func TestParseArgsRejectsNilParser(t *testing.T) {
	if err := ParseArgs(nil, []string{}); err == nil {
		t.Fatal("expected parse args to reject nil parser")
	}
}

func TestRunWithTelemetryRejectsMissingInputs(t *testing.T) {
	if err := RunWithTelemetry(context.Background(), "", func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected missing service error")
	}
	if err := RunWithTelemetry(context.Background(), ServiceMCP, nil); err == nil {
		t.Fatal("expected missing run function error")
	}
}

func TestRunWithTelemetryReturnsRunError(t *testing.T) {
	t.Setenv("TIMETABLE_OTEL_ENDPOINT", "")
	want := errors.New("run failed")
	err := RunWithTelemetry(context.Background(), ServiceMCP, func(context.Context) error { return want })
	if !errors.Is(err, want) {
		t.Fatalf("run error = %v, want %v", err, want)
	}
}
