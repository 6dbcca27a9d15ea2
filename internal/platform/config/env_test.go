package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	CreditsMin int `env:"TEST_CREDITS_MIN" envDefault:"12"`
}

func TestParseEnvWithPrefixDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnvWithPrefix(&cfg, Prefix); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.CreditsMin != 12 {
		t.Fatalf("expected default credits 12, got %d", cfg.CreditsMin)
	}
}

func TestParseEnvWithPrefixError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("TIMETABLE_TEST_CREDITS_MIN", "twelve")

	err := ParseEnvWithPrefix(&cfg, Prefix)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

type prefixedTestConfig struct {
	FirstHour int    `env:"GRID_FIRST_HOUR" envDefault:"7"`
	Locale    string `env:"LOCALE" envDefault:"en-US"`
}

func TestParseEnvWithPrefix(t *testing.T) {
	t.Setenv("TIMETABLE_GRID_FIRST_HOUR", "8")
	t.Setenv("GRID_FIRST_HOUR", "99")

	var cfg prefixedTestConfig
	if err := ParseEnvWithPrefix(&cfg, Prefix); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.FirstHour != 8 {
		t.Fatalf("first hour = %d, want 8", cfg.FirstHour)
	}
	if cfg.Locale != "en-US" {
		t.Fatalf("locale = %q, want en-US default", cfg.Locale)
	}
}
