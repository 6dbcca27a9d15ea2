package config_test

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/louisbranch/timetable/internal/platform/config"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: config.ExitOK},
		{name: "help", err: flag.ErrHelp, want: config.ExitOK},
		{name: "usage", err: fmt.Errorf("db-path is required: %w", config.ErrUsage), want: config.ExitUsage},
		{name: "runtime", err: errors.New("open catalog store: disk full"), want: config.ExitFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := config.ExitCode(tt.err); got != tt.want {
				t.Fatalf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestReport(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	config.Report(&buf, "mcp", flag.ErrHelp)
	if buf.Len() != 0 {
		t.Fatalf("help must not be reported, got %q", buf.String())
	}
	config.Report(&buf, "mcp", errors.New("boom"))
	if got := buf.String(); got != "mcp: boom\n" {
		t.Fatalf("report = %q", got)
	}
}

// os.Exit cannot be intercepted in-process, so Exit runs in a subprocess.
func TestExit_UsageStatus(t *testing.T) {
	if os.Getenv("TEST_EXIT_SUBPROCESS") == "1" {
		config.Exit("catalog-importer", fmt.Errorf("file is required: %w", config.ErrUsage))
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestExit_UsageStatus$")
	cmd.Env = append(os.Environ(), "TEST_EXIT_SUBPROCESS=1")
	out, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected *exec.ExitError, got %T: %v", err, err)
	}
	if exitErr.ExitCode() != config.ExitUsage {
		t.Fatalf("exit code = %d, want %d", exitErr.ExitCode(), config.ExitUsage)
	}
	if !strings.Contains(string(out), "catalog-importer: file is required") {
		t.Fatalf("stderr = %q", out)
	}
}
