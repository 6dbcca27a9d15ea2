package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

// ErrUsage marks startup errors caused by bad flags or variables.
var ErrUsage = errors.New("invalid usage")

// Exit status codes for command binaries.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitCode maps a startup error to a process status.
func ExitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return ExitOK
	case errors.Is(err, ErrUsage):
		return ExitUsage
	default:
		return ExitFailure
	}
}

// Report writes err to w prefixed with the command name. Help requests
// print nothing since the flag set already printed usage.
func Report(w io.Writer, command string, err error) {
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return
	}
	fmt.Fprintf(w, "%s: %v\n", command, err)
}

// Exit reports err on stderr and exits with ExitCode(err).
func Exit(command string, err error) {
	Report(os.Stderr, command, err)
	os.Exit(ExitCode(err))
}
