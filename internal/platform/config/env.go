// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Prefix namespaces every timetable environment variable.
const Prefix = "TIMETABLE_"

// ParseEnvWithPrefix loads configuration from variables named with prefix
// followed by the field's env tag, so callers can declare short tags.
func ParseEnvWithPrefix(target any, prefix string) error {
	prefix = strings.TrimSpace(prefix)
	if err := env.ParseWithOptions(target, env.Options{Prefix: prefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
