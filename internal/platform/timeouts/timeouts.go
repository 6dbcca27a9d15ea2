// Package timeouts defines shared timeout constants used across commands.
package timeouts

import "time"

// CatalogQuery caps the catalog reads issued by a single MCP tool call.
const CatalogQuery = 2 * time.Second

// Shutdown limits how long telemetry may flush pending spans on exit.
const Shutdown = 5 * time.Second
