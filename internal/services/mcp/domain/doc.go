// Package domain defines the MCP tool and resource handlers that expose the
// schedule engine and the subject catalog.
//
// Every handler runs against a Workspace, which owns one schedule and
// serializes calls to it. Soft failures (conflicts, unknown groups, empty
// groups) are returned as tool output with ok=false; only infrastructure
// failures and inconsistent state surface as tool errors.
package domain
