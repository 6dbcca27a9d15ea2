// Package service assembles the MCP server for the schedule engine and
// serves it over a transport.
package service
