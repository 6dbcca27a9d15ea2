// Package sqlite provides the SQLite-backed catalog.
//
// Subjects, groups and their ordered sessions live in three tables created
// by the embedded migrations. The store implements catalog.Reader for the
// schedule engine plus the write and browse paths used by the catalog
// importer and presentation adapters. Every query runs inside an
// OpenTelemetry span; with no tracer provider installed the spans are no-ops.
package sqlite
