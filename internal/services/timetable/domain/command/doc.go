// Package command represents schedule mutations as plain data and
// interprets them against the assignment store.
//
// A Command names only its kind, subject code and group name. It never
// caches sessions: every execution and every undo re-resolves the group
// through the catalog Reader, so the catalog must stay stable for as long
// as a command sits in History.
//
// User-facing outcomes travel in a Result, which is either a Success or a
// Failure with an explicit code. A Go error is returned only for catalog
// I/O failures and for undo attempts that find the store inconsistent
// with the command being reversed.
package command
