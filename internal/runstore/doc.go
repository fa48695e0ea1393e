// Package runstore indexes completed analyses in an in-memory SQLite
// database so the daemon can answer cross-scene queries: which scenes a
// cast member appears in, how often each tracked element shows up, and
// run-level stats. Nothing survives a restart.
package runstore
