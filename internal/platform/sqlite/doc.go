// Package sqlite provides a store.TaskStore backed by an embedded SQLite
// database through the pure Go modernc.org/sqlite driver. It needs no
// external service and is the default store for local runs and the CLI.
package sqlite
