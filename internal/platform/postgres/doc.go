// Package postgres provides the PostgreSQL implementation of store.TaskStore.
// It connects through the pgx stdlib driver, ships its schema as embedded
// goose migrations, and maps PostgreSQL error codes onto the store package's
// error values.
package postgres
