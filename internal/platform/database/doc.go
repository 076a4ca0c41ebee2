// Package database selects and opens the task store named by the configured
// database URL.
package database
