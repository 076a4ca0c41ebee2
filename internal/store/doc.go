// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the application's core logic, allowing business rules to remain
// independent of specific database technologies or persistence details.
//
// Implementations live in platform/postgres and platform/sqlite; both share
// the DBTX abstraction, the transaction helper and the error types defined here.
package store
