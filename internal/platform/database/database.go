package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Manoj-Murari/task-analyzer/internal/platform/postgres"
	"github.com/Manoj-Murari/task-analyzer/internal/platform/sqlite"
	"github.com/Manoj-Murari/task-analyzer/internal/redact"
	"github.com/Manoj-Murari/task-analyzer/internal/store"
)

// Driver identifies a supported database backend.
type Driver string

const (
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
)

// Handle is an opened, migrated database and the task store over it.
type Handle struct {
	Driver Driver
	DB     *sql.DB
	Tasks  store.TaskStore
}

// Close releases the underlying connection pool.
func (h *Handle) Close() error {
	return h.DB.Close()
}

// DetectDriver picks the backend for a database URL and returns the
// driver-specific data source name.
//
//	postgres://... | postgresql://...  -> PostgreSQL, URL unchanged
//	sqlite://<path>                     -> SQLite at <path>
//	file:<path>                         -> SQLite, URL unchanged
//	:memory:                            -> in-memory SQLite
func DetectDriver(url string) (Driver, string, error) {
	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return DriverPostgres, url, nil
	case strings.HasPrefix(url, "sqlite://"):
		path := strings.TrimPrefix(url, "sqlite://")
		if path == "" {
			return "", "", fmt.Errorf("%w: sqlite URL has no path", store.ErrUnsupportedDatabase)
		}
		return DriverSQLite, path, nil
	case strings.HasPrefix(url, "file:"), url == sqlite.MemoryPath:
		return DriverSQLite, url, nil
	default:
		return "", "", fmt.Errorf("%w: %s", store.ErrUnsupportedDatabase, redact.String(url))
	}
}

// Open connects to the database named by url, applies migrations, and
// builds the matching task store.
func Open(ctx context.Context, url string, log *slog.Logger) (*Handle, error) {
	if log == nil {
		log = slog.Default()
	}

	driver, dsn, err := DetectDriver(url)
	if err != nil {
		return nil, err
	}

	h := &Handle{Driver: driver}
	switch driver {
	case DriverPostgres:
		if h.DB, err = postgres.Open(ctx, dsn); err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, h.DB, log); err != nil {
			_ = h.DB.Close()
			return nil, err
		}
		h.Tasks = postgres.NewPostgresTaskStore(h.DB, log)
	case DriverSQLite:
		if h.DB, err = sqlite.Open(ctx, dsn); err != nil {
			return nil, err
		}
		if err := sqlite.Migrate(ctx, h.DB, log); err != nil {
			_ = h.DB.Close()
			return nil, err
		}
		h.Tasks = sqlite.NewSQLiteTaskStore(h.DB, log)
	}

	log.Info("Database connection established", slog.String("driver", string(driver)))
	return h, nil
}
