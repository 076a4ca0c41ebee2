package store

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/pressly/goose/v3"
)

// Migrate applies every pending migration in fsys to db.
//
// A goose Provider is used rather than the package-level goose functions so
// that several databases can be migrated concurrently, as the tests do.
func Migrate(ctx context.Context, db *sql.DB, dialect goose.Dialect, fsys fs.FS, log *slog.Logger) error {
	if log == nil {
		log = slog.Default()
	}

	provider, err := goose.NewProvider(dialect, db, fsys,
		goose.WithLogger(&gooseLogger{logger: log}),
	)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	for _, r := range results {
		log.InfoContext(ctx, "applied migration",
			slog.Int64("version", r.Source.Version),
			slog.String("file", r.Source.Path),
			slog.Duration("duration", r.Duration))
	}
	return nil
}

// gooseLogger adapts slog to goose's Logger interface.
type gooseLogger struct {
	logger *slog.Logger
}

func (l *gooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(strings.TrimSpace(fmt.Sprintf(format, v...)), slog.String("source", "goose"))
}

// Fatalf logs at error level instead of exiting; goose also returns the error.
func (l *gooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)), slog.String("source", "goose"))
}
