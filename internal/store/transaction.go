package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Manoj-Murari/task-analyzer/internal/platform/logger"
	"github.com/Manoj-Murari/task-analyzer/internal/redact"
)

// TxFn is a function that executes within a database transaction.
// The transaction is committed if the function returns nil, or rolled back if it returns an error.
type TxFn func(ctx context.Context, tx *sql.Tx) error

// RunInTransaction executes fn within a database transaction.
// If fn returns an error or panics, the transaction is rolled back; a panic
// is re-raised after the rollback. Otherwise the transaction is committed.
// Begin and commit failures are wrapped with ErrTransactionFailed.
func RunInTransaction(ctx context.Context, db *sql.DB, fn TxFn) (err error) {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.ErrorContext(ctx, "failed to begin transaction", "error", redact.Error(err))
		return fmt.Errorf("%w: begin: %w", ErrTransactionFailed, err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.ErrorContext(ctx, "failed to roll back transaction after panic",
					"error", redact.Error(rbErr),
					"panic", p)
			} else {
				log.ErrorContext(ctx, "rolled back transaction after panic", "panic", p)
			}
			panic(p)
		}
	}()

	if err = fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.ErrorContext(ctx, "failed to roll back transaction",
				"rollback_error", redact.Error(rbErr),
				"original_error", redact.Error(err))
			return fmt.Errorf("error rolling back transaction: %v (original error: %w)", rbErr, err)
		}
		log.DebugContext(ctx, "rolled back transaction due to error", "error", redact.Error(err))
		return err
	}

	if err = tx.Commit(); err != nil {
		log.ErrorContext(ctx, "failed to commit transaction", "error", redact.Error(err))
		return fmt.Errorf("%w: commit: %w", ErrTransactionFailed, err)
	}

	log.DebugContext(ctx, "transaction committed successfully")
	return nil
}
