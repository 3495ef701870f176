package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-story-keeper/internal/logger"
	"github.com/MKhiriev/go-story-keeper/migrations"
)

const (
	txMaxAttempts = 3
	txRetryDelay  = 50 * time.Millisecond
)

// DB wraps the shared *sql.DB together with the error classifier used to
// decide whether a failed transaction is retried. When open is set the
// connection is established on the first transaction.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger

	open    func(ctx context.Context) (*sql.DB, error)
	once    sync.Once
	openErr error
}

// connect opens the connection on first use. A failed open is not retried.
func (db *DB) connect(ctx context.Context) error {
	db.once.Do(func() {
		if db.DB == nil && db.open != nil {
			db.DB, db.openErr = db.open(context.WithoutCancel(ctx))
		}
	})

	if db.openErr != nil {
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, db.openErr)
	}
	if db.DB == nil {
		return ErrDatabaseClosed
	}
	return nil
}

// Close releases the connection. A DB closed before first use never opens.
func (db *DB) Close() error {
	db.once.Do(func() {})
	if db.DB == nil {
		return nil
	}
	return db.DB.Close()
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// withTx runs fn inside its own transaction and commits it. Busy or locked
// databases are retried a few times; fn must therefore be safe to re-run.
func (db *DB) withTx(ctx context.Context, funcName string, fn func(tx *sql.Tx) error) error {
	log := logger.FromContext(ctx)

	if err := db.connect(ctx); err != nil {
		log.Err(err).Str("func", funcName).Msg("local database is not available")
		return err
	}

	var err error
	for attempt := 1; attempt <= txMaxAttempts; attempt++ {
		err = db.runTx(ctx, fn)
		if err == nil || db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}
		if attempt == txMaxAttempts {
			break
		}

		log.Warn().Err(err).
			Str("func", funcName).
			Int("attempt", attempt).
			Msg("database is busy, retrying transaction")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * txRetryDelay):
		}
	}

	return err
}

func (db *DB) runTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
