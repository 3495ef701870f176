package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-story-keeper/internal/logger"
)

// sessionRepository keeps small string values (token, push flags) in the
// kv_session table. Writes are last-writer-wins.
type sessionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSessionRepository constructs a [SessionRepository] on db.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{db: db, logger: logger}
}

func (r *sessionRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var (
		value string
		found bool
	)

	err := r.db.withTx(ctx, "sessionRepository.Get", func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, selectSessionValue, key).Scan(&value)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			found = false
			return nil
		case err != nil:
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		found = true
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sessionRepository.Get").
			Str("key", key).
			Msg("failed to read session value")
		return "", false, err
	}

	return value, found, nil
}

func (r *sessionRepository) Set(ctx context.Context, key, value string) error {
	err := r.db.withTx(ctx, "sessionRepository.Set", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, upsertSessionValue, key, value, time.Now().UTC()); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sessionRepository.Set").
			Str("key", key).
			Msg("failed to write session value")
	}
	return err
}

func (r *sessionRepository) Delete(ctx context.Context, key string) error {
	err := r.db.withTx(ctx, "sessionRepository.Delete", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteSessionValue, key); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sessionRepository.Delete").
			Str("key", key).
			Msg("failed to delete session value")
	}
	return err
}
