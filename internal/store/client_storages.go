package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-story-keeper/internal/config"
	"github.com/MKhiriev/go-story-keeper/internal/logger"
)

// ClientStorages groups every repository of the local database into a single
// value passed to the service layer. All repositories share one connection.
type ClientStorages struct {
	FavoriteRepository         FavoriteRepository
	OfflineStoryRepository     OfflineStoryRepository
	SessionRepository          SessionRepository
	CacheRepository            CacheRepository
	PushSubscriptionRepository PushSubscriptionRepository

	db *DB
}

// NewClientStorages wires every repository to the SQLite database at
// cfg.DB.DSN. The file is created, opened and migrated on the first
// repository call, not here.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	if cfg.DB.DSN == "" {
		return nil, ErrEmptyDSN
	}
	logger.Info().Str("dsn", cfg.DB.DSN).Msg("creating new storages...")

	db := &DB{
		errorClassificator: NewSQLiteErrorClassifier(),
		logger:             logger,
		open: func(ctx context.Context) (*sql.DB, error) {
			conn, err := NewConnectSQLite(ctx, cfg.DB, logger)
			if err != nil {
				return nil, fmt.Errorf("sqlite connection error: %w", err)
			}
			if err = conn.Migrate(); err != nil {
				conn.DB.Close()
				return nil, fmt.Errorf("migration failed: %w", err)
			}
			return conn.DB, nil
		},
	}

	return newClientStorages(db, logger), nil
}

func newClientStorages(db *DB, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		FavoriteRepository:         NewFavoriteRepository(db, logger),
		OfflineStoryRepository:     NewOfflineStoryRepository(db, logger),
		SessionRepository:          NewSessionRepository(db, logger),
		CacheRepository:            NewCacheRepository(db, logger),
		PushSubscriptionRepository: NewPushSubscriptionRepository(db, logger),
		db:                         db,
	}
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}
