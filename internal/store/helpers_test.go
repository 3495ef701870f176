package store

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-story-keeper/internal/config"
	"github.com/MKhiriev/go-story-keeper/internal/logger"
	"github.com/stretchr/testify/require"
)

// newTestStorages opens a migrated SQLite database in a temp dir.
func newTestStorages(t *testing.T) *ClientStorages {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "store.db")
	s, err := NewClientStorages(config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

// newMockDB wraps a sqlmock connection in a *DB.
func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return &DB{DB: conn, errorClassificator: NewSQLiteErrorClassifier(), logger: logger.Nop()}, mock, conn
}

func ptr(f float64) *float64 { return &f }
