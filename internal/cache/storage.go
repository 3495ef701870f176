package cache

import (
	"fmt"

	"github.com/MKhiriev/go-story-keeper/internal/config"
	"github.com/MKhiriev/go-story-keeper/internal/logger"
)

// NewStorage selects the storage backend. The SQLite backend is the
// repository itself; the memory backend does not survive a restart.
func NewStorage(backend string, repo Storage, logger *logger.Logger) (Storage, error) {
	switch backend {
	case "", config.CacheBackendSQLite:
		if repo == nil {
			return nil, fmt.Errorf("%w: sqlite cache backend needs a repository", ErrInvalidStorage)
		}
		return repo, nil
	case config.CacheBackendMemory:
		return NewMemoryStorage(logger), nil
	default:
		return nil, fmt.Errorf("%w: unknown cache backend %q", ErrInvalidStorage, backend)
	}
}
