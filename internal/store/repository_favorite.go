package store

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/MKhiriev/go-story-keeper/internal/logger"
	"github.com/MKhiriev/go-story-keeper/models"
)

// favoriteRepository is the SQLite-backed implementation of
// [FavoriteRepository]. Search and sort load the whole collection and work
// in memory; favorites are a small, user-curated set.
type favoriteRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewFavoriteRepository constructs a [FavoriteRepository] on db.
func NewFavoriteRepository(db *DB, logger *logger.Logger) FavoriteRepository {
	logger.Debug().Msg("creating favorite repository")
	return &favoriteRepository{db: db, logger: logger}
}

func (r *favoriteRepository) AddFavorite(ctx context.Context, fav models.FavoriteStory) error {
	log := logger.FromContext(ctx)

	if fav.SavedAt.IsZero() {
		fav.SavedAt = time.Now().UTC()
	}

	return r.db.withTx(ctx, "favoriteRepository.AddFavorite", func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, insertFavorite,
			fav.ID,
			fav.Name,
			fav.Description,
			fav.PhotoURL,
			fav.CreatedAt,
			nullFloat(fav.Lat),
			nullFloat(fav.Lon),
			fav.Owner,
			fav.SavedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				log.Debug().
					Str("func", "favoriteRepository.AddFavorite").
					Str("story_id", fav.ID).
					Msg("favorite already exists")
				return ErrFavoriteAlreadyExists
			}
			log.Err(err).
				Str("func", "favoriteRepository.AddFavorite").
				Str("story_id", fav.ID).
				Msg("failed to insert favorite")
			return fmt.Errorf("%w: failed to add favorite (story_id=%s): %w", ErrExecutingStatement, fav.ID, err)
		}
		return nil
	})
}

func (r *favoriteRepository) GetAllFavorites(ctx context.Context) ([]models.FavoriteStory, error) {
	var favorites []models.FavoriteStory

	err := r.db.withTx(ctx, "favoriteRepository.GetAllFavorites", func(tx *sql.Tx) error {
		var err error
		favorites, err = r.selectFavorites(ctx, tx, "")
		return err
	})
	if err != nil {
		return nil, err
	}

	return favorites, nil
}

func (r *favoriteRepository) GetFavoriteByID(ctx context.Context, id string) (models.FavoriteStory, bool, error) {
	var favorites []models.FavoriteStory

	err := r.db.withTx(ctx, "favoriteRepository.GetFavoriteByID", func(tx *sql.Tx) error {
		var err error
		favorites, err = r.selectFavorites(ctx, tx, id)
		return err
	})
	if err != nil {
		return models.FavoriteStory{}, false, err
	}

	if len(favorites) == 0 {
		return models.FavoriteStory{}, false, nil
	}

	return favorites[0], true, nil
}

func (r *favoriteRepository) DeleteFavorite(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	return r.db.withTx(ctx, "favoriteRepository.DeleteFavorite", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteFavorite, id); err != nil {
			log.Err(err).
				Str("func", "favoriteRepository.DeleteFavorite").
				Str("story_id", id).
				Msg("failed to delete favorite")
			return fmt.Errorf("%w: failed to delete favorite (story_id=%s): %w", ErrExecutingStatement, id, err)
		}
		return nil
	})
}

func (r *favoriteRepository) SearchFavorites(ctx context.Context, query string) ([]models.FavoriteStory, error) {
	favorites, err := r.GetAllFavorites(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	found := make([]models.FavoriteStory, 0, len(favorites))
	for _, fav := range favorites {
		if strings.Contains(strings.ToLower(fav.Name), needle) ||
			strings.Contains(strings.ToLower(fav.Description), needle) {
			found = append(found, fav)
		}
	}

	return found, nil
}

// SortFavorites orders by parsed creation time or by raw name. The sort is
// stable, so equal keys keep primary-key order. Unparseable timestamps sort
// as the zero time.
func (r *favoriteRepository) SortFavorites(ctx context.Context, field models.FavoriteSortField, order models.SortOrder) ([]models.FavoriteStory, error) {
	var less func(a, b models.FavoriteStory) bool
	switch field {
	case models.SortByCreatedAt:
		less = func(a, b models.FavoriteStory) bool {
			return createdTime(a).Before(createdTime(b))
		}
	case models.SortByName:
		less = func(a, b models.FavoriteStory) bool {
			return a.Name < b.Name
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidSortField, field)
	}
	if order != models.SortAsc && order != models.SortDesc {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSortOrder, order)
	}

	favorites, err := r.GetAllFavorites(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(favorites, func(i, j int) bool {
		if order == models.SortDesc {
			return less(favorites[j], favorites[i])
		}
		return less(favorites[i], favorites[j])
	})

	return favorites, nil
}

func (r *favoriteRepository) selectFavorites(ctx context.Context, tx *sql.Tx, id string) ([]models.FavoriteStory, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectFavoritesQuery(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "favoriteRepository.selectFavorites").
			Str("story_id", id).
			Msg("failed to query favorites")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	favorites := make([]models.FavoriteStory, 0)
	for rows.Next() {
		var (
			fav      models.FavoriteStory
			lat, lon sql.NullFloat64
		)
		if err = rows.Scan(
			&fav.ID,
			&fav.Name,
			&fav.Description,
			&fav.PhotoURL,
			&fav.CreatedAt,
			&lat,
			&lon,
			&fav.Owner,
			&fav.SavedAt,
		); err != nil {
			log.Err(err).
				Str("func", "favoriteRepository.selectFavorites").
				Msg("failed to scan favorite row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		fav.Lat = floatPtr(lat)
		fav.Lon = floatPtr(lon)
		favorites = append(favorites, fav)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return favorites, nil
}

func createdTime(fav models.FavoriteStory) time.Time {
	t, err := fav.CreatedTime()
	if err != nil {
		return time.Time{}
	}
	return t
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

func floatPtr(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64
	return &v
}
