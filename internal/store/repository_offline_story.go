package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-story-keeper/internal/logger"
	"github.com/MKhiriev/go-story-keeper/models"
)

type offlineStoryRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewOfflineStoryRepository constructs an [OfflineStoryRepository] on db.
func NewOfflineStoryRepository(db *DB, logger *logger.Logger) OfflineStoryRepository {
	logger.Debug().Msg("creating offline story repository")
	return &offlineStoryRepository{db: db, logger: logger, now: time.Now}
}

func (r *offlineStoryRepository) AddOfflineStory(ctx context.Context, story models.OfflineStory) (models.OfflineStory, error) {
	log := logger.FromContext(ctx)

	story.Timestamp = r.now().UnixMilli()
	story.Synced = false

	err := r.db.withTx(ctx, "offlineStoryRepository.AddOfflineStory", func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, insertOfflineStory,
			story.Description,
			story.Photo,
			story.PhotoName,
			story.PhotoContentType,
			nullFloat(story.Lat),
			nullFloat(story.Lon),
			story.Timestamp,
		)
		if err != nil {
			log.Err(err).
				Str("func", "offlineStoryRepository.AddOfflineStory").
				Msg("failed to insert offline story")
			return fmt.Errorf("%w: failed to add offline story: %w", ErrExecutingStatement, err)
		}

		id, err := res.LastInsertId()
		if err != nil || id == 0 {
			return ErrOfflineStoryNotSaved
		}
		story.TempID = id
		return nil
	})
	if err != nil {
		return models.OfflineStory{}, err
	}

	log.Info().
		Str("func", "offlineStoryRepository.AddOfflineStory").
		Int64("temp_id", story.TempID).
		Msg("story queued for background sync")

	return story, nil
}

func (r *offlineStoryRepository) GetAllOfflineStories(ctx context.Context) ([]models.OfflineStory, error) {
	log := logger.FromContext(ctx)

	stories := make([]models.OfflineStory, 0)
	err := r.db.withTx(ctx, "offlineStoryRepository.GetAllOfflineStories", func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, selectAllOfflineStories)
		if err != nil {
			log.Err(err).
				Str("func", "offlineStoryRepository.GetAllOfflineStories").
				Msg("failed to query offline stories")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		stories = stories[:0]
		for rows.Next() {
			var (
				s        models.OfflineStory
				lat, lon sql.NullFloat64
			)
			if err = rows.Scan(
				&s.TempID,
				&s.Description,
				&s.Photo,
				&s.PhotoName,
				&s.PhotoContentType,
				&lat,
				&lon,
				&s.Timestamp,
				&s.Synced,
			); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			s.Lat = floatPtr(lat)
			s.Lon = floatPtr(lon)
			stories = append(stories, s)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return stories, nil
}

func (r *offlineStoryRepository) DeleteOfflineStory(ctx context.Context, tempID int64) error {
	log := logger.FromContext(ctx)

	return r.db.withTx(ctx, "offlineStoryRepository.DeleteOfflineStory", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteOfflineStory, tempID); err != nil {
			log.Err(err).
				Str("func", "offlineStoryRepository.DeleteOfflineStory").
				Int64("temp_id", tempID).
				Msg("failed to delete offline story")
			return fmt.Errorf("%w: failed to delete offline story (temp_id=%d): %w", ErrExecutingStatement, tempID, err)
		}
		return nil
	})
}

func (r *offlineStoryRepository) ClearAllOfflineStories(ctx context.Context) error {
	log := logger.FromContext(ctx)

	return r.db.withTx(ctx, "offlineStoryRepository.ClearAllOfflineStories", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteAllOfflineStories); err != nil {
			log.Err(err).
				Str("func", "offlineStoryRepository.ClearAllOfflineStories").
				Msg("failed to clear offline stories")
			return fmt.Errorf("%w: failed to clear offline stories: %w", ErrExecutingStatement, err)
		}
		return nil
	})
}
