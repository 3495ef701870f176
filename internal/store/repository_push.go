package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-story-keeper/internal/logger"
	"github.com/MKhiriev/go-story-keeper/models"
)

type pushSubscriptionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewPushSubscriptionRepository constructs a [PushSubscriptionRepository]
// on db.
func NewPushSubscriptionRepository(db *DB, logger *logger.Logger) PushSubscriptionRepository {
	return &pushSubscriptionRepository{db: db, logger: logger}
}

func (r *pushSubscriptionRepository) SaveSubscription(ctx context.Context, sub models.PlatformSubscription) error {
	return r.db.withTx(ctx, "pushSubscriptionRepository.SaveSubscription", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, insertPushSubscription,
			sub.ID,
			sub.Endpoint,
			sub.Keys.P256dh,
			sub.Keys.Auth,
			sub.PrivateKey,
			sub.ApplicationServerKey,
			sub.CreatedAt,
		); err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "pushSubscriptionRepository.SaveSubscription").
				Str("subscription_id", sub.ID).
				Msg("failed to save push subscription")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
}

func (r *pushSubscriptionRepository) GetActiveSubscription(ctx context.Context) (models.PlatformSubscription, bool, error) {
	return r.selectSubscription(ctx, "")
}

func (r *pushSubscriptionRepository) GetSubscriptionByID(ctx context.Context, id string) (models.PlatformSubscription, bool, error) {
	if id == "" {
		return models.PlatformSubscription{}, false, nil
	}
	return r.selectSubscription(ctx, id)
}

func (r *pushSubscriptionRepository) DeleteSubscription(ctx context.Context, id string) error {
	return r.db.withTx(ctx, "pushSubscriptionRepository.DeleteSubscription", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deletePushSubscription, id); err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "pushSubscriptionRepository.DeleteSubscription").
				Str("subscription_id", id).
				Msg("failed to delete push subscription")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
}

func (r *pushSubscriptionRepository) selectSubscription(ctx context.Context, id string) (models.PlatformSubscription, bool, error) {
	query, args, err := buildSelectPushSubscriptionQuery(id)
	if err != nil {
		return models.PlatformSubscription{}, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		sub   models.PlatformSubscription
		found bool
	)
	err = r.db.withTx(ctx, "pushSubscriptionRepository.selectSubscription", func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, query, args...).Scan(
			&sub.ID,
			&sub.Endpoint,
			&sub.Keys.P256dh,
			&sub.Keys.Auth,
			&sub.PrivateKey,
			&sub.ApplicationServerKey,
			&sub.CreatedAt,
		)
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
			Str("func", "pushSubscriptionRepository.selectSubscription").
			Str("subscription_id", id).
			Msg("failed to query push subscription")
		return models.PlatformSubscription{}, false, err
	}

	return sub, found, nil
}
