package services

import (
	"context"
	"fmt"

	"github.com/unishare/api/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RatingService owns the rating upsert and the cached-average recompute on
// resources. The upsert, the recompute and the cache write all happen inside
// one transaction, so a concurrent reader can never observe an avg_rating
// that does not match some consistent snapshot of the ratings table.
type RatingService struct {
	db *gorm.DB
}

// NewRatingService creates a new rating service
func NewRatingService(db *gorm.DB) *RatingService {
	return &RatingService{
		db: db,
	}
}

// RatingSummary is what the rating endpoints return. UserRating is nil when
// the caller has not rated the resource.
type RatingSummary struct {
	Average    float64 `json:"average"`
	Count      int64   `json:"count"`
	UserRating *int    `json:"userRating"`
}

type ratingAggregate struct {
	Average *float64
	Count   int64
}

// Get returns the aggregate for a resource plus the caller's own rating.
func (s *RatingService) Get(ctx context.Context, resourceID, userID uint) (*RatingSummary, error) {
	summary := &RatingSummary{}

	var agg ratingAggregate
	err := s.db.WithContext(ctx).Model(&model.Rating{}).
		Select("AVG(value) AS average, COUNT(*) AS count").
		Where("resource_id = ?", resourceID).
		Scan(&agg).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate ratings: %w", err)
	}

	if agg.Average != nil {
		summary.Average = *agg.Average
	}
	summary.Count = agg.Count

	var own model.Rating
	err = s.db.WithContext(ctx).
		Where("resource_id = ? AND user_id = ?", resourceID, userID).
		First(&own).Error
	switch err {
	case nil:
		v := own.Value
		summary.UserRating = &v
	case gorm.ErrRecordNotFound:
		// caller has not rated
	default:
		return nil, fmt.Errorf("failed to load user rating: %w", err)
	}

	return summary, nil
}

// Set upserts the caller's rating, recomputes the average and count over all
// ratings for the resource, and writes the new average into
// resources.avg_rating, all in one transaction.
func (s *RatingService) Set(ctx context.Context, resourceID, userID uint, value int) (*RatingSummary, error) {
	if !model.IsValidRating(value) {
		return nil, fmt.Errorf("rating out of range: %d", value)
	}

	summary := &RatingSummary{UserRating: &value}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rating := model.Rating{
			ResourceID: resourceID,
			UserID:     userID,
			Value:      value,
		}

		// Second rating from the same user replaces the first
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "resource_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&rating).Error
		if err != nil {
			return fmt.Errorf("failed to upsert rating: %w", err)
		}

		var agg ratingAggregate
		err = tx.Model(&model.Rating{}).
			Select("AVG(value) AS average, COUNT(*) AS count").
			Where("resource_id = ?", resourceID).
			Scan(&agg).Error
		if err != nil {
			return fmt.Errorf("failed to aggregate ratings: %w", err)
		}

		if agg.Average != nil {
			summary.Average = *agg.Average
		}
		summary.Count = agg.Count

		err = tx.Model(&model.Resource{}).
			Where("id = ?", resourceID).
			Update("avg_rating", agg.Average).Error
		if err != nil {
			return fmt.Errorf("failed to cache average: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return summary, nil
}
