package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/kendall-kelly/essay-orders-api/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RateWriter records the one rating an order can receive and folds it into
// the writer's running average.
func (s *OrderService) RateWriter(ctx context.Context, orderID uint, rating float64) (*RatingResult, error) {
	if rating < 1 || rating > 5 {
		return nil, &ValidationError{Field: "rating", Message: "must be between 1 and 5"}
	}

	alreadyRated := &RatingResult{Rated: false, AlreadyRated: true}

	var result *RatingResult
	err := s.transaction(ctx, func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.WriterRating{}).Where("order_id = ?", orderID).Count(&existing).Error; err != nil {
			return fmt.Errorf("failed to check rating for order %d: %w", orderID, err)
		}
		if existing > 0 {
			result = alreadyRated
			return nil
		}

		var assignment models.WriterOrder
		err := tx.Where("order_id = ?", orderID).Order("id").Take(&assignment).Error
		if err != nil {
			return lookupError("writer assignment for order", orderID, err)
		}

		row := models.WriterRating{OrderID: orderID, WriterID: assignment.WriterID, Rating: rating}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
		if res.Error != nil {
			return fmt.Errorf("failed to save rating for order %d: %w", orderID, res.Error)
		}
		if res.RowsAffected == 0 {
			result = alreadyRated
			return nil
		}

		// count includes the rating just inserted
		var count int64
		if err := tx.Model(&models.WriterRating{}).Where("writer_id = ?", assignment.WriterID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count ratings for writer %d: %w", assignment.WriterID, err)
		}

		average, err := updateAverageRating(tx, assignment.WriterID, rating, count)
		if err != nil {
			return err
		}

		result = &RatingResult{Rated: true, WriterID: assignment.WriterID, Average: average}
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to rate writer", zap.Uint("order_id", orderID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Writer rating handled",
		zap.Uint("order_id", orderID),
		zap.Bool("rated", result.Rated),
		zap.Float64("average", result.Average),
	)
	return result, nil
}

// updateAverageRating applies (old*(n-1) + rating) / n, or seeds the average with the first rating.
func updateAverageRating(tx *gorm.DB, writerID uint, rating float64, count int64) (float64, error) {
	var avg models.WriterAverageRating
	err := tx.Where("writer_id = ?", writerID).Take(&avg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		avg = models.WriterAverageRating{WriterID: writerID, Average: rating}
		if err := tx.Create(&avg).Error; err != nil {
			return 0, fmt.Errorf("failed to create average rating for writer %d: %w", writerID, err)
		}
		return rating, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to load average rating for writer %d: %w", writerID, err)
	}

	n := float64(count)
	if n < 1 {
		n = 1
	}
	average := (avg.Average*(n-1) + rating) / n
	if err := tx.Model(&avg).Update("average", average).Error; err != nil {
		return 0, fmt.Errorf("failed to update average rating for writer %d: %w", writerID, err)
	}
	return average, nil
}
