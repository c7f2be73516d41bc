package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/kendall-kelly/essay-orders-api/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func createPostingStep(tx *gorm.DB, clientID, orderID uint, step int) error {
	row := models.ClientOrderPostingStep{ClientID: clientID, OrderID: orderID, LastStep: step}
	if err := tx.Create(&row).Error; err != nil {
		return fmt.Errorf("failed to record posting step %d for order %d: %w", step, orderID, err)
	}
	return nil
}

// setPostingStep rewrites the latest posting step of the order, creating one if there is none.
func setPostingStep(tx *gorm.DB, clientID, orderID uint, step int) error {
	var row models.ClientOrderPostingStep
	err := tx.Where("client_id = ? AND order_id = ?", clientID, orderID).
		Order("id DESC").
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return createPostingStep(tx, clientID, orderID, step)
	}
	if err != nil {
		return fmt.Errorf("failed to load posting step for order %d: %w", orderID, err)
	}

	if err := tx.Model(&row).Update("last_step", step).Error; err != nil {
		return fmt.Errorf("failed to update posting step for order %d: %w", orderID, err)
	}
	return nil
}

// latestPostingStep returns the client's most recent funnel step, 0 if none.
func latestPostingStep(tx *gorm.DB, clientID uint) (int, error) {
	var row models.ClientOrderPostingStep
	err := tx.Where("client_id = ?", clientID).Order("updated_at DESC").Order("id DESC").Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to load posting step: %w", err)
	}
	return row.LastStep, nil
}

// SaveFunnelStep records that the client reached step while posting the order
func (s *OrderService) SaveFunnelStep(ctx context.Context, email string, orderID uint, step int) error {
	if step <= 0 {
		return &ValidationError{Field: "step", Message: "must be positive"}
	}

	err := s.transaction(ctx, func(tx *gorm.DB) error {
		client, err := clientByEmail(tx, email)
		if err != nil {
			return err
		}
		order, err := orderForClient(tx, client.ID, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return &LookupError{Entity: "order", Key: orderID}
		}
		return createPostingStep(tx, client.ID, order.ID, step)
	})
	if err != nil {
		return err
	}

	s.logger.Debug("Funnel step saved", zap.Uint("order_id", orderID), zap.Int("step", step))
	return nil
}
