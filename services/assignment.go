package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kendall-kelly/essay-orders-api/models"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UpdateOrderStatus moves an order on once its writer is chosen and binds the
// writer to it. A paid or private order becomes "Ongoing", anything else waits
// in "Pending payment". The writer is bound immediately even if unpaid; the
// status is what keeps unpaid work from starting.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID, writerUserID uint, visibility string) (*StatusUpdateResult, error) {
	visibility = strings.ToLower(visibility)

	var result *StatusUpdateResult
	err := s.transaction(ctx, func(tx *gorm.DB) error {
		var payments int64
		err := tx.Model(&models.ClientPayment{}).
			Where("order_id = ? AND status = ?", orderID, models.PaymentStatusSuccess).
			Count(&payments).Error
		if err != nil {
			return fmt.Errorf("failed to check payments for order %d: %w", orderID, err)
		}

		target := models.StatusPendingPayment
		if payments > 0 || visibility == models.VisibilityPrivate {
			target = models.StatusOngoing
		}

		affected, err := setOrderStatus(tx, orderID, target)
		if err != nil {
			return err
		}
		if affected == 0 {
			result = &StatusUpdateResult{StatusUpdated: false, Message: MessageStatusNotSaved}
			return nil
		}

		writer, err := writerByUserID(tx, writerUserID)
		if err != nil {
			return err
		}

		var assigned int64
		err = tx.Model(&models.WriterOrder{}).
			Where("order_id = ? AND writer_id = ?", orderID, writer.ID).
			Count(&assigned).Error
		if err != nil {
			return fmt.Errorf("failed to check assignment for order %d: %w", orderID, err)
		}

		if visibility == models.VisibilityPublic {
			err := tx.Model(&models.OrderBid{}).
				Where("order_id = ? AND writer_id = ?", orderID, writer.ID).
				Update("successful", true).Error
			if err != nil {
				return fmt.Errorf("failed to mark bid for order %d: %w", orderID, err)
			}
		}

		alreadyChosen := assigned > 0
		if !alreadyChosen {
			assignment := models.WriterOrder{OrderID: orderID, WriterID: writer.ID}
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&assignment)
			if res.Error != nil {
				return fmt.Errorf("failed to assign writer to order %d: %w", orderID, res.Error)
			}
			// lost a race with a concurrent assignment of the same writer
			alreadyChosen = res.RowsAffected == 0
		}

		result = &StatusUpdateResult{StatusUpdated: true, WriterAlreadyChosen: alreadyChosen}
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to update order status",
			zap.Uint("order_id", orderID),
			zap.Uint("writer_user_id", writerUserID),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("Order status updated",
		zap.Uint("order_id", orderID),
		zap.Bool("status_updated", result.StatusUpdated),
		zap.Bool("writer_already_chosen", result.WriterAlreadyChosen),
	)
	return result, nil
}

// PlaceBid records a writer's offer on a public order that is still open.
// Bidding again replaces the writer's previous amount.
func (s *OrderService) PlaceBid(ctx context.Context, writerUserID, orderID uint, amount decimal.Decimal) (*BidResult, error) {
	if !amount.IsPositive() {
		return nil, &ValidationError{Field: "amount", Message: "must be greater than zero"}
	}

	var result *BidResult
	err := s.transaction(ctx, func(tx *gorm.DB) error {
		writer, err := writerByUserID(tx, writerUserID)
		if err != nil {
			return err
		}

		var order models.Order
		err = tx.Preload("Status").Preload("OrderType").Where("id = ?", orderID).Take(&order).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			result = &BidResult{Placed: false, Message: MessageOrderNotFound}
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to load order %d: %w", orderID, err)
		}

		open := order.Status != nil &&
			(order.Status.Name == models.StatusAvailable || order.Status.Name == models.StatusBiddingOngoing)
		if order.OrderType == nil || order.OrderType.Name != models.VisibilityPublic || !open {
			result = &BidResult{Placed: false, Message: MessageBiddingClosed}
			return nil
		}

		bid := models.OrderBid{OrderID: order.ID, WriterID: writer.ID, Amount: amount}
		err = tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_id"}, {Name: "writer_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
		}).Create(&bid).Error
		if err != nil {
			return fmt.Errorf("failed to save bid on order %d: %w", order.ID, err)
		}

		if order.Status.Name == models.StatusAvailable {
			if _, err := setOrderStatus(tx, order.ID, models.StatusBiddingOngoing); err != nil {
				return err
			}
		}

		var saved models.OrderBid
		if err := tx.Where("order_id = ? AND writer_id = ?", order.ID, writer.ID).Take(&saved).Error; err != nil {
			return fmt.Errorf("failed to reload bid on order %d: %w", order.ID, err)
		}
		result = &BidResult{Placed: true, BidID: saved.ID}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Bid handled",
		zap.Uint("order_id", orderID),
		zap.Uint("writer_user_id", writerUserID),
		zap.Bool("placed", result.Placed),
	)
	return result, nil
}
