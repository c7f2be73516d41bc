package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/kendall-kelly/essay-orders-api/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SavePayment records the checkout screen of the funnel (phase "check-order").
func (s *OrderService) SavePayment(ctx context.Context, req SavePaymentRequest) (*PaymentResult, error) {
	orderID := req.OrderID
	if orderID == 0 {
		orderID = req.FallbackOrderID
	}

	var result *PaymentResult
	err := s.transaction(ctx, func(tx *gorm.DB) error {
		client, err := clientByEmail(tx, req.Email)
		if err != nil {
			return err
		}
		currency, err := currencyByCode(tx, req.Payment.CurrencyCode)
		if err != nil {
			return err
		}
		if orderID == 0 {
			result = &PaymentResult{Response: ResponseNoOrderID}
			return nil
		}

		order, err := orderForClient(tx, client.ID, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return &LookupError{Entity: "order", Key: orderID}
		}

		result, err = recordPayment(tx, client.ID, order.ID, currency, req.Payment, PhaseCheckOrder)
		return err
	})
	if err != nil {
		s.logger.Error("Failed to save payment", zap.Uint("order_id", orderID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Payment saved", zap.Uint("order_id", orderID), zap.String("response", result.Response))
	return result, nil
}

// recordPayment creates or updates the single payment detail of an order.
// Only the "check-order" phase advances the posting funnel to the checkout step.
func recordPayment(tx *gorm.DB, clientID, orderID uint, currency *models.Currency, summary PaymentSummary, phase PaymentPhase) (*PaymentResult, error) {
	extras, err := extrasByIDs(tx, summary.Extras)
	if err != nil {
		return nil, err
	}

	var detail models.OrderPaymentDetail
	err = tx.Where("order_id = ?", orderID).Take(&detail).Error
	switch {
	case err == nil:
		updates := map[string]interface{}{
			"currency_id":   currency.ID,
			"extras_total":  summary.ExtrasTotalPrice,
			"total":         summary.TotalPrice,
			"cost_per_page": summary.CostPerPage,
		}
		if err := tx.Model(&detail).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update payment detail for order %d: %w", orderID, err)
		}
		if err := replaceExtras(tx, &detail, extras); err != nil {
			return nil, err
		}
		if phase == PhaseCheckOrder {
			if err := createPostingStep(tx, clientID, orderID, StepCheckout); err != nil {
				return nil, err
			}
		}
		newOrder := false
		return &PaymentResult{Response: ResponseSuccess, NewOrder: &newOrder}, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		order, err := findBy[models.Order](tx, "order", "id", orderID)
		if err != nil {
			return nil, err
		}
		detail = models.OrderPaymentDetail{
			OrderID:     orderID,
			CurrencyID:  currency.ID,
			Extras:      extras,
			ExtrasTotal: summary.ExtrasTotalPrice,
			Total:       summary.TotalPrice,
			CostPerPage: summary.CostPerPage,
		}
		if err := tx.Create(&detail).Error; err != nil {
			return nil, fmt.Errorf("failed to create payment detail for order %d: %w", orderID, err)
		}
		if phase == PhaseCheckOrder {
			if err := createPostingStep(tx, order.ClientID, orderID, StepCheckout); err != nil {
				return nil, err
			}
		}
		return &PaymentResult{Response: ResponseSuccess, OrderID: orderID}, nil

	default:
		return nil, fmt.Errorf("failed to load payment detail for order %d: %w", orderID, err)
	}
}

func replaceExtras(tx *gorm.DB, detail *models.OrderPaymentDetail, extras []models.Extra) error {
	association := tx.Model(detail).Association("Extras")
	var err error
	if len(extras) == 0 {
		err = association.Clear()
	} else {
		err = association.Replace(extras)
	}
	if err != nil {
		return fmt.Errorf("failed to replace extras of payment detail %d: %w", detail.ID, err)
	}
	return nil
}

// ConfirmClientPayment records a settled payment. An order waiting on
// payment for its chosen writer moves to "Ongoing".
func (s *OrderService) ConfirmClientPayment(ctx context.Context, req ConfirmPaymentRequest) (*ConfirmPaymentResult, error) {
	if !req.Amount.IsPositive() {
		return nil, &ValidationError{Field: "amount", Message: "must be greater than zero"}
	}

	var result *ConfirmPaymentResult
	err := s.transaction(ctx, func(tx *gorm.DB) error {
		client, err := clientByEmail(tx, req.Email)
		if err != nil {
			return err
		}
		order, err := orderForClient(tx, client.ID, req.OrderID)
		if err != nil {
			return err
		}
		if order == nil {
			result = &ConfirmPaymentResult{Recorded: false, Message: MessageOrderNotFound}
			return nil
		}
		currency, err := currencyByCode(tx, req.CurrencyCode)
		if err != nil {
			return err
		}

		payment := models.ClientPayment{
			OrderID:    order.ID,
			ClientID:   client.ID,
			CurrencyID: currency.ID,
			Amount:     req.Amount,
			Status:     models.PaymentStatusSuccess,
			Reference:  req.Reference,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return fmt.Errorf("failed to record payment for order %d: %w", order.ID, err)
		}

		result = &ConfirmPaymentResult{Recorded: true}
		if order.Status != nil && order.Status.Name == models.StatusPendingPayment {
			affected, err := setOrderStatus(tx, order.ID, models.StatusOngoing)
			if err != nil {
				return err
			}
			result.StatusUpdated = affected > 0
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to confirm payment", zap.Uint("order_id", req.OrderID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Client payment confirmed",
		zap.Uint("order_id", req.OrderID),
		zap.Bool("recorded", result.Recorded),
		zap.Bool("status_updated", result.StatusUpdated),
	)
	return result, nil
}
