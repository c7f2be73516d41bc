package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kendall-kelly/essay-orders-api/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// PlaceOrder creates a new order (OrderID == 0) or updates an existing one,
// together with its posting step, supporting files and payment detail.
func (s *OrderService) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*PlaceOrderResult, error) {
	deadline, err := time.ParseInLocation(dateLayout, req.DeadlineDate, time.UTC)
	if err != nil {
		return nil, &ValidationError{Field: "deadlineDate", Message: "must be a date formatted YYYY-MM-DD"}
	}

	var result *PlaceOrderResult
	err = s.transaction(ctx, func(tx *gorm.DB) error {
		client, err := clientByEmail(tx, req.Email)
		if err != nil {
			return err
		}
		serviceType, err := findBy[models.ServiceType](tx, "service type", "name", req.ServiceType)
		if err != nil {
			return err
		}
		available, err := statusByName(tx, models.StatusAvailable)
		if err != nil {
			return err
		}
		format, err := inUseFormat(tx)
		if err != nil {
			return err
		}
		orderType, err := findBy[models.OrderType](tx, "order type", "name", strings.ToLower(req.Type))
		if err != nil {
			return err
		}
		if err := checkOrderReferences(tx, req); err != nil {
			return err
		}
		fileType, err := fileTypeByName(tx, models.FileTypeClientSupporting)
		if err != nil {
			return err
		}

		order := models.Order{
			ClientID:         client.ID,
			ServiceTypeID:    serviceType.ID,
			OrderTypeID:      orderType.ID,
			StatusID:         available.ID,
			DisciplineID:     req.DisciplineID,
			AssignmentTypeID: req.AssignmentTypeID,
			CitationStyleID:  req.CitationStyleID,
			FormatID:         format.ID,
			EducationLevelID: req.EducationLevelID,
			DeadlineDate:     deadline,
			DayTimeID:        req.DayTimeID,
			Pages:            req.Pages,
			Sources:          req.Sources,
			Topic:            req.Topic,
			Instructions:     req.Instructions,
		}

		if req.OrderID > 0 {
			order.ID = req.OrderID
			result, err = updatePlacedOrder(tx, &order, fileType.ID, client.UserID, req)
		} else {
			result, err = createPlacedOrder(tx, &order, fileType.ID, client.UserID, req)
		}
		return err
	})
	if err != nil {
		s.logger.Error("Failed to place order",
			zap.String("email", req.Email),
			zap.Uint("order_id", req.OrderID),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("Order placed",
		zap.Uint("order_id", result.OrderID),
		zap.Bool("new_order", result.NewOrder),
		zap.Int("files", len(req.Files)),
	)
	return result, nil
}

func createPlacedOrder(tx *gorm.DB, order *models.Order, fileTypeID, uploaderID uint, req PlaceOrderRequest) (*PlaceOrderResult, error) {
	if err := tx.Create(order).Error; err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	if err := createPostingStep(tx, order.ClientID, order.ID, StepOrderDetails); err != nil {
		return nil, err
	}
	// the order is new, nothing can be attached yet
	if _, err := attachFiles(tx, order.ID, fileTypeID, uploaderID, req.Files, false); err != nil {
		return nil, err
	}

	currency, err := currencyByCode(tx, req.Payment.CurrencyCode)
	if err != nil {
		return nil, err
	}
	extras, err := extrasByIDs(tx, req.Payment.Extras)
	if err != nil {
		return nil, err
	}
	detail := models.OrderPaymentDetail{
		OrderID:     order.ID,
		CurrencyID:  currency.ID,
		Extras:      extras,
		ExtrasTotal: req.Payment.ExtrasTotalPrice,
		Total:       req.Payment.TotalPrice,
		CostPerPage: req.Payment.CostPerPage,
	}
	if err := tx.Create(&detail).Error; err != nil {
		return nil, fmt.Errorf("failed to create payment detail for order %d: %w", order.ID, err)
	}

	return &PlaceOrderResult{Response: ResponseSuccess, OrderID: order.ID, NewOrder: true}, nil
}

func updatePlacedOrder(tx *gorm.DB, order *models.Order, fileTypeID, uploaderID uint, req PlaceOrderRequest) (*PlaceOrderResult, error) {
	// status is left as is: the order may already be past "Available"
	updates := map[string]interface{}{
		"service_type_id":    order.ServiceTypeID,
		"order_type_id":      order.OrderTypeID,
		"discipline_id":      order.DisciplineID,
		"assignment_type_id": order.AssignmentTypeID,
		"citation_style_id":  order.CitationStyleID,
		"format_id":          order.FormatID,
		"education_level_id": order.EducationLevelID,
		"deadline_date":      order.DeadlineDate,
		"day_time_id":        order.DayTimeID,
		"pages":              order.Pages,
		"sources":            order.Sources,
		"topic":              order.Topic,
		"instructions":       order.Instructions,
	}
	res := tx.Model(&models.Order{}).
		Where("id = ? AND client_id = ?", order.ID, order.ClientID).
		Updates(updates)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update order %d: %w", order.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, &LookupError{Entity: "order", Key: order.ID}
	}

	if err := setPostingStep(tx, order.ClientID, order.ID, StepOrderDetails); err != nil {
		return nil, err
	}
	if _, err := attachFiles(tx, order.ID, fileTypeID, uploaderID, req.Files, true); err != nil {
		return nil, err
	}

	currency, err := currencyByCode(tx, req.Payment.CurrencyCode)
	if err != nil {
		return nil, err
	}
	if _, err := recordPayment(tx, order.ClientID, order.ID, currency, req.Payment, PhasePlaceOrder); err != nil {
		return nil, err
	}

	return &PlaceOrderResult{Response: ResponseSuccess, OrderID: order.ID, NewOrder: false}, nil
}

// checkOrderReferences verifies every client-supplied reference id exists.
func checkOrderReferences(tx *gorm.DB, req PlaceOrderRequest) error {
	checks := []struct {
		entity string
		model  interface{}
		id     uint
	}{
		{"discipline", &models.Discipline{}, req.DisciplineID},
		{"assignment type", &models.AssignmentType{}, req.AssignmentTypeID},
		{"citation style", &models.CitationStyle{}, req.CitationStyleID},
		{"education level", &models.EducationLevel{}, req.EducationLevelID},
		{"day time", &models.DayTime{}, req.DayTimeID},
	}
	for _, c := range checks {
		var count int64
		if err := tx.Model(c.model).Where("id = ?", c.id).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check %s %d: %w", c.entity, c.id, err)
		}
		if count == 0 {
			return &LookupError{Entity: c.entity, Key: c.id}
		}
	}
	return nil
}
