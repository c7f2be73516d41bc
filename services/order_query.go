package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/kendall-kelly/essay-orders-api/models"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ClientOrder returns the order if the client with email owns it, nil otherwise
func (s *OrderService) ClientOrder(ctx context.Context, email string, orderID uint) (*models.Order, error) {
	db := s.db.WithContext(ctx)
	client, err := clientByEmail(db, email)
	if err != nil {
		return nil, err
	}
	return orderForClient(db, client.ID, orderID)
}

// GetOrders lists the client's orders, newest first. A statusID of 0 lists every status.
func (s *OrderService) GetOrders(ctx context.Context, email string, statusID uint) ([]models.Order, error) {
	db := s.db.WithContext(ctx)
	client, err := clientByEmail(db, email)
	if err != nil {
		return nil, err
	}

	query := db.Preload("Status").
		Preload("Discipline").
		Preload("EducationLevel").
		Preload("DayTime").
		Preload("PaymentDetail.Currency").
		Where("client_id = ?", client.ID)
	if statusID > 0 {
		query = query.Where("status_id = ?", statusID)
	}

	var orders []models.Order
	if err := query.Order("created_at DESC").Order("id DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	s.logger.Debug("Orders listed", zap.Uint("client_id", client.ID), zap.Int("count", len(orders)))
	return orders, nil
}

// GetOrder assembles the full view of one of the client's orders.
// Returns nil when the client does not own the order.
func (s *OrderService) GetOrder(ctx context.Context, email string, orderID uint) (*OrderDetail, error) {
	db := s.db.WithContext(ctx)
	client, err := clientByEmail(db, email)
	if err != nil {
		return nil, err
	}

	var order models.Order
	err = db.Preload("ServiceType").
		Preload("OrderType").
		Preload("Status").
		Preload("Discipline").
		Preload("AssignmentType").
		Preload("CitationStyle").
		Preload("Format").
		Preload("EducationLevel").
		Preload("DayTime").
		Preload("Files", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC").Order("id DESC")
		}).
		Preload("Files.FileType").
		Preload("PaymentDetail.Currency").
		Preload("PaymentDetail.Extras").
		Where("id = ? AND client_id = ?", orderID, client.ID).
		Take(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load order %d: %w", orderID, err)
	}

	detail := &OrderDetail{Order: &order}

	detail.Writer, err = assignedWriter(db, order.ID)
	if err != nil {
		return nil, err
	}

	if order.Status != nil && models.IsRevisableStatus(order.Status.Name) {
		err := db.Where("order_id = ? AND submitted = ?", order.ID, false).
			Order("created_at").
			Find(&detail.Revisions).Error
		if err != nil {
			return nil, fmt.Errorf("failed to load revisions of order %d: %w", order.ID, err)
		}
		if err := db.Order("id").Find(&detail.SubmissionChecklist).Error; err != nil {
			return nil, fmt.Errorf("failed to load submission checklist: %w", err)
		}
	}

	var ratings int64
	if err := db.Model(&models.WriterRating{}).Where("order_id = ?", order.ID).Count(&ratings).Error; err != nil {
		return nil, fmt.Errorf("failed to check rating of order %d: %w", order.ID, err)
	}
	detail.Rated = ratings > 0

	return detail, nil
}

// ResumeOrder builds the "continue where you left off" view shown at login:
// the client's latest order, or the given one when orderID is set.
func (s *OrderService) ResumeOrder(ctx context.Context, email string, orderID uint, gotStarted bool) (*ResumeResult, error) {
	db := s.db.WithContext(ctx)
	client, err := clientByEmail(db, email)
	if err != nil {
		return nil, err
	}

	query := db.Preload("Status").
		Preload("OrderType").
		Preload("ServiceType").
		Preload("Discipline").
		Preload("AssignmentType").
		Preload("CitationStyle").
		Preload("Format").
		Preload("EducationLevel").
		Preload("DayTime").
		Where("client_id = ?", client.ID)
	if orderID > 0 {
		query = query.Where("id = ?", orderID)
	}

	var order models.Order
	err = query.Order("created_at DESC").Order("id DESC").Take(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &ResumeResult{OrderExists: false}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load latest order: %w", err)
	}

	discount, err := pageDiscount(db, order.Pages)
	if err != nil {
		return nil, err
	}

	paid := gotStarted || order.Status == nil || !models.IsUnpaidStatus(order.Status.Name)
	result := &ResumeResult{OrderExists: true, Paid: paid, Order: &order, Discount: discount}
	if paid {
		return result, nil
	}

	var detail models.OrderPaymentDetail
	err = db.Preload("Currency").Preload("Extras").Where("order_id = ?", order.ID).Take(&detail).Error
	switch {
	case err == nil:
		result.PaymentDetail = &detail
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("failed to load payment detail of order %d: %w", order.ID, err)
	}

	if result.Writer, err = assignedWriter(db, order.ID); err != nil {
		return nil, err
	}

	err = db.Preload("FileType").
		Joins("JOIN file_types ON file_types.id = order_files.file_type_id").
		Where("order_files.order_id = ? AND file_types.name = ?", order.ID, models.FileTypeClientSupporting).
		Order("order_files.created_at DESC").
		Find(&result.Files).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load files of order %d: %w", order.ID, err)
	}

	if result.LastStep, err = latestPostingStep(db, client.ID); err != nil {
		return nil, err
	}
	return result, nil
}

// pageDiscount returns the percent of the largest tier whose minimum the page
// count reaches. Single-page orders never get a discount.
func pageDiscount(tx *gorm.DB, pages int) (decimal.Decimal, error) {
	if pages <= 1 {
		return decimal.Zero, nil
	}

	var tier models.PageDiscount
	err := tx.Where("min_pages <= ?", pages).Order("min_pages DESC").Take(&tier).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load page discount for %d pages: %w", pages, err)
	}
	return tier.Percent, nil
}

// assignedWriter returns the writer bound to the order, nil if none is
func assignedWriter(tx *gorm.DB, orderID uint) (*models.Writer, error) {
	var assignment models.WriterOrder
	err := tx.Preload("Writer.User").Where("order_id = ?", orderID).Order("id").Take(&assignment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load writer of order %d: %w", orderID, err)
	}
	return assignment.Writer, nil
}
