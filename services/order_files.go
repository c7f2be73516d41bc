package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/kendall-kelly/essay-orders-api/models"
	"github.com/kendall-kelly/essay-orders-api/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// attachFiles records supporting files uploaded by uploaderID against an
// order. With skipAttached, a file whose URL is already attached to the order
// under the same type is left alone. Returns the number of rows created.
func attachFiles(tx *gorm.DB, orderID, fileTypeID, uploaderID uint, files []SupportingFile, skipAttached bool) (int, error) {
	attached := 0
	for _, f := range files {
		if !OwnsDocument(uploaderID, f.FileURL) {
			return attached, &ValidationError{Field: "files", Message: fmt.Sprintf("%q was not uploaded by this user", f.FileURL)}
		}
		if skipAttached {
			var count int64
			err := tx.Model(&models.OrderFile{}).
				Where("order_id = ? AND file_url = ? AND file_type_id = ?", orderID, f.FileURL, fileTypeID).
				Count(&count).Error
			if err != nil {
				return attached, fmt.Errorf("failed to check attached files: %w", err)
			}
			if count > 0 {
				continue
			}
		}

		file := models.OrderFile{
			OrderID:    orderID,
			FileTypeID: fileTypeID,
			FileURL:    f.FileURL,
			FileName:   utils.SanitizeFileName(f.OriginalName),
		}
		if err := tx.Create(&file).Error; err != nil {
			return attached, fmt.Errorf("failed to attach file %q: %w", f.FileURL, err)
		}
		attached++
	}
	return attached, nil
}

// DeleteOrderFile soft-deletes a file attached to one of the client's orders
func (s *OrderService) DeleteOrderFile(ctx context.Context, email string, orderID, fileID uint) (*DeleteFileResult, error) {
	var result *DeleteFileResult

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
			result = &DeleteFileResult{ItemDeleted: false, Message: MessageItemNotFound}
			return nil
		}

		var file models.OrderFile
		err = tx.Where("id = ? AND order_id = ?", fileID, order.ID).Take(&file).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			result = &DeleteFileResult{ItemDeleted: false, Message: MessageItemNotFound}
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to load file %d: %w", fileID, err)
		}

		if err := tx.Delete(&file).Error; err != nil {
			return fmt.Errorf("failed to delete file %d: %w", fileID, err)
		}
		result = &DeleteFileResult{ItemDeleted: true}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Order file delete handled",
		zap.Uint("order_id", orderID),
		zap.Uint("file_id", fileID),
		zap.Bool("deleted", result.ItemDeleted),
	)
	return result, nil
}

// CanReadDocument reports whether userID may download key: the uploader, or
// the client or an assigned writer of an order the file is attached to.
func (s *OrderService) CanReadDocument(ctx context.Context, userID uint, key string) (bool, error) {
	if OwnsDocument(userID, key) {
		return true, nil
	}

	var count int64
	err := s.db.WithContext(ctx).Model(&models.OrderFile{}).
		Joins("JOIN orders ON orders.id = order_files.order_id AND orders.deleted_at IS NULL").
		Joins("JOIN clients ON clients.id = orders.client_id").
		Joins("LEFT JOIN writer_orders ON writer_orders.order_id = orders.id").
		Joins("LEFT JOIN writers ON writers.id = writer_orders.writer_id").
		Where("order_files.file_url = ?", key).
		Where("(clients.user_id = ? OR writers.user_id = ?)", userID, userID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check access to %q: %w", key, err)
	}
	return count > 0, nil
}

// DocumentAttached reports whether key was ever attached to an order,
// including files that were since soft-deleted.
func (s *OrderService) DocumentAttached(ctx context.Context, key string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Unscoped().Model(&models.OrderFile{}).
		Where("file_url = ?", key).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check attachments of %q: %w", key, err)
	}
	return count > 0, nil
}
