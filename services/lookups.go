package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kendall-kelly/essay-orders-api/models"
	"gorm.io/gorm"
)

// findBy loads the single row of T whose column equals value.
func findBy[T any](tx *gorm.DB, entity, column string, value interface{}) (*T, error) {
	var row T
	if err := tx.Where(column+" = ?", value).Take(&row).Error; err != nil {
		return nil, lookupError(entity, value, err)
	}
	return &row, nil
}

// clientByEmail resolves the client profile of the user with the given email.
// The match is case-insensitive and backed by idx_users_email_lower.
func clientByEmail(tx *gorm.DB, email string) (*models.Client, error) {
	var client models.Client
	err := tx.Joins("JOIN users ON users.id = clients.user_id AND users.deleted_at IS NULL").
		Where("LOWER(users.email) = ?", models.NormalizeEmail(email)).
		Take(&client).Error
	if err != nil {
		return nil, lookupError("client", email, err)
	}
	return &client, nil
}

func writerByUserID(tx *gorm.DB, userID uint) (*models.Writer, error) {
	return findBy[models.Writer](tx, "writer for user", "user_id", userID)
}

func statusByName(tx *gorm.DB, name string) (*models.OrderStatus, error) {
	return findBy[models.OrderStatus](tx, "order status", "name", name)
}

func fileTypeByName(tx *gorm.DB, name string) (*models.FileType, error) {
	return findBy[models.FileType](tx, "file type", "name", name)
}

func currencyByCode(tx *gorm.DB, code string) (*models.Currency, error) {
	return findBy[models.Currency](tx, "currency", "code", strings.ToUpper(strings.TrimSpace(code)))
}

func inUseFormat(tx *gorm.DB) (*models.OrderFormat, error) {
	return findBy[models.OrderFormat](tx, "order format", "in_use", true)
}

// extrasByIDs loads the extras catalog rows for ids. Every id must exist.
func extrasByIDs(tx *gorm.DB, ids []uint) ([]models.Extra, error) {
	unique := make([]uint, 0, len(ids))
	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	if len(unique) == 0 {
		return nil, nil
	}

	var extras []models.Extra
	if err := tx.Where("id IN ?", unique).Order("id").Find(&extras).Error; err != nil {
		return nil, fmt.Errorf("failed to load extras: %w", err)
	}
	if len(extras) != len(unique) {
		return nil, &LookupError{Entity: "extra", Key: unique}
	}
	return extras, nil
}

// orderForClient returns the order if it belongs to clientID, nil otherwise.
func orderForClient(tx *gorm.DB, clientID, orderID uint) (*models.Order, error) {
	var order models.Order
	err := tx.Preload("Status").Preload("OrderType").
		Where("id = ? AND client_id = ?", orderID, clientID).
		Take(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load order %d: %w", orderID, err)
	}
	return &order, nil
}

// setOrderStatus moves the order to the named status and reports rows affected.
func setOrderStatus(tx *gorm.DB, orderID uint, statusName string) (int64, error) {
	status, err := statusByName(tx, statusName)
	if err != nil {
		return 0, err
	}
	result := tx.Model(&models.Order{}).Where("id = ?", orderID).Update("status_id", status.ID)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update status of order %d: %w", orderID, result.Error)
	}
	return result.RowsAffected, nil
}
