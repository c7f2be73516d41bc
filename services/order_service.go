package services

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OrderService runs the order lifecycle workflows. It holds no state of its
// own beyond its dependencies; every workflow runs in one transaction and
// passes the transaction handle to the helpers it calls.
type OrderService struct {
	db     *gorm.DB
	logger *zap.Logger
}

var orderServiceInstance *OrderService

// NewOrderService creates an order service backed by db
func NewOrderService(db *gorm.DB, logger *zap.Logger) *OrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderService{db: db, logger: logger}
}

// InitOrderService creates the order service instance used by the controllers
func InitOrderService(db *gorm.DB, logger *zap.Logger) *OrderService {
	orderServiceInstance = NewOrderService(db, logger)
	return orderServiceInstance
}

// GetOrderService returns the initialized order service instance
func GetOrderService() *OrderService {
	return orderServiceInstance
}

// SetOrderService sets the order service instance (primarily for testing)
func SetOrderService(service *OrderService) {
	orderServiceInstance = service
}

// transaction runs fn in a single database transaction; any error rolls back every write.
func (s *OrderService) transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return s.db.WithContext(ctx).Transaction(fn)
}

// ClientIDByEmail resolves the client id for an email address (case-insensitive)
func (s *OrderService) ClientIDByEmail(ctx context.Context, email string) (uint, error) {
	client, err := clientByEmail(s.db.WithContext(ctx), email)
	if err != nil {
		return 0, err
	}
	return client.ID, nil
}
