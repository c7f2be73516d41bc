package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatusSuccess marks a settled client payment
const PaymentStatusSuccess = "Success"

// OrderPaymentDetail is the priced summary of an order, one per order
type OrderPaymentDetail struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	OrderID     uint            `gorm:"not null;uniqueIndex" json:"order_id"`
	CurrencyID  uint            `gorm:"not null" json:"currency_id"`
	Currency    *Currency       `gorm:"foreignKey:CurrencyID" json:"currency,omitempty"`
	Extras      []Extra         `gorm:"many2many:order_payment_extras;" json:"extras"`
	ExtrasTotal decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"extras_total"`
	Total       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total"`
	CostPerPage decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"cost_per_page"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TableName specifies the table name for the OrderPaymentDetail model
func (OrderPaymentDetail) TableName() string {
	return "order_payment_details"
}

// ClientPayment is a payment made by a client against an order
type ClientPayment struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	OrderID    uint            `gorm:"not null;index" json:"order_id"`
	ClientID   uint            `gorm:"not null;index" json:"client_id"`
	CurrencyID uint            `gorm:"not null" json:"currency_id"`
	Amount     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Status     string          `gorm:"not null" json:"status"`
	Reference  string          `json:"reference"`
	CreatedAt  time.Time       `json:"created_at"`
}

// TableName specifies the table name for the ClientPayment model
func (ClientPayment) TableName() string {
	return "client_payments"
}
