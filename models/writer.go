package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OrderBid is a writer's offer on a public order
type OrderBid struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	OrderID    uint            `gorm:"not null;uniqueIndex:idx_order_bids_order_writer" json:"order_id"`
	WriterID   uint            `gorm:"not null;uniqueIndex:idx_order_bids_order_writer" json:"writer_id"`
	Amount     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Successful bool            `gorm:"not null;default:false" json:"successful"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// TableName specifies the table name for the OrderBid model
func (OrderBid) TableName() string {
	return "order_bids"
}

// WriterOrder binds a writer to an order
type WriterOrder struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderID   uint      `gorm:"not null;uniqueIndex:idx_writer_orders_order_writer" json:"order_id"`
	WriterID  uint      `gorm:"not null;uniqueIndex:idx_writer_orders_order_writer" json:"writer_id"`
	Writer    *Writer   `gorm:"foreignKey:WriterID" json:"writer,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for the WriterOrder model
func (WriterOrder) TableName() string {
	return "writer_orders"
}

// OrderRevision is a client's request to rework a submitted paper.
// Instructions holds a JSON object mapping checklist aspect to instruction text.
type OrderRevision struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	OrderID      uint           `gorm:"not null;index" json:"order_id"`
	Instructions datatypes.JSON `gorm:"not null" json:"instructions"`
	Deadline     time.Time      `gorm:"not null" json:"deadline"`
	CreatedBy    uint           `gorm:"not null" json:"created_by"`
	Submitted    bool           `gorm:"not null;default:false" json:"submitted"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the OrderRevision model
func (OrderRevision) TableName() string {
	return "order_revisions"
}

// WriterRating is the client's rating of the writer for one order
type WriterRating struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderID   uint      `gorm:"not null;uniqueIndex" json:"order_id"`
	WriterID  uint      `gorm:"not null;index" json:"writer_id"`
	Rating    float64   `gorm:"not null" json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for the WriterRating model
func (WriterRating) TableName() string {
	return "writer_ratings"
}

// WriterAverageRating is the running mean of a writer's ratings
type WriterAverageRating struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	WriterID  uint      `gorm:"not null;uniqueIndex" json:"writer_id"`
	Average   float64   `gorm:"not null" json:"average"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the WriterAverageRating model
func (WriterAverageRating) TableName() string {
	return "writer_average_ratings"
}

// ClientWriter is a confirmed connection between a client and a writer
type ClientWriter struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ClientID  uint      `gorm:"not null;uniqueIndex:idx_client_writers_pair" json:"client_id"`
	WriterID  uint      `gorm:"not null;uniqueIndex:idx_client_writers_pair" json:"writer_id"`
	Writer    *Writer   `gorm:"foreignKey:WriterID" json:"writer,omitempty"`
	Confirmed bool      `gorm:"not null;default:false" json:"confirmed"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for the ClientWriter model
func (ClientWriter) TableName() string {
	return "client_writers"
}

// WriterInvitation is a client's pending invite of an external writer
type WriterInvitation struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ClientID    uint      `gorm:"not null;index" json:"client_id"`
	WriterEmail string    `gorm:"not null;uniqueIndex" json:"writer_email"`
	Accepted    bool      `gorm:"not null;default:false" json:"accepted"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name for the WriterInvitation model
func (WriterInvitation) TableName() string {
	return "writer_invitations"
}
