package models

import (
	"time"

	"gorm.io/gorm"
)

// Order statuses as stored in order_statuses.name
const (
	StatusAvailable              = "Available"
	StatusBiddingOngoing         = "Bidding ongoing"
	StatusPendingPayment         = "Pending payment"
	StatusPendingAcknowledgement = "Pending writer acknowledgement"
	StatusOngoing                = "Ongoing"
	StatusSubmitted              = "Submitted"
	StatusCompleted              = "Completed"
	StatusUndergoingRevision     = "Undergoing revision"
	StatusCancelled              = "Cancelled"
)

// Order visibility, stored in order_types.name
const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

// File types, stored in file_types.name
const (
	FileTypeClientSupporting   = "Client Supporting"
	FileTypeRevisionSupporting = "Revision Supporting"
	FileTypeSubmittedPaper     = "Submitted Paper"
)

// RevisableStatuses are the statuses for which a client may request a revision
var RevisableStatuses = []string{
	StatusCompleted,
	StatusSubmitted,
	StatusUndergoingRevision,
}

// UnpaidStatuses are the statuses in which an order is not yet paid for
var UnpaidStatuses = []string{
	StatusPendingPayment,
	StatusPendingAcknowledgement,
	StatusAvailable,
	StatusBiddingOngoing,
}

// IsRevisableStatus reports whether status is in RevisableStatuses
func IsRevisableStatus(status string) bool {
	return containsStatus(RevisableStatuses, status)
}

// IsUnpaidStatus reports whether status is in UnpaidStatuses
func IsUnpaidStatus(status string) bool {
	return containsStatus(UnpaidStatuses, status)
}

func containsStatus(set []string, status string) bool {
	for _, s := range set {
		if s == status {
			return true
		}
	}
	return false
}

// Order is a client's request for a paper
type Order struct {
	ID               uint                `gorm:"primaryKey" json:"id"`
	ClientID         uint                `gorm:"not null;index" json:"client_id"`
	Client           *Client             `gorm:"foreignKey:ClientID" json:"-"`
	ServiceTypeID    uint                `gorm:"not null" json:"service_type_id"`
	ServiceType      *ServiceType        `gorm:"foreignKey:ServiceTypeID" json:"service_type,omitempty"`
	OrderTypeID      uint                `gorm:"not null" json:"order_type_id"`
	OrderType        *OrderType          `gorm:"foreignKey:OrderTypeID" json:"order_type,omitempty"`
	StatusID         uint                `gorm:"not null;index" json:"status_id"`
	Status           *OrderStatus        `gorm:"foreignKey:StatusID" json:"status,omitempty"`
	DisciplineID     uint                `gorm:"not null" json:"discipline_id"`
	Discipline       *Discipline         `gorm:"foreignKey:DisciplineID" json:"discipline,omitempty"`
	AssignmentTypeID uint                `gorm:"not null" json:"assignment_type_id"`
	AssignmentType   *AssignmentType     `gorm:"foreignKey:AssignmentTypeID" json:"assignment_type,omitempty"`
	CitationStyleID  uint                `gorm:"not null" json:"citation_style_id"`
	CitationStyle    *CitationStyle      `gorm:"foreignKey:CitationStyleID" json:"citation_style,omitempty"`
	FormatID         uint                `gorm:"not null" json:"format_id"`
	Format           *OrderFormat        `gorm:"foreignKey:FormatID" json:"format,omitempty"`
	EducationLevelID uint                `gorm:"not null" json:"education_level_id"`
	EducationLevel   *EducationLevel     `gorm:"foreignKey:EducationLevelID" json:"education_level,omitempty"`
	DeadlineDate     time.Time           `gorm:"not null" json:"deadline_date"`
	DayTimeID        uint                `gorm:"not null" json:"day_time_id"`
	DayTime          *DayTime            `gorm:"foreignKey:DayTimeID" json:"day_time,omitempty"`
	Pages            int                 `gorm:"not null;check:pages > 0" json:"pages"`
	Sources          int                 `gorm:"not null;default:0" json:"sources"`
	Topic            string              `gorm:"not null" json:"topic"`
	Instructions     string              `gorm:"type:text" json:"instructions"`
	Files            []OrderFile         `gorm:"foreignKey:OrderID" json:"files,omitempty"`
	PaymentDetail    *OrderPaymentDetail `gorm:"foreignKey:OrderID" json:"payment_detail,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
	DeletedAt        gorm.DeletedAt      `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderFile is file metadata attached to an order; rows are only ever soft-deleted
type OrderFile struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	OrderID    uint           `gorm:"not null;index" json:"order_id"`
	FileTypeID uint           `gorm:"not null" json:"file_type_id"`
	FileType   *FileType      `gorm:"foreignKey:FileTypeID" json:"file_type,omitempty"`
	FileURL    string         `gorm:"not null" json:"file_url"`
	FileName   string         `gorm:"size:50;not null" json:"file_name"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the OrderFile model
func (OrderFile) TableName() string {
	return "order_files"
}

// ClientOrderPostingStep tracks how far a client got through the order funnel
type ClientOrderPostingStep struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ClientID  uint      `gorm:"not null;index" json:"client_id"`
	OrderID   uint      `gorm:"not null;index" json:"order_id"`
	LastStep  int       `gorm:"not null" json:"last_step"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the ClientOrderPostingStep model
func (ClientOrderPostingStep) TableName() string {
	return "client_order_posting_steps"
}
