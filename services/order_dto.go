package services

import (
	"github.com/kendall-kelly/essay-orders-api/models"
	"github.com/shopspring/decimal"
)

// Result discriminators shared by several workflows
const (
	ResponseSuccess   = "success"
	ResponseNoOrderID = "no order ID"

	MessageOrderNotFound  = "Order does not exist"
	MessageItemNotFound   = "Item not found"
	MessageStatusNotSaved = "Order status could not be updated"
	MessageNotRevisable   = "Order is not eligible for revision"
	MessageBiddingClosed  = "Order is not open for bidding"
	MessageAlreadyInvited = "Writer already invited"
)

// PaymentPhase tells the payment workflow which funnel screen called it
type PaymentPhase string

const (
	PhasePlaceOrder PaymentPhase = "place-order"
	PhaseCheckOrder PaymentPhase = "check-order"
)

// Funnel steps recorded in client_order_posting_steps
const (
	StepOrderDetails = 1
	StepCheckout     = 3
)

// SupportingFile describes an uploaded file to attach to an order
type SupportingFile struct {
	FileURL      string `json:"fileUrl" binding:"required"`
	OriginalName string `json:"originalName" binding:"required"`
}

// PaymentSummary is the priced checkout the client agreed to
type PaymentSummary struct {
	CurrencyCode     string          `json:"currencyCode" binding:"required"`
	Extras           []uint          `json:"extrasList"`
	ExtrasTotalPrice decimal.Decimal `json:"extrasTotalPrice"`
	TotalPrice       decimal.Decimal `json:"totalPrice"`
	CostPerPage      decimal.Decimal `json:"cpp"`
}

// PlaceOrderRequest creates (OrderID == 0) or updates an order
type PlaceOrderRequest struct {
	Email            string           `json:"-"`
	OrderID          uint             `json:"orderId"`
	ServiceType      string           `json:"serviceType" binding:"required"`
	Type             string           `json:"type" binding:"required,oneof=public private"`
	DisciplineID     uint             `json:"subject" binding:"required"`
	AssignmentTypeID uint             `json:"assignmentType" binding:"required"`
	CitationStyleID  uint             `json:"citationStyle" binding:"required"`
	EducationLevelID uint             `json:"studyLevel" binding:"required"`
	DeadlineDate     string           `json:"deadlineDate" binding:"required"`
	DayTimeID        uint             `json:"deadlineTime" binding:"required"`
	Pages            int              `json:"pages" binding:"required,gt=0"`
	Sources          int              `json:"sources" binding:"gte=0"`
	Topic            string           `json:"topic" binding:"required"`
	Instructions     string           `json:"instructions"`
	Files            []SupportingFile `json:"files" binding:"dive"`
	Payment          PaymentSummary   `json:"payment" binding:"required"`
}

// PlaceOrderResult is returned by PlaceOrder
type PlaceOrderResult struct {
	Response string `json:"response"`
	OrderID  uint   `json:"orderId"`
	NewOrder bool   `json:"newOrder"`
}

// SavePaymentRequest records the checkout of an order.
// FallbackOrderID is used when OrderID is zero.
type SavePaymentRequest struct {
	Email           string         `json:"-"`
	OrderID         uint           `json:"orderId"`
	FallbackOrderID uint           `json:"fallbackOrderId"`
	Payment         PaymentSummary `json:"payment" binding:"required"`
}

// PaymentResult is {response:"success", newOrder:false} after an update,
// {response:"success", orderId} after a create and {response:"no order ID"}
// when there was nothing to attach the payment to.
type PaymentResult struct {
	Response string `json:"response"`
	OrderID  uint   `json:"orderId,omitempty"`
	NewOrder *bool  `json:"newOrder,omitempty"`
}

// StatusUpdateResult is returned by UpdateOrderStatus
type StatusUpdateResult struct {
	StatusUpdated       bool   `json:"statusUpdated"`
	WriterAlreadyChosen bool   `json:"writerAlreadyChosen"`
	Message             string `json:"message,omitempty"`
}

// ChecklistEntry is one aspect of a revision checklist
type ChecklistEntry struct {
	Selected bool   `json:"selected"`
	Value    string `json:"value"`
}

// RevisionDeadline is a date ("2006-01-02") and a time of day ("15:04") in UTC
type RevisionDeadline struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// RevisionRequest asks the writer to rework a delivered order
type RevisionRequest struct {
	Email     string                    `json:"-"`
	OrderID   uint                      `json:"-"`
	Checklist map[string]ChecklistEntry `json:"checklist" binding:"required"`
	Deadline  RevisionDeadline          `json:"deadline" binding:"required"`
	Files     []SupportingFile          `json:"files" binding:"dive"`
}

// RevisionResult is {success:true} or {success:false, message}
type RevisionResult struct {
	Success    bool   `json:"success"`
	RevisionID uint   `json:"revisionId,omitempty"`
	Message    string `json:"message,omitempty"`
}

// RatingResult reports either a new rating (Rated) or that the order had one (AlreadyRated)
type RatingResult struct {
	Rated        bool    `json:"rated"`
	AlreadyRated bool    `json:"alreadyRated"`
	WriterID     uint    `json:"writerId,omitempty"`
	Average      float64 `json:"average,omitempty"`
}

// OrderDetail is the full view of one order
type OrderDetail struct {
	Order               *models.Order                    `json:"order"`
	Writer              *models.Writer                   `json:"writer,omitempty"`
	Revisions           []models.OrderRevision           `json:"revisions,omitempty"`
	SubmissionChecklist []models.SubmissionChecklistItem `json:"submissionChecklist,omitempty"`
	Rated               bool                             `json:"rated"`
}

// ResumeResult is the "continue where you left off" projection.
// Only OrderExists is set when the client has no order; payment, writer,
// files and last step are only filled for unpaid orders.
type ResumeResult struct {
	OrderExists   bool                       `json:"orderExists"`
	Paid          bool                       `json:"paid"`
	Order         *models.Order              `json:"order,omitempty"`
	Discount      decimal.Decimal            `json:"discount"`
	PaymentDetail *models.OrderPaymentDetail `json:"paymentDetail,omitempty"`
	Writer        *models.Writer             `json:"writer,omitempty"`
	Files         []models.OrderFile         `json:"files,omitempty"`
	LastStep      int                        `json:"lastStep,omitempty"`
}

// DeleteFileResult is {itemDeleted:true} or {itemDeleted:false, message:"Item not found"}
type DeleteFileResult struct {
	ItemDeleted bool   `json:"itemDeleted"`
	Message     string `json:"message,omitempty"`
}

// BidResult is returned by PlaceBid
type BidResult struct {
	Placed  bool   `json:"placed"`
	BidID   uint   `json:"bidId,omitempty"`
	Message string `json:"message,omitempty"`
}

// ConfirmPaymentRequest records a settled payment from the payment provider
type ConfirmPaymentRequest struct {
	Email        string          `json:"-"`
	OrderID      uint            `json:"-"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode string          `json:"currencyCode" binding:"required"`
	Reference    string          `json:"reference" binding:"required"`
}

// ConfirmPaymentResult is returned by ConfirmClientPayment
type ConfirmPaymentResult struct {
	Recorded      bool   `json:"recorded"`
	StatusUpdated bool   `json:"statusUpdated"`
	Message       string `json:"message,omitempty"`
}

// PreferredWriter is a writer the client has a confirmed connection with
type PreferredWriter struct {
	WriterID      uint    `json:"writerId"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	AverageRating float64 `json:"averageRating"`
}

// InvitationResult is returned by InviteWriter
type InvitationResult struct {
	Invited bool   `json:"invited"`
	Message string `json:"message,omitempty"`
}
