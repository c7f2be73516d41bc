package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Reference tables are seeded once and only read by the order workflows.

type Country struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
	Code string `gorm:"size:2" json:"code"`
}

func (Country) TableName() string { return "countries" }

// Discipline is the subject area of an order
type Discipline struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

func (Discipline) TableName() string { return "disciplines" }

type AssignmentType struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

func (AssignmentType) TableName() string { return "assignment_types" }

type EducationLevel struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

func (EducationLevel) TableName() string { return "education_levels" }

type CitationStyle struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

func (CitationStyle) TableName() string { return "citation_styles" }

// OrderFormat is a paper format; exactly one row is flagged InUse for new orders
type OrderFormat struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"uniqueIndex;not null" json:"name"`
	InUse bool   `gorm:"not null;default:false" json:"in_use"`
}

func (OrderFormat) TableName() string { return "order_formats" }

type Gender struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

func (Gender) TableName() string { return "genders" }

// DayTime is a selectable time of day for deadlines, Value is "HH:MM"
type DayTime struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Label string `gorm:"not null" json:"label"`
	Value string `gorm:"uniqueIndex;not null;size:5" json:"value"`
}

func (DayTime) TableName() string { return "day_times" }

// GrammarQuestion belongs to the pool writers are quizzed from
type GrammarQuestion struct {
	ID       uint           `gorm:"primaryKey" json:"id"`
	Question string         `gorm:"type:text;uniqueIndex;not null" json:"question"`
	Options  datatypes.JSON `json:"options"`
	Answer   string         `gorm:"not null" json:"-"`
}

func (GrammarQuestion) TableName() string { return "grammar_questions" }

type Currency struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Code   string `gorm:"uniqueIndex;not null;size:3" json:"code"`
	Symbol string `json:"symbol"`
}

func (Currency) TableName() string { return "currencies" }

type ServiceType struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

func (ServiceType) TableName() string { return "service_types" }

// OrderType is the visibility of an order: "public" or "private"
type OrderType struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

func (OrderType) TableName() string { return "order_types" }

type OrderStatus struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

func (OrderStatus) TableName() string { return "order_statuses" }

type FileType struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

func (FileType) TableName() string { return "file_types" }

// PageDiscount applies Percent to orders with at least MinPages pages
type PageDiscount struct {
	ID       uint            `gorm:"primaryKey" json:"id"`
	MinPages int             `gorm:"uniqueIndex;not null" json:"min_pages"`
	Percent  decimal.Decimal `gorm:"type:numeric(5,2);not null" json:"percent"`
}

func (PageDiscount) TableName() string { return "page_discounts" }

// SubmissionChecklistItem is one aspect a client can flag when requesting a revision
type SubmissionChecklistItem struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Aspect      string `gorm:"uniqueIndex;not null" json:"aspect"`
	Description string `gorm:"type:text" json:"description"`
}

func (SubmissionChecklistItem) TableName() string { return "submission_checklist_items" }

// Extra is a purchasable add-on (plagiarism report, top writer...)
type Extra struct {
	ID    uint            `gorm:"primaryKey" json:"id"`
	Name  string          `gorm:"uniqueIndex;not null" json:"name"`
	Price decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
}

func (Extra) TableName() string { return "extras" }
