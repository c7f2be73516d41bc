package models

import (
	"fmt"

	"gorm.io/gorm"
)

// All lists every model in dependency order for auto-migration
func All() []interface{} {
	return []interface{}{
		&Country{},
		&Discipline{},
		&AssignmentType{},
		&EducationLevel{},
		&CitationStyle{},
		&OrderFormat{},
		&Gender{},
		&DayTime{},
		&GrammarQuestion{},
		&Currency{},
		&ServiceType{},
		&OrderType{},
		&OrderStatus{},
		&FileType{},
		&PageDiscount{},
		&SubmissionChecklistItem{},
		&Extra{},
		&User{},
		&Client{},
		&Writer{},
		&Order{},
		&OrderFile{},
		&ClientOrderPostingStep{},
		&OrderPaymentDetail{},
		&ClientPayment{},
		&OrderBid{},
		&WriterOrder{},
		&OrderRevision{},
		&WriterRating{},
		&WriterAverageRating{},
		&ClientWriter{},
		&WriterInvitation{},
	}
}

// AutoMigrate creates or updates the schema for every model
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(All()...); err != nil {
		return err
	}
	// one account per email regardless of case
	if err := db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email_lower ON users (LOWER(email))").Error; err != nil {
		return fmt.Errorf("failed to create case-insensitive email index: %w", err)
	}
	return nil
}
