package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/kendall-kelly/essay-orders-api/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PreferredWriters lists the writers the client has a confirmed connection with
func (s *OrderService) PreferredWriters(ctx context.Context, email string) ([]PreferredWriter, error) {
	db := s.db.WithContext(ctx)
	client, err := clientByEmail(db, email)
	if err != nil {
		return nil, err
	}

	writers := []PreferredWriter{}
	err = db.Table("client_writers").
		Select("writers.id AS writer_id, users.name AS name, users.email AS email, COALESCE(writer_average_ratings.average, 0) AS average_rating").
		Joins("JOIN writers ON writers.id = client_writers.writer_id").
		Joins("JOIN users ON users.id = writers.user_id AND users.deleted_at IS NULL").
		Joins("LEFT JOIN writer_average_ratings ON writer_average_ratings.writer_id = writers.id").
		Where("client_writers.client_id = ? AND client_writers.confirmed = ?", client.ID, true).
		Order("users.name").
		Scan(&writers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list preferred writers: %w", err)
	}
	return writers, nil
}

var validate = validator.New()

// InviteWriter records an invitation to an external writer. A writer email
// can only ever be invited once.
func (s *OrderService) InviteWriter(ctx context.Context, email, writerEmail string) (*InvitationResult, error) {
	writerEmail = models.NormalizeEmail(writerEmail)
	if err := validate.Var(writerEmail, "required,email"); err != nil {
		return nil, &ValidationError{Field: "writerEmail", Message: "must be a valid email address"}
	}

	alreadyInvited := &InvitationResult{Invited: false, Message: MessageAlreadyInvited}

	var result *InvitationResult
	err := s.transaction(ctx, func(tx *gorm.DB) error {
		client, err := clientByEmail(tx, email)
		if err != nil {
			return err
		}

		var existing int64
		if err := tx.Model(&models.WriterInvitation{}).Where("writer_email = ?", writerEmail).Count(&existing).Error; err != nil {
			return fmt.Errorf("failed to check invitation: %w", err)
		}
		if existing > 0 {
			result = alreadyInvited
			return nil
		}

		invitation := models.WriterInvitation{ClientID: client.ID, WriterEmail: writerEmail}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&invitation)
		if res.Error != nil {
			return fmt.Errorf("failed to save invitation: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			result = alreadyInvited
			return nil
		}
		result = &InvitationResult{Invited: true}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Writer invitation handled", zap.Bool("invited", result.Invited))
	return result, nil
}
