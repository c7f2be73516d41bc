package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/kendall-kelly/essay-orders-api/models"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const deadlineLayout = "2006-01-02 15:04"

// RequestRevision asks the writer to rework an order the client owns.
// Only the checklist entries marked selected become instructions.
func (s *OrderService) RequestRevision(ctx context.Context, req RevisionRequest) (*RevisionResult, error) {
	deadline, err := time.ParseInLocation(deadlineLayout,
		strings.TrimSpace(req.Deadline.Date)+" "+strings.TrimSpace(req.Deadline.Time), time.UTC)
	if err != nil {
		return nil, &ValidationError{Field: "deadline", Message: "date must be YYYY-MM-DD and time HH:MM"}
	}

	instructions := make(map[string]string)
	for aspect, entry := range req.Checklist {
		if entry.Selected {
			instructions[aspect] = entry.Value
		}
	}
	encoded, err := json.Marshal(instructions)
	if err != nil {
		return nil, fmt.Errorf("failed to encode revision instructions: %w", err)
	}

	var result *RevisionResult
	err = s.transaction(ctx, func(tx *gorm.DB) error {
		client, err := clientByEmail(tx, req.Email)
		if err != nil {
			return err
		}
		order, err := orderForClient(tx, client.ID, req.OrderID)
		if err != nil {
			return err
		}
		if order == nil {
			result = &RevisionResult{Success: false, Message: MessageOrderNotFound}
			return nil
		}
		if order.Status == nil || !models.IsRevisableStatus(order.Status.Name) {
			result = &RevisionResult{Success: false, Message: MessageNotRevisable}
			return nil
		}

		if len(req.Files) > 0 {
			fileType, err := fileTypeByName(tx, models.FileTypeRevisionSupporting)
			if err != nil {
				return err
			}
			if _, err := attachFiles(tx, order.ID, fileType.ID, client.UserID, req.Files, false); err != nil {
				return err
			}
		}

		if order.Status.Name != models.StatusUndergoingRevision {
			if _, err := setOrderStatus(tx, order.ID, models.StatusUndergoingRevision); err != nil {
				return err
			}
		}

		revision := models.OrderRevision{
			OrderID:      order.ID,
			Instructions: datatypes.JSON(encoded),
			Deadline:     deadline,
			CreatedBy:    client.UserID,
			Submitted:    false,
		}
		if err := tx.Create(&revision).Error; err != nil {
			return fmt.Errorf("failed to create revision for order %d: %w", order.ID, err)
		}

		result = &RevisionResult{Success: true, RevisionID: revision.ID}
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to request revision", zap.Uint("order_id", req.OrderID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Revision requested",
		zap.Uint("order_id", req.OrderID),
		zap.Bool("success", result.Success),
		zap.Int("instructions", len(instructions)),
	)
	return result, nil
}
