package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"office-experiment/dutyboard/internal/constants"
	models "office-experiment/dutyboard/internal/models/gorm"
)

// DutyRepository owns the completion-toggle mutations on duty_assignments.
// Assignment creation lives in the rotation selector, outside this service.
type DutyRepository struct {
	db *gorm.DB
}

func NewDutyRepository(db *gorm.DB) *DutyRepository {
	return &DutyRepository{db: db}
}

// MarkCompleted flips an assignment to completed and stamps completed_at.
// Guarded: a second completion of the same row is rejected, not absorbed.
func (r *DutyRepository) MarkCompleted(ctx context.Context, id int, dutyType constants.DutyType) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var assignment models.DutyAssignment
		err := tx.Where("id = ? AND duty_type = ?", id, dutyType).First(&assignment).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to load %s duty %d: %w", dutyType, id, err)
		}

		if assignment.Completed {
			return ErrAlreadyCompleted
		}

		now := time.Now()
		err = tx.Model(&assignment).
			Select("completed", "completed_at").
			Updates(map[string]interface{}{
				"completed":    true,
				"completed_at": &now,
			}).Error
		if err != nil {
			return fmt.Errorf("failed to complete %s duty %d: %w", dutyType, id, err)
		}
		return nil
	})
}

// MarkUncompleted is the symmetric toggle: clears the flag and the timestamp.
func (r *DutyRepository) MarkUncompleted(ctx context.Context, id int, dutyType constants.DutyType) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var assignment models.DutyAssignment
		err := tx.Where("id = ? AND duty_type = ?", id, dutyType).First(&assignment).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to load %s duty %d: %w", dutyType, id, err)
		}

		if !assignment.Completed {
			return ErrNotCompleted
		}

		err = tx.Model(&assignment).
			Select("completed", "completed_at").
			Updates(map[string]interface{}{
				"completed":    false,
				"completed_at": nil,
			}).Error
		if err != nil {
			return fmt.Errorf("failed to uncomplete %s duty %d: %w", dutyType, id, err)
		}
		return nil
	})
}
