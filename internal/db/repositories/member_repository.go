package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	models "office-experiment/dutyboard/internal/models/gorm"
)

// MemberRepository owns all reads and writes against the members table.
type MemberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// ListActive returns active members, optionally restricted to coffee drinkers.
func (r *MemberRepository) ListActive(ctx context.Context, coffeeDrinkersOnly bool) ([]models.Member, error) {
	query := r.db.WithContext(ctx).Where("active = ?", true)
	if coffeeDrinkersOnly {
		query = query.Where("coffee_drinker = ?", true)
	}

	var members []models.Member
	if err := query.Order("id").Find(&members).Error; err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}

// FindByID returns a single member regardless of active status.
func (r *MemberRepository) FindByID(ctx context.Context, id int) (*models.Member, error) {
	var member models.Member
	err := r.db.WithContext(ctx).First(&member, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find member %d: %w", id, err)
	}
	return &member, nil
}

// Insert creates a new member. The unique index on username covers active
// and inactive members alike.
func (r *MemberRepository) Insert(ctx context.Context, member *models.Member) error {
	err := r.db.WithContext(ctx).Create(member).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateUsername
	}
	if err != nil {
		return fmt.Errorf("failed to insert member: %w", err)
	}
	return nil
}

// Update replaces every mutable field of an existing member by id.
func (r *MemberRepository) Update(ctx context.Context, member *models.Member) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Member
		if err := tx.First(&existing, member.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load member %d: %w", member.ID, err)
		}

		err := tx.Model(&existing).
			Select("username", "full_name", "coffee_drinker", "active").
			Updates(map[string]interface{}{
				"username":       member.Username,
				"full_name":      member.FullName,
				"coffee_drinker": member.CoffeeDrinker,
				"active":         member.Active,
			}).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateUsername
		}
		if err != nil {
			return fmt.Errorf("failed to update member %d: %w", member.ID, err)
		}
		return nil
	})
}

// Deactivate soft-deletes a member. Members are never hard-deleted because
// duty history must remain attributable.
func (r *MemberRepository) Deactivate(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var member models.Member
		if err := tx.First(&member, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load member %d: %w", id, err)
		}

		if !member.Active {
			return ErrAlreadyInactive
		}

		if err := tx.Model(&member).Update("active", false).Error; err != nil {
			return fmt.Errorf("failed to deactivate member %d: %w", id, err)
		}
		return nil
	})
}
