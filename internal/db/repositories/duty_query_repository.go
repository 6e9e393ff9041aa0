package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"office-experiment/dutyboard/internal/constants"
	"office-experiment/dutyboard/internal/models/entities"
)

// DutyQueryRepository serves the read side of the duty API with raw SQL joins
// over sqlx. Mutations go through DutyRepository.
type DutyQueryRepository struct {
	db *sqlx.DB
}

func NewDutyQueryRepository(db *sqlx.DB) *DutyQueryRepository {
	return &DutyQueryRepository{db: db}
}

// ListForActiveMembers returns duties of active members, newest first.
func (r *DutyQueryRepository) ListForActiveMembers(ctx context.Context, limit int) ([]entities.DutyWithMember, error) {
	var duties []entities.DutyWithMember
	if err := r.db.SelectContext(ctx, &duties, constants.ListDutiesForActiveMembers, limit); err != nil {
		return nil, fmt.Errorf("failed to list duties: %w", err)
	}
	return duties, nil
}

// MostRecentByType returns the single newest assignment of a duty type,
// including assignments of deactivated members.
func (r *DutyQueryRepository) MostRecentByType(ctx context.Context, dutyType constants.DutyType) (*entities.DutyWithMember, error) {
	var duty entities.DutyWithMember
	err := r.db.GetContext(ctx, &duty, constants.MostRecentDutyByType, dutyType)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch most recent %s duty: %w", dutyType, err)
	}
	return &duty, nil
}
