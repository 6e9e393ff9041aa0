package services

import (
	"context"
	"errors"

	"office-experiment/dutyboard/internal/common"
	"office-experiment/dutyboard/internal/logging"
	"office-experiment/dutyboard/internal/metrics"
	"office-experiment/dutyboard/internal/models/dtos"
	gormModels "office-experiment/dutyboard/internal/models/gorm"
)

// ErrInvalidUsername is returned when a username is empty after normalization.
var ErrInvalidUsername = errors.New("username must not be empty")

// MemberStore is the persistence contract for the roster.
type MemberStore interface {
	ListActive(ctx context.Context, coffeeDrinkersOnly bool) ([]gormModels.Member, error)
	Insert(ctx context.Context, member *gormModels.Member) error
	Update(ctx context.Context, member *gormModels.Member) error
	Deactivate(ctx context.Context, id int) error
}

// MemberService implements roster management: list, add, update, deactivate.
type MemberService struct {
	store   MemberStore
	metrics *metrics.MetricsRegistry
}

func NewMemberService(store MemberStore, metricsReg *metrics.MetricsRegistry) *MemberService {
	return &MemberService{
		store:   store,
		metrics: metricsReg,
	}
}

// ListActive returns active members, optionally only coffee drinkers.
func (s *MemberService) ListActive(ctx context.Context, coffeeDrinkersOnly bool) ([]dtos.MemberResponse, error) {
	members, err := s.store.ListActive(ctx, coffeeDrinkersOnly)
	if err != nil {
		return nil, err
	}

	if !coffeeDrinkersOnly && s.metrics != nil {
		s.metrics.MembersActive.Set(float64(len(members)))
	}

	responses := make([]dtos.MemberResponse, 0, len(members))
	for _, m := range members {
		responses = append(responses, toMemberResponse(&m))
	}
	return responses, nil
}

// Add creates a new active member. The username is normalized before the
// uniqueness check so "@Bob" and "bob" collide.
func (s *MemberService) Add(ctx context.Context, req dtos.AddMemberReq) error {
	username := common.NormalizeUsername(req.Username)
	if username == "" {
		return ErrInvalidUsername
	}

	member := &gormModels.Member{
		Username:      username,
		FullName:      normalizeFullName(req.FullName),
		CoffeeDrinker: boolOrDefault(req.CoffeeDrinker, true),
		Active:        true,
	}

	if err := s.store.Insert(ctx, member); err != nil {
		return err
	}

	logging.Info("Added new office member", "username", member.Username, "id", member.ID)
	return nil
}

// Update replaces all mutable fields of a member, applying the same
// normalization rules as Add.
func (s *MemberService) Update(ctx context.Context, req dtos.UpdateMemberReq) error {
	username := common.NormalizeUsername(req.Username)
	if username == "" {
		return ErrInvalidUsername
	}

	member := &gormModels.Member{
		ID:            req.ID,
		Username:      username,
		FullName:      normalizeFullName(req.FullName),
		CoffeeDrinker: boolOrDefault(req.CoffeeDrinker, true),
		Active:        boolOrDefault(req.Active, true),
	}

	if err := s.store.Update(ctx, member); err != nil {
		return err
	}

	logging.Info("Updated office member", "username", member.Username, "id", member.ID)
	return nil
}

// Deactivate soft-deletes a member by id.
func (s *MemberService) Deactivate(ctx context.Context, id int) error {
	if err := s.store.Deactivate(ctx, id); err != nil {
		return err
	}

	logging.Info("Deactivated office member", "id", id)
	return nil
}

func boolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func normalizeFullName(name *string) *string {
	if name == nil || *name == "" {
		return nil
	}
	capitalized := common.CapitalizeName(*name)
	return &capitalized
}

func toMemberResponse(m *gormModels.Member) dtos.MemberResponse {
	return dtos.MemberResponse{
		ID:            m.ID,
		Username:      m.Username,
		FullName:      m.FullName,
		CoffeeDrinker: m.CoffeeDrinker,
		Active:        m.Active,
	}
}
