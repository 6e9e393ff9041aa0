package services

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"golang.org/x/sync/singleflight"

	"office-experiment/dutyboard/internal/common"
	"office-experiment/dutyboard/internal/constants"
	"office-experiment/dutyboard/internal/logging"
	"office-experiment/dutyboard/internal/metrics"
	"office-experiment/dutyboard/internal/models/dtos"
	"office-experiment/dutyboard/internal/models/entities"
)

// Cached recent-duty entries expire after an hour as a fallback; toggles
// invalidate them proactively.
const recentDutyTTL = time.Hour

// DutyReader is the read side of the duty store (sqlx joins).
type DutyReader interface {
	ListForActiveMembers(ctx context.Context, limit int) ([]entities.DutyWithMember, error)
	MostRecentByType(ctx context.Context, dutyType constants.DutyType) (*entities.DutyWithMember, error)
}

// DutyToggler is the mutation side of the duty store (GORM transactions).
type DutyToggler interface {
	MarkCompleted(ctx context.Context, id int, dutyType constants.DutyType) error
	MarkUncompleted(ctx context.Context, id int, dutyType constants.DutyType) error
}

// DutyService implements duty listing, completion toggling and the
// cache-aside recent-duty lookup.
type DutyService struct {
	reader  DutyReader
	writer  DutyToggler
	cache   common.CacheInterface
	metrics *metrics.MetricsRegistry
	group   singleflight.Group
}

func NewDutyService(reader DutyReader, writer DutyToggler, cache common.CacheInterface, metricsReg *metrics.MetricsRegistry) *DutyService {
	return &DutyService{
		reader:  reader,
		writer:  writer,
		cache:   cache,
		metrics: metricsReg,
	}
}

// ListDuties returns the newest duties of active members, capped at limit.
// The cache is not involved here.
func (s *DutyService) ListDuties(ctx context.Context, limit int) ([]dtos.DutyResponse, error) {
	rows, err := s.reader.ListForActiveMembers(ctx, limit)
	if err != nil {
		return nil, err
	}

	duties := make([]dtos.DutyResponse, 0, len(rows))
	for i := range rows {
		duties = append(duties, *toDutyResponse(&rows[i]))
	}

	logging.Info("Retrieved duties from database", "count", len(duties))
	return duties, nil
}

// MarkCompleted completes a duty and invalidates the recent-duty cache entry
// for its type. Invalidation is unconditional: the toggled row may have been
// the cached most-recent one, and a spare cache miss is cheaper than a check.
func (s *DutyService) MarkCompleted(ctx context.Context, id int, dutyType constants.DutyType) error {
	if err := s.writer.MarkCompleted(ctx, id, dutyType); err != nil {
		return err
	}

	s.invalidateRecentDuty(dutyType)
	if s.metrics != nil {
		s.metrics.DutiesCompletedTotal.WithLabelValues(string(dutyType)).Inc()
	}

	logging.Info("Marked duty as completed", "duty_id", id, "duty_type", dutyType)
	return nil
}

// MarkUncompleted reverts a completed duty, with the same invalidation.
func (s *DutyService) MarkUncompleted(ctx context.Context, id int, dutyType constants.DutyType) error {
	if err := s.writer.MarkUncompleted(ctx, id, dutyType); err != nil {
		return err
	}

	s.invalidateRecentDuty(dutyType)
	if s.metrics != nil {
		s.metrics.DutiesUncompletedTotal.WithLabelValues(string(dutyType)).Inc()
	}

	logging.Info("Marked duty as uncompleted", "duty_id", id, "duty_type", dutyType)
	return nil
}

// MostRecentDuty is the read-through path: cache first, store on a miss.
// A corrupt cache entry or an unreachable cache degrades to a store read;
// the store is always the authority. Concurrent misses for the same duty
// type are collapsed into a single store query.
func (s *DutyService) MostRecentDuty(ctx context.Context, dutyType constants.DutyType) (*dtos.DutyResponse, string, error) {
	key := constants.RecentDutyCachePrefix + string(dutyType)

	if raw, found := s.cache.Get(key); found {
		var duty dtos.DutyResponse
		if err := json.Unmarshal([]byte(raw), &duty); err == nil && duty.DutyID != "" {
			if s.metrics != nil {
				s.metrics.CacheHitsTotal.WithLabelValues(string(dutyType)).Inc()
			}
			logging.Info("Found recent duty in cache", "duty_type", dutyType)
			return &duty, dtos.SourceCache, nil
		}
		logging.Warn("Invalid JSON in cache, treating as miss", "key", key)
	}

	if s.metrics != nil {
		s.metrics.CacheMissesTotal.WithLabelValues(string(dutyType)).Inc()
	}
	logging.Info("Recent duty not in cache, fetching from database", "duty_type", dutyType)

	val, err, _ := s.group.Do(string(dutyType), func() (interface{}, error) {
		row, err := s.reader.MostRecentByType(ctx, dutyType)
		if err != nil {
			return nil, err
		}

		duty := toDutyResponse(row)
		if payload, err := json.Marshal(duty); err == nil {
			s.cache.Set(key, string(payload), recentDutyTTL)
		}
		return duty, nil
	})
	if err != nil {
		return nil, "", err
	}

	return val.(*dtos.DutyResponse), dtos.SourceDatabase, nil
}

func (s *DutyService) invalidateRecentDuty(dutyType constants.DutyType) {
	s.cache.Delete(constants.RecentDutyCachePrefix + string(dutyType))
}

func toDutyResponse(row *entities.DutyWithMember) *dtos.DutyResponse {
	var completedAt *string
	if row.CompletedAt != nil {
		ts := row.CompletedAt.Format(time.RFC3339)
		completedAt = &ts
	}

	return &dtos.DutyResponse{
		DutyID:             strconv.Itoa(row.ID),
		DutyType:           row.DutyType,
		UserID:             strconv.Itoa(row.MemberID),
		Username:           row.Username,
		Name:               row.DisplayName(),
		SelectionTimestamp: row.AssignedAt.Format(time.RFC3339),
		CycleID:            row.CycleID,
		Completed:          row.Completed,
		CompletedTimestamp: completedAt,
	}
}
