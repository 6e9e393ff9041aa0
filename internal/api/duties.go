package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"office-experiment/dutyboard/internal/constants"
	"office-experiment/dutyboard/internal/db/repositories"
	"office-experiment/dutyboard/internal/logging"
	"office-experiment/dutyboard/internal/models/dtos"
)

const (
	defaultDutyListLimit = 100
	// Completion responses return a refreshed duty list with this cap.
	refreshedDutyListLimit = 50
)

// DutyAPI is the service contract the duty handlers depend on.
type DutyAPI interface {
	ListDuties(ctx context.Context, limit int) ([]dtos.DutyResponse, error)
	MarkCompleted(ctx context.Context, id int, dutyType constants.DutyType) error
	MarkUncompleted(ctx context.Context, id int, dutyType constants.DutyType) error
	MostRecentDuty(ctx context.Context, dutyType constants.DutyType) (*dtos.DutyResponse, string, error)
}

// GetDutiesHandler handles GET /api/duties?limit=N
func GetDutiesHandler(dutySvc DutyAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := defaultDutyListLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil && n > 0 {
				limit = n
			}
		}

		duties, err := dutySvc.ListDuties(r.Context(), limit)
		if err != nil {
			logging.Error("Error in get duties endpoint", "error", err.Error())
			respondError(w, http.StatusInternalServerError, constants.ErrMsgDutiesFetch)
			return
		}

		respondJSON(w, http.StatusOK, dtos.DutyListResponse{
			Duties: duties,
			Total:  len(duties),
		})
	}
}

// CompleteDutyHandler handles POST /api/duties/complete
func CompleteDutyHandler(dutySvc DutyAPI) http.HandlerFunc {
	return toggleDutyHandler(dutySvc, DutyAPI.MarkCompleted,
		constants.MsgDutyCompleted, constants.ErrMsgDutyNotCompleted, constants.ErrMsgDutyComplete)
}

// UncompleteDutyHandler handles POST /api/duties/uncomplete
func UncompleteDutyHandler(dutySvc DutyAPI) http.HandlerFunc {
	return toggleDutyHandler(dutySvc, DutyAPI.MarkUncompleted,
		constants.MsgDutyUncompleted, constants.ErrMsgDutyNotUncompleted, constants.ErrMsgDutyUncomplete)
}

// toggleDutyHandler is the shared complete/uncomplete flow: validate payload,
// run the toggle, return the refreshed duty list. Domain rejections (no such
// duty, guard tripped) keep their historical 500 status for client
// compatibility.
func toggleDutyHandler(
	dutySvc DutyAPI,
	toggle func(DutyAPI, context.Context, int, constants.DutyType) error,
	successMsg, domainErrMsg, infraErrMsg string,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.DutyCompletionReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, constants.ErrMsgNoData)
			return
		}

		dutyType, err := constants.ParseDutyType(req.DutyType)
		if err != nil {
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Problem validating payload: %s", err))
			return
		}

		dutyID, err := strconv.Atoi(req.DutyID)
		if err != nil {
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Problem validating payload: invalid duty_id %q", req.DutyID))
			return
		}

		if err := toggle(dutySvc, r.Context(), dutyID, dutyType); err != nil {
			if errors.Is(err, repositories.ErrNotFound) ||
				errors.Is(err, repositories.ErrAlreadyCompleted) ||
				errors.Is(err, repositories.ErrNotCompleted) {
				logging.Warn("Duty toggle rejected", "duty_id", dutyID, "duty_type", dutyType, "reason", err.Error())
				respondError(w, http.StatusInternalServerError, domainErrMsg)
				return
			}
			logging.Error("Error in duty toggle endpoint", "error", err.Error())
			respondError(w, http.StatusInternalServerError, infraErrMsg)
			return
		}

		duties, err := dutySvc.ListDuties(r.Context(), refreshedDutyListLimit)
		if err != nil {
			logging.Error("Failed to refresh duty list after toggle", "error", err.Error())
			respondError(w, http.StatusInternalServerError, infraErrMsg)
			return
		}

		respondJSON(w, http.StatusOK, dtos.DutyMutationResponse{
			Message: successMsg,
			Success: true,
			Duties:  duties,
		})
	}
}

// GetRecentDutyHandler handles GET /api/duties/recent?duty_type=X
func GetRecentDutyHandler(dutySvc DutyAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := r.URL.Query().Get("duty_type")
		if raw == "" {
			respondError(w, http.StatusBadRequest, constants.ErrMsgDutyTypeRequired)
			return
		}

		dutyType, err := constants.ParseDutyType(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid duty_type %s", raw))
			return
		}

		duty, source, err := dutySvc.MostRecentDuty(r.Context(), dutyType)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				respondError(w, http.StatusNotFound, fmt.Sprintf("No %s duty found", dutyType))
				return
			}
			logging.Error("Error in get recent duty endpoint", "error", err.Error())
			respondError(w, http.StatusInternalServerError, constants.ErrMsgRecentDutyFetch)
			return
		}

		respondJSON(w, http.StatusOK, dtos.RecentDutyResponse{
			Duty:   *duty,
			Source: source,
		})
	}
}
