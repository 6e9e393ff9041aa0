package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"office-experiment/dutyboard/internal/common"
	"office-experiment/dutyboard/internal/constants"
	"office-experiment/dutyboard/internal/db/repositories"
	"office-experiment/dutyboard/internal/logging"
	"office-experiment/dutyboard/internal/models/dtos"
	"office-experiment/dutyboard/internal/services"
)

// MemberAPI is the service contract the member handlers depend on.
type MemberAPI interface {
	ListActive(ctx context.Context, coffeeDrinkersOnly bool) ([]dtos.MemberResponse, error)
	Add(ctx context.Context, req dtos.AddMemberReq) error
	Update(ctx context.Context, req dtos.UpdateMemberReq) error
	Deactivate(ctx context.Context, id int) error
}

// GetMembersHandler handles GET /api/members
func GetMembersHandler(memberSvc MemberAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		coffeeOnly := r.URL.Query().Get("coffee_drinkers_only") == "true"

		members, err := memberSvc.ListActive(r.Context(), coffeeOnly)
		if err != nil {
			logging.Error("Error in get members endpoint", "error", err.Error())
			respondError(w, http.StatusInternalServerError, constants.ErrMsgMembersFetch)
			return
		}

		respondJSON(w, http.StatusOK, dtos.MemberListResponse{Members: members})
	}
}

// AddMemberHandler handles POST /api/members
func AddMemberHandler(memberSvc MemberAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.AddMemberReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, constants.ErrMsgNoMemberData)
			return
		}

		if err := memberSvc.Add(r.Context(), req); err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidUsername):
				respondError(w, http.StatusBadRequest, fmt.Sprintf("Problem validating payload: %s", err))
			case errors.Is(err, repositories.ErrDuplicateUsername):
				username := common.NormalizeUsername(req.Username)
				logging.Warn("Member already exists", "username", username)
				respondError(w, http.StatusConflict, fmt.Sprintf("Username '%s' already exists", username))
			default:
				logging.Error("Error in add member endpoint", "error", err.Error())
				respondError(w, http.StatusInternalServerError, constants.ErrMsgMemberAdd)
			}
			return
		}

		respondWithMemberList(w, r, memberSvc, constants.MsgMemberAdded, constants.ErrMsgMemberAdd)
	}
}

// UpdateMemberHandler handles PUT /api/members
func UpdateMemberHandler(memberSvc MemberAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.UpdateMemberReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, constants.ErrMsgNoMemberData)
			return
		}

		if err := memberSvc.Update(r.Context(), req); err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidUsername):
				respondError(w, http.StatusBadRequest, fmt.Sprintf("Problem validating payload: %s", err))
			case errors.Is(err, repositories.ErrNotFound), errors.Is(err, repositories.ErrDuplicateUsername):
				logging.Warn("Member update rejected", "id", req.ID, "reason", err.Error())
				respondError(w, http.StatusInternalServerError, constants.ErrMsgMemberUpdateFailed)
			default:
				logging.Error("Error in update member endpoint", "error", err.Error())
				respondError(w, http.StatusInternalServerError, constants.ErrMsgMemberUpdate)
			}
			return
		}

		respondWithMemberList(w, r, memberSvc, constants.MsgMemberUpdated, constants.ErrMsgMemberUpdate)
	}
}

// DeactivateMemberHandler handles DELETE /api/members
//
// Members are deactivated instead of deleted so the historic duty overview
// stays intact.
func DeactivateMemberHandler(memberSvc MemberAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.DeactivateMemberReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, constants.ErrMsgNoMemberData)
			return
		}

		if req.ID == nil {
			respondError(w, http.StatusBadRequest, constants.ErrMsgNoMemberID)
			return
		}

		if err := memberSvc.Deactivate(r.Context(), *req.ID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) || errors.Is(err, repositories.ErrAlreadyInactive) {
				logging.Warn("Member deactivation rejected", "id", *req.ID, "reason", err.Error())
			} else {
				logging.Error("Error in deactivate member endpoint", "error", err.Error())
			}
			respondError(w, http.StatusInternalServerError, constants.ErrMsgMemberDeactivate)
			return
		}

		respondWithMemberList(w, r, memberSvc, constants.MsgMemberDeactivated, constants.ErrMsgMemberDeactivate)
	}
}

// respondWithMemberList sends the refreshed active member list after a
// successful mutation.
func respondWithMemberList(w http.ResponseWriter, r *http.Request, memberSvc MemberAPI, message, errMsg string) {
	members, err := memberSvc.ListActive(r.Context(), false)
	if err != nil {
		logging.Error("Failed to refresh member list", "error", err.Error())
		respondError(w, http.StatusInternalServerError, errMsg)
		return
	}

	respondJSON(w, http.StatusOK, dtos.MemberMutationResponse{
		Message: message,
		Success: true,
		Members: members,
	})
}
