package dtos

import (
	"office-experiment/dutyboard/internal/constants"
)

// Source of a recent-duty lookup result
const (
	SourceCache    = "cache"
	SourceDatabase = "database"
)

// DutyResponse is the wire representation of one duty assignment joined with
// its member's display data. IDs are strings and timestamps ISO-8601, matching
// what the web client and bot already consume.
type DutyResponse struct {
	DutyID             string             `json:"duty_id"`
	DutyType           constants.DutyType `json:"duty_type"`
	UserID             string             `json:"user_id"`
	Username           string             `json:"username"`
	Name               string             `json:"name"`
	SelectionTimestamp string             `json:"selection_timestamp"`
	CycleID            int                `json:"cycle_id"`
	Completed          bool               `json:"completed"`
	CompletedTimestamp *string            `json:"completed_timestamp"`
}

// MemberResponse is the wire representation of one roster member.
type MemberResponse struct {
	ID            int     `json:"id"`
	Username      string  `json:"username"`
	FullName      *string `json:"full_name"`
	CoffeeDrinker bool    `json:"coffee_drinker"`
	Active        bool    `json:"active"`
}

type DutyListResponse struct {
	Duties []DutyResponse `json:"duties"`
	Total  int            `json:"total"`
}

type DutyMutationResponse struct {
	Message string         `json:"message"`
	Success bool           `json:"success"`
	Duties  []DutyResponse `json:"duties"`
}

type RecentDutyResponse struct {
	Duty   DutyResponse `json:"duty"`
	Source string       `json:"source"`
}

type MemberListResponse struct {
	Members []MemberResponse `json:"members"`
}

type MemberMutationResponse struct {
	Message string           `json:"message"`
	Success bool             `json:"success"`
	Members []MemberResponse `json:"members"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
