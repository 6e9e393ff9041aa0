package entities

import (
	"time"

	"office-experiment/dutyboard/internal/constants"
)

// DutyWithMember is the sqlx scan target for the duty/member join queries.
type DutyWithMember struct {
	ID          int                `db:"id"`
	MemberID    int                `db:"member_id"`
	DutyType    constants.DutyType `db:"duty_type"`
	AssignedAt  time.Time          `db:"assigned_at"`
	CycleID     int                `db:"cycle_id"`
	Completed   bool               `db:"completed"`
	CompletedAt *time.Time         `db:"completed_at"`
	Username    string             `db:"username"`
	FullName    *string            `db:"full_name"`
}

// DisplayName is the member name shown alongside a duty:
// full name when present, username otherwise.
func (d *DutyWithMember) DisplayName() string {
	if d.FullName != nil && *d.FullName != "" {
		return *d.FullName
	}
	return d.Username
}
