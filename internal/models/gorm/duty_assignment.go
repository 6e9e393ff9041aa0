package gorm

import (
	"time"

	"office-experiment/dutyboard/internal/constants"
)

// DutyAssignment is the GORM model for one chore assignment in a rotation cycle.
// Rows are created by the rotation selector and never deleted; completion toggles
// are the only mutation this service performs.
type DutyAssignment struct {
	ID          int                `gorm:"column:id;primaryKey;autoIncrement"`
	MemberID    int                `gorm:"column:member_id;not null"`
	DutyType    constants.DutyType `gorm:"column:duty_type;type:varchar(20);not null"`
	AssignedAt  time.Time          `gorm:"column:assigned_at;autoCreateTime"`
	CycleID     int                `gorm:"column:cycle_id;not null"`
	Completed   bool               `gorm:"column:completed;default:false"`
	CompletedAt *time.Time         `gorm:"column:completed_at"`

	// Relationships
	Member Member `gorm:"foreignKey:MemberID"`
}

// TableName specifies the table name for GORM
func (DutyAssignment) TableName() string {
	return "duty_assignments"
}
