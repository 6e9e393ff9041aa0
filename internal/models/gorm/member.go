package gorm

// Member is the GORM model for the office roster.
// Members are soft-deleted only (active=false) so duty history stays attributable.
type Member struct {
	// GORM skips zero-valued fields that carry a default tag, so the
	// booleans have none; defaults are applied in the service layer.
	ID            int     `gorm:"column:id;primaryKey;autoIncrement"`
	Username      string  `gorm:"column:username;type:varchar(50);uniqueIndex;not null"`
	FullName      *string `gorm:"column:full_name;type:varchar(100)"`
	CoffeeDrinker bool    `gorm:"column:coffee_drinker;not null"`
	Active        bool    `gorm:"column:active;not null"`

	// Relationships
	DutyAssignments []DutyAssignment `gorm:"foreignKey:MemberID"`
}

// TableName specifies the table name for GORM
func (Member) TableName() string {
	return "members"
}
