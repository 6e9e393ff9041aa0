package constants

import (
	"database/sql/driver"
	"fmt"
)

// DutyType mirrors the closed set of duty kinds stored in duty_assignments.duty_type
type DutyType string

const (
	DutyCoffee DutyType = "coffee"
	DutyFridge DutyType = "fridge"
)

// Stringer ­– convenient for fmt / logs
func (d DutyType) String() string { return string(d) }

// ParseDutyType validates a raw string against the closed enum
func ParseDutyType(raw string) (DutyType, error) {
	switch DutyType(raw) {
	case DutyCoffee, DutyFridge:
		return DutyType(raw), nil
	default:
		return "", fmt.Errorf("invalid duty_type %q", raw)
	}
}

/* ---------- DB adapters so sqlx (or database/sql) scans/values cleanly ---------- */

// Scan implements the sql.Scanner interface
func (d *DutyType) Scan(src interface{}) error {
	if src == nil {
		*d = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*d = DutyType(v)
	case []byte:
		*d = DutyType(v)
	default:
		return fmt.Errorf("DutyType: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (d DutyType) Value() (driver.Value, error) { return string(d), nil }
