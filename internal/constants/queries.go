package constants

const (
	// Duty list joined with member display data, newest first.
	// Only assignments belonging to active members are listed.
	ListDutiesForActiveMembers = `
	SELECT d.id, d.member_id, d.duty_type, d.assigned_at, d.cycle_id,
	       d.completed, d.completed_at,
	       m.username, m.full_name
	FROM duty_assignments d
	JOIN members m ON d.member_id = m.id
	WHERE m.active = TRUE
	ORDER BY d.assigned_at DESC
	LIMIT $1
	`

	// Recent-duty lookup deliberately ignores member active status:
	// history stays attributable even after a member is deactivated.
	MostRecentDutyByType = `
	SELECT d.id, d.member_id, d.duty_type, d.assigned_at, d.cycle_id,
	       d.completed, d.completed_at,
	       m.username, m.full_name
	FROM duty_assignments d
	JOIN members m ON d.member_id = m.id
	WHERE d.duty_type = $1
	ORDER BY d.assigned_at DESC
	LIMIT 1
	`
)
