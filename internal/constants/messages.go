package constants

const (
	MsgDutyCompleted     = "Duty marked as completed successfully"
	MsgDutyUncompleted   = "Duty marked as uncompleted successfully"
	MsgMemberAdded       = "New member added to the office"
	MsgMemberUpdated     = "Updated office member"
	MsgMemberDeactivated = "Deactivated office member"
)

// Error messages are split between domain failures (a guard said no) and
// infrastructure failures, matching what clients already expect.
const (
	ErrMsgDutiesFetch        = "Failed to retrieve duties"
	ErrMsgDutyNotCompleted   = "Failed to mark duty as completed"
	ErrMsgDutyNotUncompleted = "Failed to mark duty as uncompleted"
	ErrMsgDutyComplete       = "Failed to complete duty"
	ErrMsgDutyUncomplete     = "Failed to uncomplete duty"
	ErrMsgRecentDutyFetch    = "Failed to retrieve recent duty"
	ErrMsgMembersFetch       = "Failed to retrieve members"
	ErrMsgMemberAdd          = "Failed to add new member"
	ErrMsgMemberUpdateFailed = "Failed to update member"
	ErrMsgMemberUpdate       = "Failed to update a member"
	ErrMsgMemberDeactivate   = "Failed to deactivate member"
	ErrMsgNoData             = "No data provided"
	ErrMsgNoMemberData       = "No member data provided"
	ErrMsgNoMemberID         = "No member id provided"
	ErrMsgDutyTypeRequired   = "duty_type query parameter is required"
)

// Cache key space for the recent-duty projection
const RecentDutyCachePrefix = "recent_duty:"
