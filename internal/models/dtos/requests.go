package dtos

// DutyCompletionReq is the body of POST /api/duties/complete and /uncomplete.
// duty_id arrives as a string on the wire (bot clients send it that way).
type DutyCompletionReq struct {
	DutyID   string `json:"duty_id"`
	DutyType string `json:"duty_type"`
}

// AddMemberReq is the body of POST /api/members.
// CoffeeDrinker is a pointer so an omitted field defaults to true.
type AddMemberReq struct {
	Username      string  `json:"username"`
	FullName      *string `json:"full_name"`
	CoffeeDrinker *bool   `json:"coffee_drinker"`
}

// UpdateMemberReq is the full member object accepted by PUT /api/members.
// The booleans are pointers so an omitted field defaults to true instead
// of silently flipping the member to false.
type UpdateMemberReq struct {
	ID            int     `json:"id"`
	Username      string  `json:"username"`
	FullName      *string `json:"full_name"`
	CoffeeDrinker *bool   `json:"coffee_drinker"`
	Active        *bool   `json:"active"`
}

// DeactivateMemberReq is the body of DELETE /api/members.
type DeactivateMemberReq struct {
	ID *int `json:"id"`
}
