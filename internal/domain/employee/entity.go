package employee

// Employee is the upstream employee record as exposed to the dashboard.
type Employee struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Position    *string `json:"position,omitempty"`
	Branch      *string `json:"branch,omitempty"`
	WorkRuleID  *string `json:"workRuleId,omitempty"`
	ShiftID     *string `json:"shiftId,omitempty"`
	IsActive    bool    `json:"isActive"`
	JoinedAt    *string `json:"joinedAt,omitempty"`
}
