package employee

import (
	"github.com/cmlabs-hris/hris-admin-gateway/internal/pkg/validator"
)

// ListFilter mirrors the dashboard's employee search query.
type ListFilter struct {
	Search   string
	Page     int
	PageSize int
}

func (f ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 1 {
		errs = append(errs, validator.ValidationError{Field: "pageNumber", Message: "pageNumber must be at least 1"})
	}
	if f.PageSize < 1 || f.PageSize > 200 {
		errs = append(errs, validator.ValidationError{Field: "pageSize", Message: "pageSize must be between 1 and 200"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpsertRequest is the create/update payload forwarded upstream.
type UpsertRequest struct {
	Name        string  `json:"name"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Position    *string `json:"position,omitempty"`
	Branch      *string `json:"branch,omitempty"`
	WorkRuleID  *string `json:"workRuleId,omitempty"`
	ShiftID     *string `json:"shiftId,omitempty"`
	IsActive    bool    `json:"isActive"`
}

func (r UpsertRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email address"})
	}
	if r.PhoneNumber != nil && !validator.IsValidPhoneNumber(*r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{Field: "phoneNumber", Message: "phone number must be in E.164 format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListResult is one page of employees.
type ListResult struct {
	Items      []Employee `json:"items"`
	Page       int        `json:"page"`
	PageSize   int        `json:"pageSize"`
	TotalCount int64      `json:"totalCount"`
}
