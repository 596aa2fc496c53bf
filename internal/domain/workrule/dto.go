package workrule

import (
	"time"

	"github.com/cmlabs-hris/hris-admin-gateway/internal/pkg/validator"
)

func isValidClockTime(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}

// WorkRuleRequest is the create/update payload for a work rule.
type WorkRuleRequest struct {
	Name               string `json:"name"`
	CheckInStart       string `json:"checkInStart"`
	CheckInEnd         string `json:"checkInEnd"`
	GracePeriodMinutes int    `json:"gracePeriodMinutes"`
	RequireGeolocation bool   `json:"requireGeolocation"`
	RadiusMeters       *int   `json:"radiusMeters,omitempty"`
}

func (r WorkRuleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if !isValidClockTime(r.CheckInStart) {
		errs = append(errs, validator.ValidationError{Field: "checkInStart", Message: "must be in HH:MM format"})
	}
	if !isValidClockTime(r.CheckInEnd) {
		errs = append(errs, validator.ValidationError{Field: "checkInEnd", Message: "must be in HH:MM format"})
	}
	if r.GracePeriodMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "gracePeriodMinutes", Message: "must not be negative"})
	}
	if r.RequireGeolocation && (r.RadiusMeters == nil || *r.RadiusMeters <= 0) {
		errs = append(errs, validator.ValidationError{Field: "radiusMeters", Message: "a positive radius is required when geolocation is enforced"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ShiftRequest is the create/update payload for a shift.
type ShiftRequest struct {
	Name        string `json:"name"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsOvernight bool   `json:"isOvernight"`
}

func (r ShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if !isValidClockTime(r.StartTime) {
		errs = append(errs, validator.ValidationError{Field: "startTime", Message: "must be in HH:MM format"})
	}
	if !isValidClockTime(r.EndTime) {
		errs = append(errs, validator.ValidationError{Field: "endTime", Message: "must be in HH:MM format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SalaryConfigRequest is the create/update payload for an employee's pay
// settings.
type SalaryConfigRequest struct {
	EmployeeID string  `json:"employeeId"`
	BaseSalary float64 `json:"baseSalary"`
	Allowance  float64 `json:"allowance"`
	Currency   string  `json:"currency"`
	PayDay     int     `json:"payDay"`
}

func (r SalaryConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "employeeId is required"})
	}
	if r.BaseSalary < 0 {
		errs = append(errs, validator.ValidationError{Field: "baseSalary", Message: "must not be negative"})
	}
	if r.Allowance < 0 {
		errs = append(errs, validator.ValidationError{Field: "allowance", Message: "must not be negative"})
	}
	if len(r.Currency) != 3 {
		errs = append(errs, validator.ValidationError{Field: "currency", Message: "must be a 3-letter currency code"})
	}
	if r.PayDay < 1 || r.PayDay > 28 {
		errs = append(errs, validator.ValidationError{Field: "payDay", Message: "must be between 1 and 28"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
