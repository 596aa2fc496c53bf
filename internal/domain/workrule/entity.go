// Package workrule holds the attendance configuration entities the
// dashboard manages: work rules, shifts and salary settings. The
// gateway forwards them verbatim; rule evaluation happens upstream.
package workrule

// WorkRule controls how check-ins are judged upstream.
type WorkRule struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	CheckInStart       string `json:"checkInStart"`
	CheckInEnd         string `json:"checkInEnd"`
	GracePeriodMinutes int    `json:"gracePeriodMinutes"`
	RequireGeolocation bool   `json:"requireGeolocation"`
	RadiusMeters       *int   `json:"radiusMeters,omitempty"`
}

// Shift is a named working window. Overnight shifts end on the next
// calendar day.
type Shift struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsOvernight bool   `json:"isOvernight"`
}

// SalaryConfig is one employee's pay settings.
type SalaryConfig struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employeeId"`
	BaseSalary float64 `json:"baseSalary"`
	Allowance  float64 `json:"allowance"`
	Currency   string  `json:"currency"`
	PayDay     int     `json:"payDay"`
}
