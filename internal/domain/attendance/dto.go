package attendance

import (
	"github.com/cmlabs-hris/hris-admin-gateway/internal/pkg/validator"
)

// DailyFilter mirrors the dashboard's daily attendance query.
type DailyFilter struct {
	Date       string
	SearchName string
	Page       int
	PageSize   int
	SortField  string
	SortOrder  string
}

var dailySortFields = []string{"", "employeeName", "checkInTime", "checkOutTime", "status"}

func (f DailyFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date is required"})
	} else if _, ok := validator.IsValidDate(f.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}

	if f.Page < 1 {
		errs = append(errs, validator.ValidationError{Field: "pageNumber", Message: "pageNumber must be at least 1"})
	}
	if f.PageSize < 1 || f.PageSize > 200 {
		errs = append(errs, validator.ValidationError{Field: "pageSize", Message: "pageSize must be between 1 and 200"})
	}

	if !validator.IsInSlice(f.SortField, dailySortFields) {
		errs = append(errs, validator.ValidationError{Field: "sortField", Message: "unknown sort field"})
	}
	if !validator.IsInSlice(f.SortOrder, []string{"", "asc", "desc"}) {
		errs = append(errs, validator.ValidationError{Field: "sortOrder", Message: "sortOrder must be asc or desc"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// HistoryFilter mirrors the per-employee history query.
type HistoryFilter struct {
	EmployeeID string
	StartDate  string
	EndDate    string
	Page       int
	PageSize   int
}

func (f HistoryFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "employeeId is required"})
	}

	start, startOK := validator.IsValidDate(f.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "startDate", Message: "startDate must be in YYYY-MM-DD format"})
	}
	end, endOK := validator.IsValidDate(f.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "endDate", Message: "endDate must be in YYYY-MM-DD format"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "endDate", Message: "endDate must not be before startDate"})
	}

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

// Meta carries pagination data as reported by the upstream API.
// TotalCount is the upstream's raw row count; it can exceed len(items)
// after grouping collapses multi-session days. The dashboard displays
// both, so the discrepancy is passed through rather than reconciled.
type Meta struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalCount int64 `json:"totalCount"`
	GroupCount int   `json:"groupCount"`
}

// ListResult is a page of grouped attendance rows.
type ListResult struct {
	Items []Grouped `json:"items"`
	Meta  Meta      `json:"meta"`
}
