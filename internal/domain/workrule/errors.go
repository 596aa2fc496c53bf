package workrule

import "errors"

// Work-rule configuration errors
var (
	ErrWorkRuleNotFound = errors.New("work rule not found")
	ErrShiftNotFound    = errors.New("shift not found")
	ErrSalaryNotFound   = errors.New("salary configuration not found")
)
