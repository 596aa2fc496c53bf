package attendance

import "errors"

// Attendance domain errors
var (
	ErrEmployeeNotFound = errors.New("employee not found upstream")
	ErrUpstreamRejected = errors.New("upstream rejected the attendance query")
)
