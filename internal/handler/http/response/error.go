package response

import (
	"errors"
	"net/http"
	"sort"

	"github.com/cmlabs-hris/hris-admin-gateway/internal/domain/auth"
	"github.com/cmlabs-hris/hris-admin-gateway/internal/domain/employee"
	"github.com/cmlabs-hris/hris-admin-gateway/internal/domain/notification"
	"github.com/cmlabs-hris/hris-admin-gateway/internal/domain/workrule"
	"github.com/cmlabs-hris/hris-admin-gateway/internal/pkg/validator"
	"github.com/cmlabs-hris/hris-admin-gateway/internal/upstream"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := validationErrs.ToMap()
		msgs := make([]string, 0, len(details))
		for field, message := range details {
			msgs = append(msgs, field+": "+message)
		}
		sort.Strings(msgs)
		ValidationError(w, msgs)
		return
	}

	// Upstream failures pass their status and messages through
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		handleUpstreamError(w, apiErr)
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrUpstreamAuth):
		BadGateway(w, "Upstream authentication failed")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Configuration domain errors
	case errors.Is(err, workrule.ErrWorkRuleNotFound):
		NotFound(w, "Work rule not found")
	case errors.Is(err, workrule.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, workrule.ErrSalaryNotFound):
		NotFound(w, "Salary configuration not found")

	// Notification domain errors
	case errors.Is(err, notification.ErrTemplateNotFound):
		NotFound(w, "Notification template not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

func handleUpstreamError(w http.ResponseWriter, apiErr *upstream.APIError) {
	switch apiErr.StatusCode {
	case http.StatusUnauthorized:
		// The refresh guard already failed; the dashboard must log in
		// again.
		Unauthorized(w, "Upstream session expired")
	case http.StatusNotFound:
		NotFound(w, apiErr.Message)
	case http.StatusConflict:
		Conflict(w, apiErr.Message)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		BadRequest(w, apiErr.Message, apiErr.Errors)
	default:
		BadGateway(w, apiErr.Message)
	}
}
