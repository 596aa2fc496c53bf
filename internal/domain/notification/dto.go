package notification

import (
	"github.com/cmlabs-hris/hris-admin-gateway/internal/pkg/validator"
)

// SendRequest asks the upstream API to deliver one templated WhatsApp
// message.
type SendRequest struct {
	To           string            `json:"to"`
	TemplateName string            `json:"templateName"`
	Parameters   map[string]string `json:"parameters,omitempty"`
}

func (r SendRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidPhoneNumber(r.To) {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "recipient must be an E.164 phone number"})
	}
	if validator.IsEmpty(r.TemplateName) {
		errs = append(errs, validator.ValidationError{Field: "templateName", Message: "templateName is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
