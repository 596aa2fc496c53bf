package notification

import "errors"

// Notification domain errors
var (
	ErrTemplateNotFound = errors.New("notification template not found")
)
