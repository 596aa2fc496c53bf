package notification

import "context"

type NotificationService interface {
	Send(ctx context.Context, req SendRequest) (Message, error)
	ListTemplates(ctx context.Context) ([]Template, error)
}
