package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-admin-gateway/internal/domain/notification"
	"github.com/cmlabs-hris/hris-admin-gateway/internal/upstream"
	"github.com/google/uuid"
)

// WhatsAppSender is the slice of the upstream client this service needs.
type WhatsAppSender interface {
	SendWhatsApp(ctx context.Context, req notification.SendRequest) (notification.Message, error)
	ListTemplates(ctx context.Context) ([]notification.Template, error)
}

type NotificationServiceImpl struct {
	sender WhatsAppSender
}

func NewNotificationService(sender WhatsAppSender) notification.NotificationService {
	return &NotificationServiceImpl{sender: sender}
}

// Send implements notification.NotificationService.
func (n *NotificationServiceImpl) Send(ctx context.Context, req notification.SendRequest) (notification.Message, error) {
	if err := req.Validate(); err != nil {
		return notification.Message{}, err
	}

	msg, err := n.sender.SendWhatsApp(ctx, req)
	if err != nil {
		var apiErr *upstream.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return notification.Message{}, notification.ErrTemplateNotFound
		}
		return notification.Message{}, fmt.Errorf("failed to send whatsapp notification: %w", err)
	}

	// Older upstream versions respond without a message ID.
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}

	slog.Info("whatsapp notification sent", "message_id", msg.ID, "template", req.TemplateName)
	return msg, nil
}

// ListTemplates implements notification.NotificationService.
func (n *NotificationServiceImpl) ListTemplates(ctx context.Context) ([]notification.Template, error) {
	templates, err := n.sender.ListTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notification templates: %w", err)
	}
	return templates, nil
}
