package upstream

import (
	"context"

	"github.com/cmlabs-hris/hris-admin-gateway/internal/domain/notification"
)

func (c *Client) SendWhatsApp(ctx context.Context, req notification.SendRequest) (notification.Message, error) {
	var msg notification.Message
	if err := c.post(ctx, "/api/Notification/whatsapp", req, &msg); err != nil {
		return notification.Message{}, err
	}
	return msg, nil
}

func (c *Client) ListTemplates(ctx context.Context) ([]notification.Template, error) {
	var templates []notification.Template
	if err := c.get(ctx, "/api/Notification/templates", nil, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}
