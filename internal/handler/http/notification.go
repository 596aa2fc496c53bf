package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/hris-admin-gateway/internal/domain/notification"
	"github.com/cmlabs-hris/hris-admin-gateway/internal/handler/http/response"
)

type NotificationHandler interface {
	SendWhatsApp(w http.ResponseWriter, r *http.Request)
	ListTemplates(w http.ResponseWriter, r *http.Request)
}

type notificationHandlerImpl struct {
	notificationService notification.NotificationService
}

func NewNotificationHandler(notificationService notification.NotificationService) NotificationHandler {
	return &notificationHandlerImpl{
		notificationService: notificationService,
	}
}

func (h *notificationHandlerImpl) SendWhatsApp(w http.ResponseWriter, r *http.Request) {
	var req notification.SendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.notificationService.Send(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Notification sent successfully", result)
}

func (h *notificationHandlerImpl) ListTemplates(w http.ResponseWriter, r *http.Request) {
	result, err := h.notificationService.ListTemplates(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
