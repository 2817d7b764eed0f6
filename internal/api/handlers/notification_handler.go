package handlers

import (
	"Smart-Fridge-Manager/domain"
	"Smart-Fridge-Manager/internal/api/presenters"
	"Smart-Fridge-Manager/pkg/notification"

	"github.com/gofiber/fiber/v2"
)

type (
	NotificationHandler interface {
		TriggerNotifications(c *fiber.Ctx) error
	}

	notificationHandler struct {
		notificationService notification.NotificationService
	}
)

func NewNotificationHandler(notificationService notification.NotificationService) NotificationHandler {
	return &notificationHandler{
		notificationService: notificationService,
	}
}

// TriggerNotifications runs the daily check on demand. Running it twice on
// the same day sends at most one email per user; the duplicate-send guard
// inside the service enforces that, not this handler.
func (h *notificationHandler) TriggerNotifications(c *fiber.Ctx) error {
	summary, err := h.notificationService.CheckAndNotify(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedTriggerNotifications, err)
	}

	// Totals only; per-user results hold email addresses.
	return presenters.SuccessResponse(c, domain.ToNotificationTriggerResponse(summary), fiber.StatusOK, domain.MessageSuccessTriggerNotifications)
}
