package handlers

import (
	"errors"
	"fmt"

	"donorly/internal/adapters/http/middleware"
	"donorly/internal/core/services"
	"donorly/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// NotificationHandler handles notification endpoints
type NotificationHandler struct {
	notificationService *services.NotificationService
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// SendAlertRequest represents camp alert request body
type SendAlertRequest struct {
	CampID  uint   `json:"camp_id"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// SendAlert fans out a notification to every donor registered for a camp
// @Summary Send camp alert
// @Tags Notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SendAlertRequest true "Alert data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /notifications/send-camp-alert [post]
func (h *NotificationHandler) SendAlert(c *fiber.Ctx) error {
	var req SendAlertRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.CampID == 0 {
		return response.BadRequest(c, "Camp id is required")
	}

	count, err := h.notificationService.SendCampAlert(c.Context(), req.CampID, req.Message, req.Type)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCampNotFound):
			return response.NotFound(c, "Camp not found")
		case errors.Is(err, services.ErrNoRecipients):
			return response.NotFound(c, "No donors registered for this camp")
		default:
			return response.InternalServerError(c, "Failed to send alert")
		}
	}

	return response.Success(c, fmt.Sprintf("Alert sent to %d donors", count), fiber.Map{"recipients": count})
}

// List returns the calling donor's notifications, newest first
// @Summary List notifications
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	principal := middleware.GetPrincipal(c)

	notifications, err := h.notificationService.ListForDonor(c.Context(), principal.ID())
	if err != nil {
		return response.InternalServerError(c, "Failed to load notifications")
	}

	return response.Success(c, "", notifications)
}

// MarkRead flags a notification as read
// @Summary Mark notification read
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Notification ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid notification id")
	}

	if err := h.notificationService.MarkRead(c.Context(), uint(id)); err != nil {
		if errors.Is(err, services.ErrNotificationNotFound) {
			return response.NotFound(c, "Notification not found")
		}
		return response.InternalServerError(c, "Failed to update notification")
	}

	return response.Success(c, "Notification marked as read", nil)
}
