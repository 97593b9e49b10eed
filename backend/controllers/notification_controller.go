package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"habittracker/backend/middleware"
	"habittracker/backend/services"
	"habittracker/backend/utils"
)

type NotificationController struct {
	Reminders *services.ReminderService
	Logger    *zap.Logger
}

func NewNotificationController(reminders *services.ReminderService, logger *zap.Logger) *NotificationController {
	return &NotificationController{Reminders: reminders, Logger: logger}
}

type ReminderRequest struct {
	HabitID string `json:"habitId" validate:"required"`
	Date    string `json:"date" validate:"required" example:"2025-08-02T09:00:00Z"`
}

// ScheduleReminder godoc
// @Summary Schedule a reminder
// @Description date is RFC 3339 or YYYY-MM-DD
// @Tags notifications
// @Accept json
// @Produce json
// @Param input body ReminderRequest true "Reminder"
// @Success 201 {object} models.Reminder
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /notifications [post]
func (nc *NotificationController) ScheduleReminder(c *fiber.Ctx) error {
	var req ReminderRequest
	if msgs := parseBody(c, &req); msgs != nil {
		return utils.ValidationError(c, msgs)
	}

	reminder, err := nc.Reminders.Schedule(c.UserContext(), middleware.CurrentUserID(c), req.HabitID, req.Date)
	if err != nil {
		return respondError(c, nc.Logger, err)
	}
	return utils.Created(c, reminder)
}

// ListReminders godoc
// @Summary List own reminders
// @Tags notifications
// @Produce json
// @Success 200 {array} models.Reminder
// @Security ApiKeyAuth
// @Router /notifications [get]
func (nc *NotificationController) ListReminders(c *fiber.Ctx) error {
	reminders, err := nc.Reminders.List(c.UserContext(), middleware.CurrentUserID(c))
	if err != nil {
		return respondError(c, nc.Logger, err)
	}
	return utils.OK(c, reminders)
}

// DeleteReminder godoc
// @Summary Delete a reminder
// @Tags notifications
// @Param id path string true "Reminder ID"
// @Success 204
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 429 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /notifications/{id} [delete]
func (nc *NotificationController) DeleteReminder(c *fiber.Ctx) error {
	if err := nc.Reminders.Delete(c.UserContext(), c.Params("id"), middleware.CurrentUserID(c)); err != nil {
		return respondError(c, nc.Logger, err)
	}
	return utils.NoContent(c)
}
