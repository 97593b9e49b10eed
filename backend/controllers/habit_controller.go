package controllers

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"habittracker/backend/middleware"
	"habittracker/backend/models"
	"habittracker/backend/services"
	"habittracker/backend/utils"
)

type HabitController struct {
	Habits *services.HabitService
	Export *services.ExportService
	Logger *zap.Logger
}

func NewHabitController(habits *services.HabitService, export *services.ExportService, logger *zap.Logger) *HabitController {
	return &HabitController{Habits: habits, Export: export, Logger: logger}
}

type HabitRequest struct {
	Name        string `json:"name" validate:"required,min=3" example:"Read 20 pages"`
	Description string `json:"description"`
}

type HabitPatchRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=3"`
	Description *string `json:"description"`
}

// CreateHabit godoc
// @Summary Create a habit
// @Tags habits
// @Accept json
// @Produce json
// @Param input body HabitRequest true "Habit"
// @Success 201 {object} models.Habit
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /habits [post]
func (hc *HabitController) CreateHabit(c *fiber.Ctx) error {
	var req HabitRequest
	if msgs := parseBody(c, &req); msgs != nil {
		return utils.ValidationError(c, msgs)
	}

	habit, err := hc.Habits.Create(c.UserContext(), middleware.CurrentUserID(c), services.CreateHabitInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return respondError(c, hc.Logger, err)
	}
	return utils.Created(c, habit)
}

// ListHabits godoc
// @Summary List own habits
// @Tags habits
// @Produce json
// @Success 200 {array} models.Habit
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /habits [get]
func (hc *HabitController) ListHabits(c *fiber.Ctx) error {
	habits, err := hc.Habits.List(c.UserContext(), middleware.CurrentUserID(c))
	if err != nil {
		return respondError(c, hc.Logger, err)
	}
	return utils.OK(c, habits)
}

// GetHabit godoc
// @Summary Get a habit
// @Tags habits
// @Produce json
// @Param habitId path string true "Habit ID"
// @Success 200 {object} models.Habit
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /habits/{habitId} [get]
func (hc *HabitController) GetHabit(c *fiber.Ctx) error {
	habit, err := hc.Habits.Get(c.UserContext(), c.Params("habitId"), middleware.CurrentUserID(c))
	if err != nil {
		return respondError(c, hc.Logger, err)
	}
	return utils.OK(c, habit)
}

// UpdateHabit godoc
// @Summary Update a habit
// @Description Only the fields present in the body change
// @Tags habits
// @Accept json
// @Produce json
// @Param habitId path string true "Habit ID"
// @Param input body HabitPatchRequest true "Fields to change"
// @Success 200 {object} models.Habit
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /habits/{habitId} [put]
func (hc *HabitController) UpdateHabit(c *fiber.Ctx) error {
	var req HabitPatchRequest
	if msgs := parseBody(c, &req); msgs != nil {
		return utils.ValidationError(c, msgs)
	}

	habit, err := hc.Habits.Update(c.UserContext(), c.Params("habitId"), middleware.CurrentUserID(c), models.HabitPatch{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return respondError(c, hc.Logger, err)
	}
	return utils.OK(c, habit)
}

// DeleteHabit godoc
// @Summary Delete a habit
// @Tags habits
// @Param habitId path string true "Habit ID"
// @Success 204
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /habits/{habitId} [delete]
func (hc *HabitController) DeleteHabit(c *fiber.Ctx) error {
	if err := hc.Habits.Delete(c.UserContext(), c.Params("habitId"), middleware.CurrentUserID(c)); err != nil {
		return respondError(c, hc.Logger, err)
	}
	return utils.NoContent(c)
}

// CheckHabit godoc
// @Summary Check a habit for today
// @Tags habits
// @Produce json
// @Param habitId path string true "Habit ID"
// @Success 200 {object} models.CheckResult
// @Failure 400 {object} utils.ErrorResponse "already checked today"
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /habits/{habitId}/check [post]
func (hc *HabitController) CheckHabit(c *fiber.Ctx) error {
	result, err := hc.Habits.CheckIn(c.UserContext(), c.Params("habitId"), middleware.CurrentUserID(c))
	if err != nil {
		return respondError(c, hc.Logger, err)
	}
	return utils.OK(c, result)
}

// GetStreak godoc
// @Summary Current streak of a habit
// @Tags habits
// @Produce json
// @Param habitId path string true "Habit ID"
// @Success 200 {object} models.StreakResult
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /habits/{habitId}/streak [get]
func (hc *HabitController) GetStreak(c *fiber.Ctx) error {
	result, err := hc.Habits.Streak(c.UserContext(), c.Params("habitId"), middleware.CurrentUserID(c))
	if err != nil {
		return respondError(c, hc.Logger, err)
	}
	return utils.OK(c, result)
}

// ExportHabits godoc
// @Summary Export check history
// @Tags habits
// @Produce text/csv
// @Param format query string false "csv or xlsx" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /habits/export [get]
func (hc *HabitController) ExportHabits(c *fiber.Ctx) error {
	var buf bytes.Buffer
	contentType, err := hc.Export.Write(c.UserContext(), middleware.CurrentUserID(c), c.Query("format"), &buf)
	if err != nil {
		return respondError(c, hc.Logger, err)
	}

	filename := "habits.csv"
	if contentType == services.ContentTypeXLSX {
		filename = "habits.xlsx"
	}
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, contentType)
	return c.Status(fiber.StatusOK).Send(buf.Bytes())
}
