package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"habittracker/backend/middleware"
	"habittracker/backend/services"
	"habittracker/backend/utils"
)

type MetricsController struct {
	Metrics *services.MetricsService
	Logger  *zap.Logger
}

func NewMetricsController(metrics *services.MetricsService, logger *zap.Logger) *MetricsController {
	return &MetricsController{Metrics: metrics, Logger: logger}
}

// GetMetrics godoc
// @Summary Aggregate metrics of own habits
// @Description Total habits, total check-ins and the longest streak over all habits
// @Tags metrics
// @Produce json
// @Success 200 {object} models.Metrics
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /metrics [get]
func (mc *MetricsController) GetMetrics(c *fiber.Ctx) error {
	result, err := mc.Metrics.Get(c.UserContext(), middleware.CurrentUserID(c))
	if err != nil {
		return respondError(c, mc.Logger, err)
	}
	return utils.OK(c, result)
}
