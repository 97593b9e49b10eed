package controllers

import (
	"github.com/gofiber/fiber/v2"

	"habittracker/backend/utils"
)

// Health godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /healthz [get]
func Health(c *fiber.Ctx) error {
	return utils.OK(c, fiber.Map{"status": "ok"})
}
