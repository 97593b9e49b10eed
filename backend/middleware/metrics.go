package middleware

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"habittracker/backend/metrics"
)

// responseStatus is the status the client will see. A returned error is only
// turned into a response by the app's ErrorHandler after the middleware chain.
func responseStatus(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}

// MetricsMiddleware records every request under its route pattern.
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		metrics.RecordHTTPRequest(c.Method(), c.Route().Path, responseStatus(c, err), time.Since(start))
		return err
	}
}
