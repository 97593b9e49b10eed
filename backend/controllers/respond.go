package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"habittracker/backend/services"
	"habittracker/backend/utils"
)

// respondError maps a service error onto its HTTP answer. Undeclared errors are
// logged and hidden behind a 500.
func respondError(c *fiber.Ctx, logger *zap.Logger, err error) error {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		return utils.ValidationError(c, verr.Messages)
	}

	switch services.KindOf(err) {
	case services.KindNotFound:
		return utils.NotFound(c, err.Error())
	case services.KindForbidden:
		return utils.Forbidden(c, err.Error())
	case services.KindUnauthorized:
		return utils.Unauthorized(c, err.Error())
	case services.KindAlreadyChecked, services.KindValidation, services.KindConflict:
		return utils.BadRequest(c, err.Error())
	}

	logger.Error("unhandled error",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	return utils.InternalServerError(c, "internal server error")
}

// parseBody decodes the JSON body into out and runs its validate tags.
func parseBody(c *fiber.Ctx, out interface{}) []string {
	if err := c.BodyParser(out); err != nil {
		return []string{"cannot parse JSON body"}
	}
	return utils.ValidateStruct(out)
}
