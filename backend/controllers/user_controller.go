package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"habittracker/backend/middleware"
	"habittracker/backend/services"
	"habittracker/backend/utils"
)

type UserController struct {
	Users  *services.UserService
	Logger *zap.Logger
}

func NewUserController(users *services.UserService, logger *zap.Logger) *UserController {
	return &UserController{Users: users, Logger: logger}
}

type UpdateProfileRequest struct {
	Email string `json:"email" validate:"required,email" example:"user@example.com" format:"email"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user admin" enums:"user,admin"`
}

// GetProfile godoc
// @Summary Get user profile
// @Tags users
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /users/me [get]
func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	user, err := uc.Users.Profile(c.UserContext(), middleware.CurrentUserID(c))
	if err != nil {
		return respondError(c, uc.Logger, err)
	}
	return utils.OK(c, user)
}

// UpdateProfile godoc
// @Summary Update user profile
// @Tags users
// @Accept json
// @Produce json
// @Param input body UpdateProfileRequest true "Profile update data"
// @Success 200 {object} models.User
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /users/me [patch]
func (uc *UserController) UpdateProfile(c *fiber.Ctx) error {
	var req UpdateProfileRequest
	if msgs := parseBody(c, &req); msgs != nil {
		return utils.ValidationError(c, msgs)
	}

	user, err := uc.Users.UpdateEmail(c.UserContext(), middleware.CurrentUserID(c), req.Email)
	if err != nil {
		return respondError(c, uc.Logger, err)
	}
	return utils.OK(c, user)
}

// UpdateRole godoc
// @Summary Change a user's role
// @Description Admin only
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param input body UpdateRoleRequest true "New role"
// @Success 200 {object} models.User
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /users/{id}/role [patch]
func (uc *UserController) UpdateRole(c *fiber.Ctx) error {
	var req UpdateRoleRequest
	if msgs := parseBody(c, &req); msgs != nil {
		return utils.ValidationError(c, msgs)
	}

	user, err := uc.Users.UpdateRole(c.UserContext(), c.Params("id"), req.Role)
	if err != nil {
		return respondError(c, uc.Logger, err)
	}
	return utils.OK(c, user)
}
