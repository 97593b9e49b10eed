package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"habittracker/backend/services"
	"habittracker/backend/utils"
)

type AuthController struct {
	Auth   *services.AuthService
	Logger *zap.Logger
}

func NewAuthController(auth *services.AuthService, logger *zap.Logger) *AuthController {
	return &AuthController{Auth: auth, Logger: logger}
}

type CredentialsRequest struct {
	Email    string `json:"email" validate:"required,email" example:"user@example.com"`
	Password string `json:"password" validate:"required,min=6" minLength:"6"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type ForgotRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param input body CredentialsRequest true "Email and password"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Router /auth/register [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req CredentialsRequest
	if msgs := parseBody(c, &req); msgs != nil {
		return utils.ValidationError(c, msgs)
	}

	user, err := ac.Auth.Register(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return respondError(c, ac.Logger, err)
	}

	return utils.Created(c, fiber.Map{
		"id":    user.ID,
		"email": user.Email,
	})
}

// Login godoc
// @Summary User login
// @Description Returns an access token and a refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param input body CredentialsRequest true "Login credentials"
// @Success 200 {object} models.TokenPair
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req CredentialsRequest
	if msgs := parseBody(c, &req); msgs != nil {
		return utils.ValidationError(c, msgs)
	}

	pair, err := ac.Auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return respondError(c, ac.Logger, err)
	}
	return utils.OK(c, pair)
}

// Refresh godoc
// @Summary Issue a new access token
// @Tags auth
// @Accept json
// @Produce json
// @Param input body RefreshRequest true "Refresh token"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /auth/refresh [post]
func (ac *AuthController) Refresh(c *fiber.Ctx) error {
	var req RefreshRequest
	if msgs := parseBody(c, &req); msgs != nil {
		return utils.ValidationError(c, msgs)
	}

	access, err := ac.Auth.Refresh(c.UserContext(), req.RefreshToken)
	if err != nil {
		return respondError(c, ac.Logger, err)
	}
	return utils.OK(c, fiber.Map{"accessToken": access})
}

// ForgotPassword godoc
// @Summary Request a password reset
// @Description Always answers 200 so that registered emails cannot be probed
// @Tags auth
// @Accept json
// @Produce json
// @Param input body ForgotRequest true "Account email"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Router /auth/forgot [post]
func (ac *AuthController) ForgotPassword(c *fiber.Ctx) error {
	var req ForgotRequest
	if msgs := parseBody(c, &req); msgs != nil {
		return utils.ValidationError(c, msgs)
	}

	if err := ac.Auth.ForgotPassword(c.UserContext(), req.Email); err != nil {
		return respondError(c, ac.Logger, err)
	}
	return utils.OK(c, fiber.Map{"message": "if the email is registered, a reset link has been sent"})
}

// ResetPassword godoc
// @Summary Reset password
// @Tags auth
// @Accept json
// @Produce json
// @Param input body ResetRequest true "Reset token and new password"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Router /auth/reset [post]
func (ac *AuthController) ResetPassword(c *fiber.Ctx) error {
	var req ResetRequest
	if msgs := parseBody(c, &req); msgs != nil {
		return utils.ValidationError(c, msgs)
	}

	if err := ac.Auth.ResetPassword(c.UserContext(), req.Token, req.Password); err != nil {
		return respondError(c, ac.Logger, err)
	}
	return utils.OK(c, fiber.Map{"message": "password updated"})
}
