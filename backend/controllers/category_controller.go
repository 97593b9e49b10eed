package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"habittracker/backend/services"
	"habittracker/backend/utils"
)

type CategoryController struct {
	Categories *services.CategoryService
	Logger     *zap.Logger
}

func NewCategoryController(categories *services.CategoryService, logger *zap.Logger) *CategoryController {
	return &CategoryController{Categories: categories, Logger: logger}
}

type CategoryRequest struct {
	Name string `json:"name" validate:"required,min=3" example:"Health"`
}

// CreateCategory godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param input body CategoryRequest true "Category"
// @Success 201 {object} models.Category
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /categories [post]
func (cc *CategoryController) CreateCategory(c *fiber.Ctx) error {
	var req CategoryRequest
	if msgs := parseBody(c, &req); msgs != nil {
		return utils.ValidationError(c, msgs)
	}

	category, err := cc.Categories.Create(c.UserContext(), req.Name)
	if err != nil {
		return respondError(c, cc.Logger, err)
	}
	return utils.Created(c, category)
}

// ListCategories godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {array} models.Category
// @Security ApiKeyAuth
// @Router /categories [get]
func (cc *CategoryController) ListCategories(c *fiber.Ctx) error {
	categories, err := cc.Categories.List(c.UserContext())
	if err != nil {
		return respondError(c, cc.Logger, err)
	}
	return utils.OK(c, categories)
}

// GetCategory godoc
// @Summary Get a category
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} models.Category
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /categories/{id} [get]
func (cc *CategoryController) GetCategory(c *fiber.Ctx) error {
	category, err := cc.Categories.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, cc.Logger, err)
	}
	return utils.OK(c, category)
}

// UpdateCategory godoc
// @Summary Rename a category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param input body CategoryRequest true "New name"
// @Success 200 {object} models.Category
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /categories/{id} [put]
func (cc *CategoryController) UpdateCategory(c *fiber.Ctx) error {
	var req CategoryRequest
	if msgs := parseBody(c, &req); msgs != nil {
		return utils.ValidationError(c, msgs)
	}

	category, err := cc.Categories.Update(c.UserContext(), c.Params("id"), req.Name)
	if err != nil {
		return respondError(c, cc.Logger, err)
	}
	return utils.OK(c, category)
}

// DeleteCategory godoc
// @Summary Delete a category
// @Tags categories
// @Param id path string true "Category ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /categories/{id} [delete]
func (cc *CategoryController) DeleteCategory(c *fiber.Ctx) error {
	if err := cc.Categories.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, cc.Logger, err)
	}
	return utils.NoContent(c)
}
