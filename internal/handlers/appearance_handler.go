package handlers

import (
	"fmt"

	"dashboard/internal/middleware"
	"dashboard/internal/models"
	"dashboard/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AppearanceHandler handles HTTP requests for storefront appearance.
type AppearanceHandler struct {
	service  *services.AppearanceService
	activity *services.ActivityService
	logger   *zap.Logger
}

// NewAppearanceHandler creates a new AppearanceHandler.
func NewAppearanceHandler(service *services.AppearanceService, activity *services.ActivityService, logger *zap.Logger) *AppearanceHandler {
	return &AppearanceHandler{service: service, activity: activity, logger: logger}
}

// RegisterRoutes registers the appearance routes.
func (h *AppearanceHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	appearanceRoutes := router.Group("/appearance")
	appearanceRoutes.Get("/:project", h.HandleGetAppearance)
	appearanceRoutes.Put("/:project", authRequired, middleware.RequirePage(models.PageAppearance), h.HandlePutAppearance)
}

// HandleGetAppearance returns a project's gallery rows.
func (h *AppearanceHandler) HandleGetAppearance(c *fiber.Ctx) error {
	images, err := h.service.GetAppearance(c.Params("project"))
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to fetch appearance settings")
	}
	return respondData(c, fiber.StatusOK, images)
}

type appearanceRequest struct {
	WorksImages *struct {
		Row1 *[]string `json:"row1"`
		Row2 *[]string `json:"row2"`
	} `json:"worksImages"`
}

// HandlePutAppearance replaces a project's gallery rows.
func (h *AppearanceHandler) HandlePutAppearance(c *fiber.Ctx) error {
	project := c.Params("project")
	if !models.Project(project).Valid() {
		return respondError(c, fiber.StatusBadRequest, "Invalid project name")
	}

	var req appearanceRequest
	if err := c.BodyParser(&req); err != nil ||
		req.WorksImages == nil || req.WorksImages.Row1 == nil || req.WorksImages.Row2 == nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid worksImages format")
	}
	images := models.WorksImages{Row1: *req.WorksImages.Row1, Row2: *req.WorksImages.Row2}

	appearance, err := h.service.PutAppearance(project, images)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to update appearance settings")
	}

	h.activity.Record(actor(c), models.ActionUpdate, "appearance", project,
		fmt.Sprintf("Updated %s appearance (%d row1 imgs, %d row2 imgs)", project, len(images.Row1), len(images.Row2)))
	return respondData(c, fiber.StatusOK, appearance)
}
