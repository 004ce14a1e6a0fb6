package handlers

import (
	"strconv"

	"dashboard/internal/middleware"
	"dashboard/internal/models"
	"dashboard/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ActivityHandler serves the activity log.
type ActivityHandler struct {
	service *services.ActivityService
	logger  *zap.Logger
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(service *services.ActivityService, logger *zap.Logger) *ActivityHandler {
	return &ActivityHandler{service: service, logger: logger}
}

// RegisterRoutes registers the activity log routes.
func (h *ActivityHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	router.Get("/logs", authRequired, middleware.RequirePage(models.PageActivityLogs), h.HandleListLogs)
}

// HandleListLogs lists activity, newest first, optionally for one resource.
func (h *ActivityHandler) HandleListLogs(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	result, err := h.service.ListActivityLogs(c.Query("resource"), page, limit)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to fetch activity logs")
	}
	return respondData(c, fiber.StatusOK, result)
}
