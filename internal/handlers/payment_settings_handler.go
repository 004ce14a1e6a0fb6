package handlers

import (
	"fmt"

	"dashboard/internal/middleware"
	"dashboard/internal/models"
	"dashboard/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PaymentSettingsHandler handles HTTP requests for payment settings.
type PaymentSettingsHandler struct {
	service  *services.PaymentSettingsService
	activity *services.ActivityService
	logger   *zap.Logger
}

// NewPaymentSettingsHandler creates a new PaymentSettingsHandler.
func NewPaymentSettingsHandler(service *services.PaymentSettingsService, activity *services.ActivityService, logger *zap.Logger) *PaymentSettingsHandler {
	return &PaymentSettingsHandler{service: service, activity: activity, logger: logger}
}

// RegisterRoutes registers the payment settings routes. All of them are
// admin only.
func (h *PaymentSettingsHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	settingsRoutes := router.Group("/admin/payment-settings", authRequired, middleware.RequirePage(models.PagePaymentSettings))
	settingsRoutes.Get("/", h.HandleGetPaymentSettings)
	settingsRoutes.Put("/", h.HandleUpdatePaymentSettings)
}

type paymentSettingsView struct {
	Project       models.Project       `json:"project"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod"`
}

func viewOf(s models.PaymentSettings) paymentSettingsView {
	return paymentSettingsView{Project: s.Project, PaymentMethod: s.PaymentMethod}
}

// HandleGetPaymentSettings returns one project's settings with ?project=,
// or every project's otherwise.
func (h *PaymentSettingsHandler) HandleGetPaymentSettings(c *fiber.Ctx) error {
	if project := c.Query("project"); project != "" {
		settings, err := h.service.GetPaymentSettings(project)
		if err != nil {
			return serviceError(c, h.logger, err, "Failed to fetch payment settings")
		}
		return respondData(c, fiber.StatusOK, viewOf(*settings))
	}

	all, err := h.service.GetAllPaymentSettings()
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to fetch payment settings")
	}
	views := make([]paymentSettingsView, len(all))
	for i, s := range all {
		views[i] = viewOf(s)
	}
	return respondData(c, fiber.StatusOK, views)
}

type paymentSettingsRequest struct {
	Project       string `json:"project"`
	PaymentMethod string `json:"paymentMethod"`
}

// HandleUpdatePaymentSettings selects a project's payment provider.
func (h *PaymentSettingsHandler) HandleUpdatePaymentSettings(c *fiber.Ctx) error {
	var req paymentSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	settings, err := h.service.UpdatePaymentSettings(req.Project, req.PaymentMethod)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to update payment settings")
	}

	h.activity.Record(actor(c), models.ActionUpdate, "paymentSettings", settings.ID,
		fmt.Sprintf("Updated %s payment method to %s", settings.Project, settings.PaymentMethod))
	return respondMessage(c, viewOf(*settings), "Payment settings updated successfully")
}
