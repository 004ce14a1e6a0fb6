package handlers

import (
	"fmt"

	"dashboard/internal/middleware"
	"dashboard/internal/models"
	"dashboard/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CountryHandler handles HTTP requests for countries.
type CountryHandler struct {
	service  *services.CountryService
	activity *services.ActivityService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewCountryHandler creates a new CountryHandler.
func NewCountryHandler(service *services.CountryService, activity *services.ActivityService, logger *zap.Logger) *CountryHandler {
	return &CountryHandler{
		service:  service,
		activity: activity,
		validate: validator.New(),
		logger:   logger,
	}
}

// RegisterRoutes registers the country routes. Listing is public; changes
// need an admin with the countries page.
func (h *CountryHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	guard := middleware.RequirePage(models.PageCountries)

	countryRoutes := router.Group("/countries")
	countryRoutes.Get("/", h.HandleListCountries)
	// before /:id so "reorder" is not taken for an ID
	countryRoutes.Put("/reorder", authRequired, guard, h.HandleReorder)
	countryRoutes.Get("/:id", h.HandleGetCountry)
	countryRoutes.Put("/:id", authRequired, guard, h.HandleUpdateCountry)
}

func parseCountryFilter(active string) services.CountryFilter {
	switch active {
	case "false", "all":
		return services.CountriesAll
	case "inactive":
		return services.CountriesInactive
	default:
		return services.CountriesActive
	}
}

// HandleListCountries lists countries in display order.
func (h *CountryHandler) HandleListCountries(c *fiber.Ctx) error {
	filter := parseCountryFilter(c.Query("active"))
	countries, err := h.service.ListCountries(filter, c.Query("locale", "ar"))
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to fetch countries")
	}
	return respondData(c, fiber.StatusOK, countries)
}

// HandleGetCountry retrieves a single country by its ID.
func (h *CountryHandler) HandleGetCountry(c *fiber.Ctx) error {
	country, err := h.service.GetCountry(c.Params("id"))
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to fetch country")
	}
	return respondData(c, fiber.StatusOK, country)
}

// HandleUpdateCountry applies a partial update to a country.
func (h *CountryHandler) HandleUpdateCountry(c *fiber.Ctx) error {
	id := c.Params("id")
	var patch models.CountryPatch
	if err := c.BodyParser(&patch); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(patch); err != nil {
		return validationFailed(c, err)
	}

	country, err := h.service.UpdateCountry(id, patch)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to update country")
	}

	h.activity.Record(actor(c), models.ActionUpdate, "country", id,
		fmt.Sprintf("Updated country %s (active: %t)", country.Code, country.IsActive))
	return respondData(c, fiber.StatusOK, country)
}

type reorderRequest struct {
	OrderedIDs *[]string `json:"orderedIds"`
}

// HandleReorder sets the display order of the active countries.
func (h *CountryHandler) HandleReorder(c *fiber.Ctx) error {
	var req reorderRequest
	if err := c.BodyParser(&req); err != nil || req.OrderedIDs == nil {
		return respondError(c, fiber.StatusBadRequest, "orderedIds array is required")
	}

	countries, err := h.service.Reorder(*req.OrderedIDs)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to reorder countries")
	}

	h.activity.Record(actor(c), models.ActionUpdate, "country", "bulk",
		fmt.Sprintf("Reordered %d countries", len(*req.OrderedIDs)))
	return respondMessage(c, countries, "Countries reordered successfully")
}
