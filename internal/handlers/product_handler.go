package handlers

import (
	"fmt"
	"strconv"

	"dashboard/internal/middleware"
	"dashboard/internal/models"
	"dashboard/internal/repositories"
	"dashboard/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	activity *services.ActivityService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, activity *services.ActivityService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service:  service,
		activity: activity,
		validate: validator.New(),
		logger:   logger,
	}
}

// RegisterRoutes registers the product routes.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	guard := middleware.RequirePage(models.PageProducts)

	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", authRequired, guard, h.HandleCreateProduct)
	productRoutes.Put("/:id", authRequired, guard, h.HandleUpdateProduct)
	productRoutes.Delete("/:id", authRequired, guard, h.HandleDeleteProduct)
	productRoutes.Post("/:id/auto-price", authRequired, guard, h.HandleAutoPrice)
}

func boolQuery(c *fiber.Ctx, key string) *bool {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v := raw == "true"
	return &v
}

// HandleGetProducts lists products page by page.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))

	filter := repositories.ProductFilter{InStock: boolQuery(c, "inStock")}
	if c.Query("sacrifice") == "true" {
		sacrifice := true
		filter.WorkAsSacrifice = &sacrifice
	}

	result, err := h.service.ListProducts(filter, page, limit)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to fetch products")
	}
	return respondData(c, fiber.StatusOK, result)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	product, err := h.service.GetProductByID(c.Params("id"))
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to fetch product")
	}
	return respondData(c, fiber.StatusOK, product)
}

func (h *ProductHandler) parseProduct(c *fiber.Ctx) (*models.Product, error) {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return nil, respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(product); err != nil {
		return nil, validationFailed(c, err)
	}
	return &product, nil
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	product, respErr := h.parseProduct(c)
	if product == nil {
		return respErr
	}

	if err := h.service.CreateProduct(product); err != nil {
		return serviceError(c, h.logger, err, "Failed to create product")
	}

	h.activity.Record(actor(c), models.ActionCreate, "product", product.ID,
		fmt.Sprintf("Created product %s (%s)", product.Name.Ar, product.BaseCurrency))
	return respondData(c, fiber.StatusCreated, product)
}

// HandleUpdateProduct replaces an existing product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	product, respErr := h.parseProduct(c)
	if product == nil {
		return respErr
	}
	product.ID = c.Params("id")

	if err := h.service.UpdateProduct(product); err != nil {
		return serviceError(c, h.logger, err, "Failed to update product")
	}

	h.activity.Record(actor(c), models.ActionUpdate, "product", product.ID,
		fmt.Sprintf("Updated product %s", product.Name.Ar))
	return respondData(c, fiber.StatusOK, product)
}

// HandleDeleteProduct deletes a product by its ID.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteProduct(id); err != nil {
		return serviceError(c, h.logger, err, "Failed to delete product")
	}

	h.activity.Record(actor(c), models.ActionDelete, "product", id, "Deleted product")
	return respondMessage(c, fiber.Map{"id": id}, "Product deleted successfully")
}

type autoPriceRequest struct {
	OverrideManual bool `json:"overrideManual"`
}

// HandleAutoPrice recomputes a product's per-currency prices. The body is
// optional.
func (h *ProductHandler) HandleAutoPrice(c *fiber.Ctx) error {
	id := c.Params("id")
	var req autoPriceRequest
	if len(c.Body()) > 0 {
		_ = c.BodyParser(&req)
	}

	result, err := h.service.AutoPrice(id, req.OverrideManual)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to auto-price product")
	}

	h.activity.Record(actor(c), models.ActionUpdate, "product", id,
		fmt.Sprintf("Auto-priced product from %s (override manual: %t)", result.BaseCurrency, req.OverrideManual))
	return respondData(c, fiber.StatusOK, result)
}
