package handlers

import (
	"fmt"
	"strings"

	"dashboard/internal/models"
	"dashboard/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const maxImageSize = 10 << 20

// UploadHandler handles image uploads to the image host.
type UploadHandler struct {
	service  *services.ImageService
	activity *services.ActivityService
	logger   *zap.Logger
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(service *services.ImageService, activity *services.ActivityService, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{service: service, activity: activity, logger: logger}
}

// RegisterRoutes registers the upload routes. Any signed-in admin may
// upload, since several pages manage images.
func (h *UploadHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	uploadRoutes := router.Group("/upload", authRequired)
	uploadRoutes.Post("/image", h.HandleUploadImage)
	uploadRoutes.Delete("/image", h.HandleDeleteImage)
}

// HandleUploadImage uploads the multipart "file" field.
func (h *UploadHandler) HandleUploadImage(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "No file provided")
	}
	if !strings.HasPrefix(header.Header.Get(fiber.HeaderContentType), "image/") {
		return respondError(c, fiber.StatusBadRequest, "File must be an image")
	}
	if header.Size > maxImageSize {
		return respondError(c, fiber.StatusBadRequest, "File size must be at most 10MB")
	}

	file, err := header.Open()
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to upload image")
	}
	defer file.Close()

	image, err := h.service.UploadImage(c.UserContext(), file, c.FormValue("folder"))
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to upload image")
	}

	h.activity.Record(actor(c), models.ActionCreate, "image", image.PublicID,
		fmt.Sprintf("Uploaded %s (%d bytes)", header.Filename, header.Size))
	return respondData(c, fiber.StatusOK, image)
}

type deleteImageRequest struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// HandleDeleteImage removes an image by URL or public ID.
func (h *UploadHandler) HandleDeleteImage(c *fiber.Ctx) error {
	var req deleteImageRequest
	if err := c.BodyParser(&req); err != nil || (req.URL == "" && req.PublicID == "") {
		return respondError(c, fiber.StatusBadRequest, "url or publicId is required")
	}

	publicID, err := h.service.DeleteImage(c.UserContext(), req.URL, req.PublicID)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to delete image")
	}

	h.activity.Record(actor(c), models.ActionDelete, "image", publicID, "Deleted image")
	return respondMessage(c, fiber.Map{"publicId": publicID}, "Image deleted successfully")
}
