package handlers

import (
	"errors"
	"fmt"

	"dashboard/internal/middleware"
	"dashboard/internal/models"
	"dashboard/internal/repositories"
	"dashboard/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func respondData(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

func respondMessage(c *fiber.Ctx, data interface{}, message string) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
		"message": message,
	})
}

func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

// validationFailed reports each failing field with the tag it failed on.
func validationFailed(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return respondError(c, fiber.StatusBadRequest, err.Error())
	}
	errorMessages := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		errorMessages[e.Namespace()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"error":   "Validation failed",
		"errors":  errorMessages,
	})
}

// serviceError maps a service error to its status. Unexpected errors are
// logged and answered with fallback only.
func serviceError(c *fiber.Ctx, logger *zap.Logger, err error, fallback string) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return respondError(c, fiber.StatusNotFound, err.Error())
	case services.IsBadRequest(err):
		return respondError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrImageHostUnavailable):
		return respondError(c, fiber.StatusServiceUnavailable, err.Error())
	}
	logger.Error(fallback,
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err))
	return respondError(c, fiber.StatusInternalServerError, fallback)
}

func actor(c *fiber.Ctx) models.TokenPayload {
	admin, _ := middleware.CurrentAdmin(c)
	return admin
}
