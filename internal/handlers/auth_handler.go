package handlers

import (
	"errors"

	"dashboard/internal/models"
	"dashboard/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService *services.AuthService
	activity    *services.ActivityService
	validate    *validator.Validate
	logger      *zap.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, activity *services.ActivityService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		activity:    activity,
		validate:    validator.New(),
		logger:      logger,
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/login", h.HandleLogin)
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin handles admin login and issues a JWT token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	token, admin, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			h.logger.Info("Rejected login", zap.String("email", req.Email))
			return respondError(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return serviceError(c, h.logger, err, "Login failed")
	}

	identity := models.TokenPayload{UserID: admin.ID, Name: admin.Name, Email: admin.Email}
	h.activity.Record(identity, models.ActionLogin, "auth", admin.ID, "Signed in")

	return respondData(c, fiber.StatusOK, fiber.Map{
		"token": token,
		"user":  admin,
	})
}
