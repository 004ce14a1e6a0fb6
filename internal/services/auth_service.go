package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dashboard/internal/models"
	"dashboard/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles business logic for authentication and authorization.
type AuthService struct {
	adminRepo repositories.AdminRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(adminRepo repositories.AdminRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		adminRepo: adminRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

// CreateAdmin hashes the admin's password and saves the account.
func (s *AuthService) CreateAdmin(admin *models.Admin) error {
	admin.Email = strings.ToLower(strings.TrimSpace(admin.Email))
	if existing, err := s.adminRepo.GetByEmail(admin.Email); err == nil && existing != nil {
		return fmt.Errorf("%w: %s", ErrEmailTaken, admin.Email)
	} else if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	admin.Password = string(hashedPassword)

	if err := s.adminRepo.Create(admin); err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

// Login authenticates an admin and returns a signed token for them.
func (s *AuthService) Login(email, password string) (string, *models.Admin, error) {
	admin, err := s.adminRepo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		// do not reveal whether the account exists
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":       admin.ID,
		"name":          admin.Name,
		"email":         admin.Email,
		"role":          admin.Role,
		"allowed_pages": admin.AllowedPages,
		"exp":           now.Add(s.tokenTTL).Unix(),
		"iat":           now.Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, admin, nil
}

// ValidateToken parses and validates a token, returning its payload.
func (s *AuthService) ValidateToken(tokenString string) (models.TokenPayload, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return models.TokenPayload{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return models.TokenPayload{}, ErrInvalidToken
	}

	payload := models.TokenPayload{
		UserID: stringClaim(claims, "user_id"),
		Name:   stringClaim(claims, "name"),
		Email:  stringClaim(claims, "email"),
		Role:   stringClaim(claims, "role"),
	}
	if payload.UserID == "" {
		return models.TokenPayload{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	if pages, ok := claims["allowed_pages"].([]interface{}); ok {
		for _, p := range pages {
			if page, ok := p.(string); ok {
				payload.AllowedPages = append(payload.AllowedPages, page)
			}
		}
	}
	return payload, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	v, _ := claims[key].(string)
	return v
}
