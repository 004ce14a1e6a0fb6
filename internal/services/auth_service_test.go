package services_test

import (
	"testing"
	"time"

	"dashboard/internal/models"
	"dashboard/internal/repositories"
	"dashboard/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test_jwt_secret"

func storedAdmin(t *testing.T, password string) *models.Admin {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.Admin{
		ID:           "admin-1",
		Name:         "Mona",
		Email:        "mona@example.com",
		Password:     string(hash),
		Role:         models.RoleAdmin,
		AllowedPages: []string{models.PageProducts, models.PageCountries},
	}
}

func TestCreateAdmin_HashesPassword(t *testing.T) {
	mockRepo := new(MockAdminRepository)
	authService := services.NewAuthService(mockRepo, testSecret, time.Hour)

	mockRepo.On("GetByEmail", "mona@example.com").Return(nil, repositories.ErrNotFound)
	mockRepo.On("Create", mock.MatchedBy(func(a *models.Admin) bool {
		return bcrypt.CompareHashAndPassword([]byte(a.Password), []byte("password123")) == nil
	})).Return(nil)

	admin := &models.Admin{Name: "Mona", Email: " Mona@Example.com ", Password: "password123", Role: models.RoleAdmin}
	require.NoError(t, authService.CreateAdmin(admin))

	assert.Equal(t, "mona@example.com", admin.Email)
	assert.NotEqual(t, "password123", admin.Password)
	mockRepo.AssertExpectations(t)
}

func TestCreateAdmin_EmailTaken(t *testing.T) {
	mockRepo := new(MockAdminRepository)
	authService := services.NewAuthService(mockRepo, testSecret, time.Hour)

	mockRepo.On("GetByEmail", "mona@example.com").Return(storedAdmin(t, "password123"), nil)

	err := authService.CreateAdmin(&models.Admin{Email: "mona@example.com", Password: "password123"})

	assert.ErrorIs(t, err, services.ErrEmailTaken)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestLogin_TokenCarriesIdentity(t *testing.T) {
	mockRepo := new(MockAdminRepository)
	authService := services.NewAuthService(mockRepo, testSecret, time.Hour)

	mockRepo.On("GetByEmail", "mona@example.com").Return(storedAdmin(t, "password123"), nil)

	token, admin, err := authService.Login("MONA@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "admin-1", admin.ID)

	payload, err := authService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, models.TokenPayload{
		UserID:       "admin-1",
		Name:         "Mona",
		Email:        "mona@example.com",
		Role:         models.RoleAdmin,
		AllowedPages: []string{models.PageProducts, models.PageCountries},
	}, payload)
	assert.True(t, payload.CanAccess(models.PageCountries))
	assert.False(t, payload.CanAccess(models.PagePaymentSettings))
}

func TestLogin_WrongPassword(t *testing.T) {
	mockRepo := new(MockAdminRepository)
	authService := services.NewAuthService(mockRepo, testSecret, time.Hour)

	mockRepo.On("GetByEmail", "mona@example.com").Return(storedAdmin(t, "password123"), nil)

	_, _, err := authService.Login("mona@example.com", "wrong-password")

	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	mockRepo := new(MockAdminRepository)
	authService := services.NewAuthService(mockRepo, testSecret, time.Hour)

	mockRepo.On("GetByEmail", "ghost@example.com").Return(nil, repositories.ErrNotFound)

	_, _, err := authService.Login("ghost@example.com", "password123")

	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestValidateToken_Rejects(t *testing.T) {
	mockRepo := new(MockAdminRepository)
	mockRepo.On("GetByEmail", "mona@example.com").Return(storedAdmin(t, "password123"), nil)

	expired := services.NewAuthService(mockRepo, testSecret, -time.Minute)
	expiredToken, _, err := expired.Login("mona@example.com", "password123")
	require.NoError(t, err)

	other := services.NewAuthService(mockRepo, "another_secret", time.Hour)
	foreignToken, _, err := other.Login("mona@example.com", "password123")
	require.NoError(t, err)

	authService := services.NewAuthService(mockRepo, testSecret, time.Hour)
	for name, token := range map[string]string{
		"expired":      expiredToken,
		"wrong secret": foreignToken,
		"garbage":      "not.a.token",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := authService.ValidateToken(token)
			assert.ErrorIs(t, err, services.ErrInvalidToken)
		})
	}
}

func TestTokenPayload_SuperAdminSeesEverything(t *testing.T) {
	payload := models.TokenPayload{Role: models.RoleSuperAdmin}
	assert.True(t, payload.CanAccess(models.PagePaymentSettings))
}
