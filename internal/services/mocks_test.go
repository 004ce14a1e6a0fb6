package services_test

import (
	"context"
	"io"

	"dashboard/internal/models"
	"dashboard/internal/repositories"
	"dashboard/pkg/imagehost"

	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(filter repositories.ProductFilter, offset, limit int) ([]models.Product, int64, error) {
	args := m.Called(filter, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	return m.Called(product).Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	return m.Called(product).Error(0)
}

func (m *MockProductRepository) Delete(id string) error {
	return m.Called(id).Error(0)
}

// MockCountryRepository is a mock implementation of repositories.CountryRepository
type MockCountryRepository struct {
	mock.Mock
}

func (m *MockCountryRepository) countries(args mock.Arguments) ([]models.Country, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	// hand out a copy; services sort in place
	src := args.Get(0).([]models.Country)
	return append([]models.Country(nil), src...), args.Error(1)
}

func (m *MockCountryRepository) GetAll() ([]models.Country, error) {
	return m.countries(m.Called())
}

func (m *MockCountryRepository) GetActive() ([]models.Country, error) {
	return m.countries(m.Called())
}

func (m *MockCountryRepository) GetByID(id string) (*models.Country, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	c := *args.Get(0).(*models.Country)
	return &c, args.Error(1)
}

func (m *MockCountryRepository) GetByIDs(ids []string) ([]models.Country, error) {
	return m.countries(m.Called(ids))
}

func (m *MockCountryRepository) Create(country *models.Country) error {
	return m.Called(country).Error(0)
}

func (m *MockCountryRepository) Update(country *models.Country) error {
	return m.Called(country).Error(0)
}

func (m *MockCountryRepository) Reorder(orderedIDs []string) error {
	return m.Called(orderedIDs).Error(0)
}

// MockAdminRepository is a mock implementation of repositories.AdminRepository
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) Create(admin *models.Admin) error {
	return m.Called(admin).Error(0)
}

func (m *MockAdminRepository) GetByEmail(email string) (*models.Admin, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Admin), args.Error(1)
}

func (m *MockAdminRepository) GetByID(id string) (*models.Admin, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Admin), args.Error(1)
}

// MockActivityLogRepository is a mock implementation of repositories.ActivityLogRepository
type MockActivityLogRepository struct {
	mock.Mock
}

func (m *MockActivityLogRepository) Create(entry *models.ActivityLog) error {
	return m.Called(entry).Error(0)
}

func (m *MockActivityLogRepository) List(resource string, offset, limit int) ([]models.ActivityLog, int64, error) {
	args := m.Called(resource, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.ActivityLog), args.Get(1).(int64), args.Error(2)
}

// MockAppearanceRepository is a mock implementation of repositories.AppearanceRepository
type MockAppearanceRepository struct {
	mock.Mock
}

func (m *MockAppearanceRepository) GetByProject(project models.Project) (*models.Appearance, error) {
	args := m.Called(project)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appearance), args.Error(1)
}

func (m *MockAppearanceRepository) Upsert(project models.Project, images models.WorksImages) (*models.Appearance, error) {
	args := m.Called(project, images)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appearance), args.Error(1)
}

// MockPaymentSettingsRepository is a mock implementation of repositories.PaymentSettingsRepository
type MockPaymentSettingsRepository struct {
	mock.Mock
}

func (m *MockPaymentSettingsRepository) FirstOrCreate(project models.Project, fallback models.PaymentMethod) (*models.PaymentSettings, error) {
	args := m.Called(project, fallback)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PaymentSettings), args.Error(1)
}

func (m *MockPaymentSettingsRepository) Upsert(project models.Project, method models.PaymentMethod) (*models.PaymentSettings, error) {
	args := m.Called(project, method)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PaymentSettings), args.Error(1)
}

// MockPublisher is a mock implementation of services.EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(body []byte) error {
	return m.Called(body).Error(0)
}

// MockImageStore is a mock implementation of services.ImageStore
type MockImageStore struct {
	mock.Mock
}

func (m *MockImageStore) Upload(ctx context.Context, file io.Reader, folder, publicID string) (imagehost.Image, error) {
	args := m.Called(ctx, file, folder, publicID)
	return args.Get(0).(imagehost.Image), args.Error(1)
}

func (m *MockImageStore) Destroy(ctx context.Context, publicID string) error {
	return m.Called(ctx, publicID).Error(0)
}

func intPtr(i int) *int { return &i }

func country(id, code, nameAr, nameEn, currency string, active bool, order *int) models.Country {
	return models.Country{
		ID:           id,
		Code:         code,
		Name:         models.LocalizedText{Ar: nameAr, En: nameEn},
		CurrencyCode: currency,
		IsActive:     active,
		SortOrder:    order,
	}
}

func codes(countries []models.Country) []string {
	out := make([]string, len(countries))
	for i, c := range countries {
		out[i] = c.Code
	}
	return out
}

