package services

import (
	"fmt"

	"dashboard/internal/models"
	"dashboard/internal/repositories"
)

// PaymentSettingsService manages the payment provider of each project.
type PaymentSettingsService struct {
	repo repositories.PaymentSettingsRepository
}

// NewPaymentSettingsService creates a new PaymentSettingsService.
func NewPaymentSettingsService(repo repositories.PaymentSettingsRepository) *PaymentSettingsService {
	return &PaymentSettingsService{repo: repo}
}

// GetPaymentSettings returns the project's settings, storing the default
// provider for projects that were never configured.
func (s *PaymentSettingsService) GetPaymentSettings(projectName string) (*models.PaymentSettings, error) {
	project, err := parseProject(projectName)
	if err != nil {
		return nil, err
	}
	return s.repo.FirstOrCreate(project, models.DefaultPaymentMethod)
}

// GetAllPaymentSettings returns the settings of every project.
func (s *PaymentSettingsService) GetAllPaymentSettings() ([]models.PaymentSettings, error) {
	all := make([]models.PaymentSettings, 0, len(models.Projects))
	for _, project := range models.Projects {
		settings, err := s.repo.FirstOrCreate(project, models.DefaultPaymentMethod)
		if err != nil {
			return nil, err
		}
		all = append(all, *settings)
	}
	return all, nil
}

// UpdatePaymentSettings selects method for the project.
func (s *PaymentSettingsService) UpdatePaymentSettings(projectName, methodName string) (*models.PaymentSettings, error) {
	project, err := parseProject(projectName)
	if err != nil {
		return nil, err
	}
	method := models.PaymentMethod(methodName)
	if !method.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, methodName)
	}
	return s.repo.Upsert(project, method)
}
