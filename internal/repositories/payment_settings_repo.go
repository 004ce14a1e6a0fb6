package repositories

import (
	"errors"
	"fmt"

	"dashboard/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentSettingsRepository defines the interface for payment settings data access.
type PaymentSettingsRepository interface {
	// FirstOrCreate returns the project's settings, storing fallback first
	// when the project has none.
	FirstOrCreate(project models.Project, fallback models.PaymentMethod) (*models.PaymentSettings, error)
	Upsert(project models.Project, method models.PaymentMethod) (*models.PaymentSettings, error)
}

// GORMPaymentSettingsRepository is a GORM implementation of PaymentSettingsRepository.
type GORMPaymentSettingsRepository struct {
	db *gorm.DB
}

// NewGORMPaymentSettingsRepository creates a new instance of GORMPaymentSettingsRepository.
func NewGORMPaymentSettingsRepository(db *gorm.DB) *GORMPaymentSettingsRepository {
	return &GORMPaymentSettingsRepository{db: db}
}

func (r *GORMPaymentSettingsRepository) FirstOrCreate(project models.Project, fallback models.PaymentMethod) (*models.PaymentSettings, error) {
	settings := models.PaymentSettings{}
	err := r.db.Where("project = ?", project).
		Attrs(models.PaymentSettings{ID: uuid.New().String(), Project: project, PaymentMethod: fallback}).
		FirstOrCreate(&settings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load payment settings for %s: %w", project, err)
	}
	return &settings, nil
}

func (r *GORMPaymentSettingsRepository) Upsert(project models.Project, method models.PaymentMethod) (*models.PaymentSettings, error) {
	var settings models.PaymentSettings
	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.First(&settings, "project = ?", project).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			settings = models.PaymentSettings{
				ID:            uuid.New().String(),
				Project:       project,
				PaymentMethod: method,
			}
			return tx.Create(&settings).Error
		}
		if err != nil {
			return err
		}
		settings.PaymentMethod = method
		return tx.Save(&settings).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update payment settings for %s: %w", project, err)
	}
	return &settings, nil
}
