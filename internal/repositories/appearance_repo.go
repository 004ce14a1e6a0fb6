package repositories

import (
	"errors"
	"fmt"

	"dashboard/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppearanceRepository defines the interface for appearance data access.
type AppearanceRepository interface {
	GetByProject(project models.Project) (*models.Appearance, error)
	Upsert(project models.Project, images models.WorksImages) (*models.Appearance, error)
}

// GORMAppearanceRepository is a GORM implementation of AppearanceRepository.
type GORMAppearanceRepository struct {
	db *gorm.DB
}

// NewGORMAppearanceRepository creates a new instance of GORMAppearanceRepository.
func NewGORMAppearanceRepository(db *gorm.DB) *GORMAppearanceRepository {
	return &GORMAppearanceRepository{db: db}
}

func (r *GORMAppearanceRepository) GetByProject(project models.Project) (*models.Appearance, error) {
	var appearance models.Appearance
	if err := r.db.First(&appearance, "project = ?", project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("appearance for %s: %w", project, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get appearance for %s: %w", project, err)
	}
	return &appearance, nil
}

// Upsert stores images as the project's gallery, creating the record on
// first use. Exactly one record exists per project afterwards.
func (r *GORMAppearanceRepository) Upsert(project models.Project, images models.WorksImages) (*models.Appearance, error) {
	var appearance models.Appearance
	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.First(&appearance, "project = ?", project).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			appearance = models.Appearance{
				ID:          uuid.New().String(),
				Project:     project,
				WorksImages: images,
			}
			return tx.Create(&appearance).Error
		}
		if err != nil {
			return err
		}
		appearance.WorksImages = images
		return tx.Save(&appearance).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert appearance for %s: %w", project, err)
	}
	return &appearance, nil
}
