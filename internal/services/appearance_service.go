package services

import (
	"errors"
	"fmt"

	"dashboard/internal/models"
	"dashboard/internal/repositories"
)

// AppearanceService manages the per-project landing page images.
type AppearanceService struct {
	repo repositories.AppearanceRepository
}

// NewAppearanceService creates a new AppearanceService.
func NewAppearanceService(repo repositories.AppearanceRepository) *AppearanceService {
	return &AppearanceService{repo: repo}
}

func parseProject(name string) (models.Project, error) {
	project := models.Project(name)
	if !project.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidProject, name)
	}
	return project, nil
}

func normalizeImages(images models.WorksImages) models.WorksImages {
	if images.Row1 == nil {
		images.Row1 = []string{}
	}
	if images.Row2 == nil {
		images.Row2 = []string{}
	}
	return images
}

// GetAppearance returns the project's gallery, empty when never saved.
func (s *AppearanceService) GetAppearance(projectName string) (models.WorksImages, error) {
	project, err := parseProject(projectName)
	if err != nil {
		return models.WorksImages{}, err
	}

	appearance, err := s.repo.GetByProject(project)
	if errors.Is(err, repositories.ErrNotFound) {
		return normalizeImages(models.WorksImages{}), nil
	}
	if err != nil {
		return models.WorksImages{}, err
	}
	return normalizeImages(appearance.WorksImages), nil
}

// PutAppearance replaces the project's gallery.
func (s *AppearanceService) PutAppearance(projectName string, images models.WorksImages) (*models.Appearance, error) {
	project, err := parseProject(projectName)
	if err != nil {
		return nil, err
	}
	return s.repo.Upsert(project, normalizeImages(images))
}
