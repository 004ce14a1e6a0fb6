package repositories

import (
	"dashboard/internal/models"
)

// CountryRepository defines the interface for country data access.
type CountryRepository interface {
	GetAll() ([]models.Country, error)
	GetActive() ([]models.Country, error)
	GetByID(id string) (*models.Country, error)
	GetByIDs(ids []string) ([]models.Country, error)
	Create(country *models.Country) error
	Update(country *models.Country) error
	// Reorder gives orderedIDs the sort keys 0..n-1 in order and clears the
	// sort key of every other country, atomically.
	Reorder(orderedIDs []string) error
}
