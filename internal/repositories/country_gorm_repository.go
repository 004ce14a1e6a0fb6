package repositories

import (
	"errors"
	"fmt"

	"dashboard/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCountryRepository is a GORM implementation of CountryRepository.
type GORMCountryRepository struct {
	db *gorm.DB
}

// NewGORMCountryRepository creates a new instance of GORMCountryRepository.
func NewGORMCountryRepository(db *gorm.DB) *GORMCountryRepository {
	return &GORMCountryRepository{db: db}
}

func (r *GORMCountryRepository) GetAll() ([]models.Country, error) {
	var countries []models.Country
	if err := r.db.Find(&countries).Error; err != nil {
		return nil, fmt.Errorf("failed to get countries: %w", err)
	}
	return countries, nil
}

func (r *GORMCountryRepository) GetActive() ([]models.Country, error) {
	var countries []models.Country
	if err := r.db.Where("is_active = ?", true).Find(&countries).Error; err != nil {
		return nil, fmt.Errorf("failed to get active countries: %w", err)
	}
	return countries, nil
}

func (r *GORMCountryRepository) GetByID(id string) (*models.Country, error) {
	var country models.Country
	if err := r.db.First(&country, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("country with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get country by ID %s: %w", id, err)
	}
	return &country, nil
}

func (r *GORMCountryRepository) GetByIDs(ids []string) ([]models.Country, error) {
	var countries []models.Country
	if len(ids) == 0 {
		return countries, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&countries).Error; err != nil {
		return nil, fmt.Errorf("failed to get countries by IDs: %w", err)
	}
	return countries, nil
}

func (r *GORMCountryRepository) Create(country *models.Country) error {
	if country.ID == "" {
		country.ID = uuid.New().String()
	}
	if err := r.db.Create(country).Error; err != nil {
		return fmt.Errorf("failed to create country: %w", err)
	}
	return nil
}

func (r *GORMCountryRepository) Update(country *models.Country) error {
	res := r.db.Model(country).Select("*").Omit("created_at").Updates(country)
	if res.Error != nil {
		return fmt.Errorf("failed to update country: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("country with ID %s: %w", country.ID, ErrNotFound)
	}
	return nil
}

func (r *GORMCountryRepository) Reorder(orderedIDs []string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for i, id := range orderedIDs {
			if err := tx.Model(&models.Country{}).Where("id = ?", id).Update("sort_order", i).Error; err != nil {
				return err
			}
		}

		rest := tx.Model(&models.Country{})
		if len(orderedIDs) > 0 {
			rest = rest.Where("id NOT IN ?", orderedIDs)
		} else {
			rest = rest.Where("1 = 1")
		}
		return rest.Update("sort_order", nil).Error
	})
	if err != nil {
		return fmt.Errorf("failed to reorder countries: %w", err)
	}
	return nil
}
