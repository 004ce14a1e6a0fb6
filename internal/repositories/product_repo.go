package repositories

import (
	"dashboard/internal/models"
)

// ProductFilter narrows a product listing. Nil fields do not filter.
type ProductFilter struct {
	InStock         *bool
	WorkAsSacrifice *bool
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	List(filter ProductFilter, offset, limit int) ([]models.Product, int64, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}
