package services

import (
	"strings"

	"dashboard/internal/models"
	"dashboard/internal/repositories"
)

// ProductPagination describes one page of products. The storefronts read
// the total as totalProducts.
type ProductPagination struct {
	CurrentPage   int   `json:"currentPage"`
	TotalPages    int   `json:"totalPages"`
	TotalProducts int64 `json:"totalProducts"`
	HasNextPage   bool  `json:"hasNextPage"`
	HasPrevPage   bool  `json:"hasPrevPage"`
}

// ProductPage is one page of a product listing.
type ProductPage struct {
	Products   []models.Product  `json:"products"`
	Pagination ProductPagination `json:"pagination"`
}

// AutoPriceResult is the outcome of auto-pricing a product.
type AutoPriceResult struct {
	BaseCurrency string               `json:"baseCurrency"`
	Sizes        []models.ProductSize `json:"sizes"`
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo         repositories.ProductRepository
	countryRepo  repositories.CountryRepository
	rates        RateProvider
	baseCurrency string
}

// NewProductService creates a new ProductService. baseCurrency is used for
// products that do not name their own.
func NewProductService(repo repositories.ProductRepository, countryRepo repositories.CountryRepository, rates RateProvider, baseCurrency string) *ProductService {
	return &ProductService{
		repo:         repo,
		countryRepo:  countryRepo,
		rates:        rates,
		baseCurrency: baseCurrency,
	}
}

// ListProducts retrieves one page of products.
func (s *ProductService) ListProducts(filter repositories.ProductFilter, page, limit int) (*ProductPage, error) {
	page, limit, offset := PageRequest(page, limit)
	products, total, err := s.repo.List(filter, offset, limit)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	p := newPagination(page, limit, total)
	return &ProductPage{
		Products: products,
		Pagination: ProductPagination{
			CurrentPage:   p.CurrentPage,
			TotalPages:    p.TotalPages,
			TotalProducts: p.TotalItems,
			HasNextPage:   p.HasNextPage,
			HasPrevPage:   p.HasPrevPage,
		},
	}, nil
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct creates a new product.
func (s *ProductService) CreateProduct(product *models.Product) error {
	product.ID = ""
	normalizeProduct(product)
	return s.repo.Create(product)
}

// UpdateProduct replaces the stored product with the same ID.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	existing, err := s.repo.GetByID(product.ID)
	if err != nil {
		return err
	}
	product.CreatedAt = existing.CreatedAt
	normalizeProduct(product)
	return s.repo.Update(product)
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	return s.repo.Delete(id)
}

// AutoPrice derives the per-currency prices of every size of a product
// from its base price, for the currencies of the active countries.
func (s *ProductService) AutoPrice(id string, overrideManual bool) (*AutoPriceResult, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	targets, err := activeCurrencies(s.countryRepo)
	if err != nil {
		return nil, err
	}

	base := product.BaseCurrency
	if base == "" {
		base = s.baseCurrency
	}
	if err := ApplyAutoPricing(product.Sizes, base, targets, s.rates, overrideManual); err != nil {
		return nil, err
	}
	if err := s.repo.Update(product); err != nil {
		return nil, err
	}

	return &AutoPriceResult{BaseCurrency: base, Sizes: product.Sizes}, nil
}

// ApplyAutoPricing rewrites the price list of each size with a positive
// base price so it holds exactly the target currencies. Existing manual
// prices are kept unless overrideManual is set.
func ApplyAutoPricing(sizes []models.ProductSize, base string, targets []string, rates RateProvider, overrideManual bool) error {
	for i := range sizes {
		size := &sizes[i]
		if size.Price <= 0 {
			continue
		}

		converted, err := ConvertMany(rates, size.Price, base, targets)
		if err != nil {
			return err
		}

		existing := make(map[string]models.CurrencyPrice, len(size.Prices))
		for _, p := range size.Prices {
			existing[p.CurrencyCode] = p
		}

		prices := make([]models.CurrencyPrice, 0, len(targets))
		for _, code := range targets {
			if p, ok := existing[code]; ok && p.IsManual && !overrideManual {
				prices = append(prices, p)
				continue
			}
			prices = append(prices, models.CurrencyPrice{
				CurrencyCode: code,
				Amount:       converted[code],
			})
		}
		size.Prices = prices
	}
	return nil
}

func normalizeProduct(product *models.Product) {
	product.BaseCurrency = strings.ToUpper(product.BaseCurrency)
	if product.Images == nil {
		product.Images = []string{}
	}
	for i := range product.Sizes {
		if product.Sizes[i].Prices == nil {
			product.Sizes[i].Prices = []models.CurrencyPrice{}
		}
		for j := range product.Sizes[i].Prices {
			p := &product.Sizes[i].Prices[j]
			p.CurrencyCode = strings.ToUpper(p.CurrencyCode)
		}
	}
}
