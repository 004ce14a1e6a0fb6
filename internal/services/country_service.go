package services

import (
	"fmt"
	"slices"

	"dashboard/internal/models"
	"dashboard/internal/repositories"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// CountryFilter selects which countries a listing returns.
type CountryFilter string

const (
	CountriesActive   CountryFilter = "active"
	CountriesInactive CountryFilter = "inactive"
	CountriesAll      CountryFilter = "all"
)

// CountryService handles business logic related to countries.
type CountryService struct {
	repo repositories.CountryRepository
}

// NewCountryService creates a new CountryService.
func NewCountryService(repo repositories.CountryRepository) *CountryService {
	return &CountryService{repo: repo}
}

// SortCountries orders countries for display: active before inactive, then
// by sort key with unset keys last, then by name in locale.
func SortCountries(countries []models.Country, locale string) {
	tag := language.Arabic
	if locale == "en" {
		tag = language.English
	}
	collator := collate.New(tag)

	slices.SortStableFunc(countries, func(a, b models.Country) int {
		if a.IsActive != b.IsActive {
			if a.IsActive {
				return -1
			}
			return 1
		}
		switch {
		case a.SortOrder != nil && b.SortOrder == nil:
			return -1
		case a.SortOrder == nil && b.SortOrder != nil:
			return 1
		case a.SortOrder != nil && *a.SortOrder != *b.SortOrder:
			return *a.SortOrder - *b.SortOrder
		}
		return collator.CompareString(a.Name.In(locale), b.Name.In(locale))
	})
}

// ListCountries returns the countries matching filter in display order.
func (s *CountryService) ListCountries(filter CountryFilter, locale string) ([]models.Country, error) {
	var (
		countries []models.Country
		err       error
	)
	if filter == CountriesActive {
		countries, err = s.repo.GetActive()
	} else {
		countries, err = s.repo.GetAll()
	}
	if err != nil {
		return nil, err
	}

	if filter == CountriesInactive {
		countries = slices.DeleteFunc(countries, func(c models.Country) bool { return c.IsActive })
	}
	SortCountries(countries, locale)
	return countries, nil
}

// GetCountry retrieves a single country by its ID.
func (s *CountryService) GetCountry(id string) (*models.Country, error) {
	return s.repo.GetByID(id)
}

// UpdateCountry applies patch. Changing the active flag renormalizes the
// sort keys of all countries so the active ones stay gap-free.
func (s *CountryService) UpdateCountry(id string, patch models.CountryPatch) (*models.Country, error) {
	country, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	toggled := patch.IsActive != nil && *patch.IsActive != country.IsActive
	if patch.Name != nil {
		country.Name = *patch.Name
	}
	if patch.CurrencyCode != nil {
		country.CurrencyCode = *patch.CurrencyCode
	}
	if patch.CurrencySymbol != nil {
		country.CurrencySymbol = *patch.CurrencySymbol
	}
	if patch.FlagEmoji != nil {
		country.FlagEmoji = *patch.FlagEmoji
	}
	if patch.IsActive != nil {
		country.IsActive = *patch.IsActive
	}
	if toggled && !country.IsActive {
		country.SortOrder = nil
	}

	if err := s.repo.Update(country); err != nil {
		return nil, err
	}
	if !toggled {
		return country, nil
	}

	if err := s.Normalize(); err != nil {
		return nil, err
	}
	return s.repo.GetByID(id)
}

// Reorder makes orderedIDs the active display order: they get sort keys
// 0..n-1 and every other country loses its key. It returns all countries
// in display order.
func (s *CountryService) Reorder(orderedIDs []string) ([]models.Country, error) {
	seen := make(map[string]struct{}, len(orderedIDs))
	for _, id := range orderedIDs {
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCountry, id)
		}
		seen[id] = struct{}{}
	}

	found, err := s.repo.GetByIDs(orderedIDs)
	if err != nil {
		return nil, err
	}
	for _, c := range found {
		if !c.IsActive {
			return nil, fmt.Errorf("%w: %s", ErrInactiveCountry, c.Code)
		}
		delete(seen, c.ID)
	}
	for _, id := range orderedIDs {
		if _, missing := seen[id]; missing {
			return nil, fmt.Errorf("country with ID %s: %w", id, repositories.ErrNotFound)
		}
	}

	if err := s.repo.Reorder(orderedIDs); err != nil {
		return nil, err
	}

	countries, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	SortCountries(countries, "ar")
	return countries, nil
}

// Normalize rewrites the sort keys from the current active display order,
// closing gaps and clearing the keys of inactive countries.
func (s *CountryService) Normalize() error {
	active, err := s.repo.GetActive()
	if err != nil {
		return err
	}
	SortCountries(active, "ar")

	ids := make([]string, len(active))
	for i, c := range active {
		ids[i] = c.ID
	}
	return s.repo.Reorder(ids)
}

// activeCurrencies returns the distinct currency codes of the active
// countries in display order.
func activeCurrencies(repo repositories.CountryRepository) ([]string, error) {
	active, err := repo.GetActive()
	if err != nil {
		return nil, err
	}
	SortCountries(active, "ar")

	var codes []string
	for _, c := range active {
		if !slices.Contains(codes, c.CurrencyCode) {
			codes = append(codes, c.CurrencyCode)
		}
	}
	return codes, nil
}
