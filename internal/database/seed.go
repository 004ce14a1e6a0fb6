package database

import (
	"fmt"

	"dashboard/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func intPtr(i int) *int { return &i }

// defaultCountries are inserted by Seed when missing. The first entries are
// active and already carry contiguous sort keys.
var defaultCountries = []models.Country{
	{Code: "SA", Name: models.LocalizedText{Ar: "السعودية", En: "Saudi Arabia"}, CurrencyCode: "SAR", CurrencySymbol: "ر.س", FlagEmoji: "🇸🇦", IsActive: true, SortOrder: intPtr(0)},
	{Code: "AE", Name: models.LocalizedText{Ar: "الإمارات", En: "United Arab Emirates"}, CurrencyCode: "AED", CurrencySymbol: "د.إ", FlagEmoji: "🇦🇪", IsActive: true, SortOrder: intPtr(1)},
	{Code: "KW", Name: models.LocalizedText{Ar: "الكويت", En: "Kuwait"}, CurrencyCode: "KWD", CurrencySymbol: "د.ك", FlagEmoji: "🇰🇼", IsActive: true, SortOrder: intPtr(2)},
	{Code: "EG", Name: models.LocalizedText{Ar: "مصر", En: "Egypt"}, CurrencyCode: "EGP", CurrencySymbol: "ج.م", FlagEmoji: "🇪🇬", IsActive: true, SortOrder: intPtr(3)},
	{Code: "QA", Name: models.LocalizedText{Ar: "قطر", En: "Qatar"}, CurrencyCode: "QAR", CurrencySymbol: "ر.ق", FlagEmoji: "🇶🇦"},
	{Code: "BH", Name: models.LocalizedText{Ar: "البحرين", En: "Bahrain"}, CurrencyCode: "BHD", CurrencySymbol: "د.ب", FlagEmoji: "🇧🇭"},
	{Code: "OM", Name: models.LocalizedText{Ar: "عمان", En: "Oman"}, CurrencyCode: "OMR", CurrencySymbol: "ر.ع", FlagEmoji: "🇴🇲"},
	{Code: "JO", Name: models.LocalizedText{Ar: "الأردن", En: "Jordan"}, CurrencyCode: "JOD", CurrencySymbol: "د.أ", FlagEmoji: "🇯🇴"},
	{Code: "US", Name: models.LocalizedText{Ar: "الولايات المتحدة", En: "United States"}, CurrencyCode: "USD", CurrencySymbol: "$", FlagEmoji: "🇺🇸"},
	{Code: "GB", Name: models.LocalizedText{Ar: "المملكة المتحدة", En: "United Kingdom"}, CurrencyCode: "GBP", CurrencySymbol: "£", FlagEmoji: "🇬🇧"},
}

// Seed inserts the default countries and per-project payment settings that
// do not exist yet. Existing rows are never modified.
func Seed(db *gorm.DB, logger *zap.Logger) error {
	for _, c := range defaultCountries {
		attrs := c
		attrs.ID = uuid.New().String()
		var country models.Country
		res := db.Where("code = ?", c.Code).Attrs(attrs).FirstOrCreate(&country)
		if res.Error != nil {
			return fmt.Errorf("failed to seed country %s: %w", c.Code, res.Error)
		}
		if country.ID == attrs.ID {
			logger.Info("Seeded country", zap.String("code", country.Code), zap.String("id", country.ID))
		}
	}

	for _, project := range models.Projects {
		attrs := models.PaymentSettings{
			ID:            uuid.New().String(),
			Project:       project,
			PaymentMethod: models.DefaultPaymentMethod,
		}
		var settings models.PaymentSettings
		if err := db.Where("project = ?", project).Attrs(attrs).FirstOrCreate(&settings).Error; err != nil {
			return fmt.Errorf("failed to seed payment settings for %s: %w", project, err)
		}
	}
	return nil
}
