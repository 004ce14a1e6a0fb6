package models

import "time"

// CurrencyPrice is the price of a size in one currency. Manual prices are
// kept by auto-pricing unless an override is requested.
type CurrencyPrice struct {
	CurrencyCode string  `json:"currencyCode" validate:"required,len=3"`
	Amount       float64 `json:"amount" validate:"gte=0"`
	IsManual     bool    `json:"isManual"`
}

// ProductSize is one purchasable variant of a product.
type ProductSize struct {
	Name   LocalizedText   `json:"name"`
	Price  float64         `json:"price" validate:"gte=0"`
	Prices []CurrencyPrice `json:"prices" validate:"dive"`
}

// Product represents a product sold on the storefronts.
type Product struct {
	ID              string        `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name            LocalizedText `json:"name" gorm:"embedded;embeddedPrefix:name_"`
	Description     LocalizedText `json:"description" gorm:"embedded;embeddedPrefix:description_" validate:"-"`
	Images          []string      `json:"images" gorm:"type:text;serializer:json"`
	BaseCurrency    string        `json:"baseCurrency" gorm:"type:varchar(3)" validate:"required,len=3"`
	Sizes           []ProductSize `json:"sizes" gorm:"type:text;serializer:json" validate:"required,min=1,dive"`
	InStock         bool          `json:"inStock" gorm:"index"`
	WorkAsSacrifice bool          `json:"workAsSacrifice"`
	DisplayOrder    int           `json:"displayOrder"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}
