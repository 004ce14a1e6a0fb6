package models

import "time"

// Country is a shipping/billing country with its currency. SortOrder is set
// only for active countries and is contiguous from zero among them.
type Country struct {
	ID             string        `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Code           string        `json:"code" gorm:"uniqueIndex;type:varchar(2)" validate:"required,len=2"`
	Name           LocalizedText `json:"name" gorm:"embedded;embeddedPrefix:name_"`
	CurrencyCode   string        `json:"currencyCode" gorm:"type:varchar(3)" validate:"required,len=3"`
	CurrencySymbol string        `json:"currencySymbol" gorm:"type:varchar(16)"`
	FlagEmoji      string        `json:"flagEmoji" gorm:"type:varchar(16)"`
	IsActive       bool          `json:"isActive"`
	SortOrder      *int          `json:"sortOrder"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// CountryPatch carries the fields an admin may change on a country.
// Nil fields are left as they are.
type CountryPatch struct {
	Name           *LocalizedText `json:"name"`
	CurrencyCode   *string        `json:"currencyCode" validate:"omitempty,len=3"`
	CurrencySymbol *string        `json:"currencySymbol" validate:"omitempty,max=16"`
	FlagEmoji      *string        `json:"flagEmoji" validate:"omitempty,max=16"`
	IsActive       *bool          `json:"isActive"`
}
