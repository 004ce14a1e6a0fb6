package models

// LocalizedText holds the Arabic and English variants of a display string.
type LocalizedText struct {
	Ar string `json:"ar" gorm:"type:varchar(255)" validate:"required"`
	En string `json:"en" gorm:"type:varchar(255)" validate:"required"`
}

// In returns the variant for locale, falling back to Arabic.
func (t LocalizedText) In(locale string) string {
	if locale == "en" {
		return t.En
	}
	return t.Ar
}
