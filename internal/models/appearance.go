package models

import "time"

// WorksImages is the two-row gallery shown on a storefront's landing page.
type WorksImages struct {
	Row1 []string `json:"row1"`
	Row2 []string `json:"row2"`
}

// Appearance stores the curated images for one project.
type Appearance struct {
	ID          string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Project     Project     `json:"project" gorm:"uniqueIndex;type:varchar(32)"`
	WorksImages WorksImages `json:"worksImages" gorm:"type:text;serializer:json"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}
