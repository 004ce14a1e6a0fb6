package models

import "time"

// Admin roles.
const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
)

// Dashboard pages an admin can be granted.
const (
	PageProducts        = "products"
	PageCountries       = "countries"
	PageAppearance      = "appearance"
	PagePaymentSettings = "paymentSettings"
	PageActivityLogs    = "activityLogs"
)

// Admin is a dashboard operator.
type Admin struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name         string    `json:"name" gorm:"type:varchar(100)" validate:"required,min=2,max=100"`
	Email        string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password     string    `json:"-" gorm:"type:varchar(255)" validate:"required,min=8"`
	Role         string    `json:"role" gorm:"type:varchar(32)" validate:"required,oneof=super_admin admin"`
	AllowedPages []string  `json:"allowedPages" gorm:"type:text;serializer:json"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TokenPayload is the identity carried in an access token.
type TokenPayload struct {
	UserID       string   `json:"userId"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Role         string   `json:"role"`
	AllowedPages []string `json:"allowedPages"`
}

// CanAccess reports whether the holder may use page.
func (p TokenPayload) CanAccess(page string) bool {
	if p.Role == RoleSuperAdmin {
		return true
	}
	for _, allowed := range p.AllowedPages {
		if allowed == page {
			return true
		}
	}
	return false
}
