package models

import "time"

// PaymentMethod is the payment provider a storefront checks out with.
type PaymentMethod string

const (
	PaymentMethodPaymob   PaymentMethod = "paymob"
	PaymentMethodEasykash PaymentMethod = "easykash"
)

// DefaultPaymentMethod is used for projects that were never configured.
const DefaultPaymentMethod = PaymentMethodPaymob

// Valid reports whether m is a supported provider.
func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodPaymob || m == PaymentMethodEasykash
}

// PaymentSettings holds the payment provider selection for a project.
type PaymentSettings struct {
	ID            string        `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Project       Project       `json:"project" gorm:"uniqueIndex;type:varchar(32)"`
	PaymentMethod PaymentMethod `json:"paymentMethod" gorm:"type:varchar(32)"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}
