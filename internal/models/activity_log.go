package models

import "time"

// Activity actions.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionLogin  = "login"
)

// ActivityLog records who changed what through the dashboard.
type ActivityLog struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID     string    `json:"userId" gorm:"index;type:varchar(36)"`
	UserName   string    `json:"userName" gorm:"type:varchar(100)"`
	UserEmail  string    `json:"userEmail" gorm:"type:varchar(255)"`
	Action     string    `json:"action" gorm:"type:varchar(16)"`
	Resource   string    `json:"resource" gorm:"index;type:varchar(64)"`
	ResourceID string    `json:"resourceId" gorm:"type:varchar(64)"`
	Details    string    `json:"details" gorm:"type:text"`
	CreatedAt  time.Time `json:"createdAt" gorm:"index"`
}
