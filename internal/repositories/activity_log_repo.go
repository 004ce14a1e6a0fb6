package repositories

import (
	"fmt"

	"dashboard/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ActivityLogRepository defines the interface for activity log data access.
type ActivityLogRepository interface {
	Create(entry *models.ActivityLog) error
	List(resource string, offset, limit int) ([]models.ActivityLog, int64, error)
}

// GORMActivityLogRepository is a GORM implementation of ActivityLogRepository.
type GORMActivityLogRepository struct {
	db *gorm.DB
}

// NewGORMActivityLogRepository creates a new instance of GORMActivityLogRepository.
func NewGORMActivityLogRepository(db *gorm.DB) *GORMActivityLogRepository {
	return &GORMActivityLogRepository{db: db}
}

// Create stores entry. An entry whose ID already exists is ignored, so a
// redelivered broker message is stored once.
func (r *GORMActivityLogRepository) Create(entry *models.ActivityLog) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create activity log: %w", err)
	}
	return nil
}

// List returns the newest entries first. An empty resource matches all.
func (r *GORMActivityLogRepository) List(resource string, offset, limit int) ([]models.ActivityLog, int64, error) {
	query := r.db.Model(&models.ActivityLog{})
	if resource != "" {
		query = query.Where("resource = ?", resource)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count activity logs: %w", err)
	}

	var entries []models.ActivityLog
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&entries).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list activity logs: %w", err)
	}
	return entries, total, nil
}
