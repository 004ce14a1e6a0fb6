package services

import (
	"encoding/json"
	"fmt"
	"time"

	"dashboard/internal/models"
	"dashboard/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EventPublisher delivers a serialized event to a message broker.
type EventPublisher interface {
	Publish(body []byte) error
}

// ActivityPage is one page of the activity log.
type ActivityPage struct {
	Logs       []models.ActivityLog `json:"logs"`
	Pagination Pagination           `json:"pagination"`
}

// ActivityService records and lists dashboard activity. With a publisher,
// entries go through the broker and are stored by Persist on the consumer
// side; without one they are stored directly.
type ActivityService struct {
	repo      repositories.ActivityLogRepository
	publisher EventPublisher
	logger    *zap.Logger
}

// NewActivityService creates a new ActivityService. publisher may be nil.
func NewActivityService(repo repositories.ActivityLogRepository, publisher EventPublisher, logger *zap.Logger) *ActivityService {
	return &ActivityService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// Record logs an action by actor. Failures are logged, never returned, so
// a completed mutation is not reported as failed.
func (s *ActivityService) Record(actor models.TokenPayload, action, resource, resourceID, details string) {
	entry := models.ActivityLog{
		ID:         uuid.New().String(),
		UserID:     actor.UserID,
		UserName:   actor.Name,
		UserEmail:  actor.Email,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		Details:    details,
		CreatedAt:  time.Now().UTC(),
	}

	if s.publisher != nil {
		body, err := json.Marshal(entry)
		if err == nil {
			err = s.publisher.Publish(body)
		}
		if err == nil {
			return
		}
		s.logger.Warn("Failed to publish activity, storing directly",
			zap.String("resource", resource), zap.Error(err))
	}

	if err := s.repo.Create(&entry); err != nil {
		s.logger.Error("Failed to record activity",
			zap.String("action", action),
			zap.String("resource", resource),
			zap.String("resourceId", resourceID),
			zap.Error(err))
	}
}

// Persist stores an activity entry received from the broker.
func (s *ActivityService) Persist(body []byte) error {
	var entry models.ActivityLog
	if err := json.Unmarshal(body, &entry); err != nil {
		return fmt.Errorf("failed to decode activity: %w", err)
	}
	if entry.Action == "" || entry.Resource == "" {
		return fmt.Errorf("activity without action or resource")
	}
	return s.repo.Create(&entry)
}

// ListActivityLogs returns one page of entries, newest first.
func (s *ActivityService) ListActivityLogs(resource string, page, limit int) (*ActivityPage, error) {
	page, limit, offset := PageRequest(page, limit)
	logs, total, err := s.repo.List(resource, offset, limit)
	if err != nil {
		return nil, err
	}
	if logs == nil {
		logs = []models.ActivityLog{}
	}
	return &ActivityPage{Logs: logs, Pagination: newPagination(page, limit, total)}, nil
}
