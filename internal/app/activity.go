package app

import (
	"time"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/semla/internal/models"
	"github.com/shrimpsizemoose/semla/internal/store"
)

// ActivitySink receives audit records. Record is fire-and-forget: a sink
// failure is logged and swallowed, it never reaches the primary operation.
type ActivitySink interface {
	Record(action, entityType string, entityID int64, entityName, details string)
}

type storeSink struct {
	store store.InterviewStore
}

func NewStoreSink(st store.InterviewStore) ActivitySink {
	return &storeSink{store: st}
}

func (s *storeSink) Record(action, entityType string, entityID int64, entityName, details string) {
	entry := &models.ActivityEntry{
		Timestamp:  time.Now().Unix(),
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		EntityName: entityName,
		Details:    details,
	}

	if err := s.store.RecordActivity(entry); err != nil {
		logger.Error.Printf("Failed to record activity %s/%s/%d: %v", action, entityType, entityID, err)
	}
}
