package events

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeDepartmentCreated = "department.created"
	EventTypeDepartmentUpdated = "department.updated"
	EventTypeDepartmentDeleted = "department.deleted"
	EventTypeRoleCreated       = "role.created"
	EventTypeRoleUpdated       = "role.updated"
	EventTypeRoleDeleted       = "role.deleted"
	EventTypeEmployeeCreated   = "employee.created"
	EventTypeEmployeeUpdated   = "employee.updated"
	EventTypeEmployeeDeleted   = "employee.deleted"
)

// DirectoryEventTypes lists every event the directory services emit.
var DirectoryEventTypes = []string{
	EventTypeDepartmentCreated,
	EventTypeDepartmentUpdated,
	EventTypeDepartmentDeleted,
	EventTypeRoleCreated,
	EventTypeRoleUpdated,
	EventTypeRoleDeleted,
	EventTypeEmployeeCreated,
	EventTypeEmployeeUpdated,
	EventTypeEmployeeDeleted,
}

type RecordChangedEvent struct {
	BaseEvent
	Entity   string `json:"entity"`
	RecordID int64  `json:"record_id"`
}

func NewRecordChangedEvent(eventType, entity string, recordID int64) *RecordChangedEvent {
	return &RecordChangedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      eventType,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"entity":    entity,
				"record_id": recordID,
			},
		},
		Entity:   entity,
		RecordID: recordID,
	}
}

// AuditLogHandler writes one structured line per directory change.
func AuditLogHandler(logger *slog.Logger) Handler {
	return func(ctx context.Context, event Event) error {
		logger.InfoContext(ctx, "directory change",
			"event_type", event.EventType(),
			"event_id", event.EventID(),
			"occurred_at", event.OccurredAt(),
			"payload", event.Payload())
		return nil
	}
}
