package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/pintabarberia/pinta-booking/internal/models"
	"github.com/pintabarberia/pinta-booking/internal/store"
	"github.com/pintabarberia/pinta-booking/internal/timezone"
)

type Logger struct {
	events store.AuditStore
	now    func() time.Time
}

func New(events store.AuditStore) *Logger {
	return &Logger{
		events: events,
		now:    timezone.Now,
	}
}

func (l *Logger) Log(
	action string,
	entity string,
	entityID string,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	ctx := context.Background()

	events, err := l.events.Load(ctx)
	if err != nil {
		return err
	}

	events = append(events, models.AuditEvent{
		ID:       uuid.NewString(),
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: metaJSON,
		At:       l.now().Format("2006-01-02 15:04:05"),
	})

	return l.events.Save(ctx, events)
}
