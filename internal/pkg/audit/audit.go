// Package audit emits structured business events for the surrounding audit
// trail. Delivery and storage are the outer layer's concern; the shipped
// recorder writes the events as structured logs.
package audit

import (
	"context"
	"log/slog"
	"time"
)

type EventType string

const (
	EventPeriodCreated          EventType = "ATTENDANCE_PERIOD_CREATED"
	EventAttendanceSubmitted    EventType = "ATTENDANCE_SUBMITTED"
	EventOvertimeSubmitted      EventType = "OVERTIME_SUBMITTED"
	EventReimbursementSubmitted EventType = "REIMBURSEMENT_SUBMITTED"
	EventReimbursementDecided   EventType = "REIMBURSEMENT_STATUS_UPDATED"
	EventPayrollStarted         EventType = "PAYROLL_PROCESSING_STARTED"
	EventPayrollCompleted       EventType = "PAYROLL_PROCESSING_COMPLETED"
)

type Event struct {
	Type       EventType
	ActorID    string
	EntityID   string
	OccurredAt time.Time
	Details    map[string]interface{}
}

type Recorder interface {
	Record(ctx context.Context, event Event)
}

type slogRecorder struct {
	logger *slog.Logger
}

func NewSlogRecorder(logger *slog.Logger) Recorder {
	return &slogRecorder{logger: logger}
}

func (r *slogRecorder) Record(ctx context.Context, event Event) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	attrs := []any{
		slog.String("event_type", string(event.Type)),
		slog.String("actor_id", event.ActorID),
		slog.String("entity_id", event.EntityID),
		slog.Time("occurred_at", event.OccurredAt),
	}
	for k, v := range event.Details {
		attrs = append(attrs, slog.Any(k, v))
	}

	r.logger.InfoContext(ctx, "audit event", attrs...)
}

// NopRecorder discards every event. Used in tests.
type NopRecorder struct{}

func (NopRecorder) Record(ctx context.Context, event Event) {}
