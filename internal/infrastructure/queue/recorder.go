package queue

import (
	"context"

	"github.com/connectpro/marketplace-api/internal/core/domain"
	"github.com/connectpro/marketplace-api/internal/core/ports"
)

// AuditRecorder writes dispatched booking events to the audit repository.
type AuditRecorder struct {
	events ports.EventRepository
}

func NewAuditRecorder(events ports.EventRepository) *AuditRecorder {
	return &AuditRecorder{events: events}
}

func (r *AuditRecorder) Record(ctx context.Context, in ports.BookingEventInput) error {
	return r.events.InsertEvent(ctx, &domain.BookingEvent{
		BookingID: in.BookingID,
		Status:    in.Status,
		Actor:     in.Actor,
		Timestamp: in.Timestamp,
		Notes:     in.Notes,
	})
}
