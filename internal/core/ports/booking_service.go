package ports

import (
	"context"
	"time"

	"github.com/connectpro/marketplace-api/internal/core/domain"
)

// CreateBookingInput carries the fields a user supplies for a new request.
type CreateBookingInput struct {
	UserID       string
	WorkerID     string
	Category     string
	Description  string
	Address      string
	City         string
	ScheduledFor time.Time
}

// BookingService drives the service-request lifecycle.
type BookingService interface {
	Create(ctx context.Context, in CreateBookingInput) (*domain.Booking, error)
	// Transition moves a booking to the next status on behalf of actorEmail.
	// Workers may accept/reject/complete only their own bookings.
	Transition(ctx context.Context, bookingID, workerID, actorEmail string, next domain.BookingStatus, notes string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Booking, error)
	ListByWorker(ctx context.Context, workerID string) ([]domain.Booking, error)
	ListAll(ctx context.Context) ([]domain.Booking, error)
}

// BookingEventInput is the payload handed to the event dispatcher.
type BookingEventInput struct {
	BookingID string
	Status    domain.BookingStatus
	Actor     string
	Timestamp time.Time
	Notes     string
}

// EventRecorder consumes dispatched booking events (audit trail writer).
type EventRecorder interface {
	Record(ctx context.Context, in BookingEventInput) error
}

// EventSink accepts booking events for asynchronous recording.
type EventSink interface {
	Enqueue(event BookingEventInput)
}
