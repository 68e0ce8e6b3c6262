package ports

import (
	"context"
	"time"

	"github.com/connectpro/marketplace-api/internal/core/domain"
)

// BookingRepository persists service requests.
type BookingRepository interface {
	Insert(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Booking, error)
	ListByWorker(ctx context.Context, workerID string) ([]domain.Booking, error)
	ListAll(ctx context.Context) ([]domain.Booking, error)
	// UpdateStatus atomically sets the new status and appends a history entry.
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus, ts time.Time, notes string) error
}

// EventRepository persists the booking audit trail.
type EventRepository interface {
	InsertEvent(ctx context.Context, event *domain.BookingEvent) error
	ListByBooking(ctx context.Context, bookingID string) ([]domain.BookingEvent, error)
}
