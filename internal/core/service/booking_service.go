package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/connectpro/marketplace-api/internal/core/domain"
	"github.com/connectpro/marketplace-api/internal/core/ports"
)

type bookingService struct {
	bookings ports.BookingRepository
	workers  ports.WorkerRepository
	events   ports.EventSink
	log      zerolog.Logger
}

// NewBookingService returns a BookingService implementation.
func NewBookingService(
	bookings ports.BookingRepository,
	workers ports.WorkerRepository,
	events ports.EventSink,
	log zerolog.Logger,
) ports.BookingService {
	return &bookingService{bookings: bookings, workers: workers, events: events, log: log}
}

// Create opens a new service request in pending state, directed at an
// approved, available worker.
func (s *bookingService) Create(ctx context.Context, in ports.CreateBookingInput) (*domain.Booking, error) {
	worker, err := s.workers.FindByID(ctx, in.WorkerID)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	if !worker.Approved || !worker.Available {
		return nil, domain.ErrWorkerUnavailable
	}

	category := in.Category
	if category == "" {
		category = worker.Designation
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		UserID:       in.UserID,
		WorkerID:     in.WorkerID,
		Category:     category,
		Description:  in.Description,
		Address:      in.Address,
		City:         in.City,
		ScheduledFor: in.ScheduledFor,
		Status:       domain.StatusPending,
		StatusHistory: []domain.StatusHistoryEntry{
			{Status: domain.StatusPending, Timestamp: now},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.bookings.Insert(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.events.Enqueue(ports.BookingEventInput{
		BookingID: created.ID,
		Status:    domain.StatusPending,
		Actor:     in.UserID,
		Timestamp: now,
	})

	s.log.Info().
		Str("booking_id", created.ID).
		Str("worker_id", created.WorkerID).
		Str("category", created.Category).
		Msg("booking created")

	return created, nil
}

// Transition applies one status change. When workerID is non-empty the
// booking must belong to that worker; admins pass an empty workerID.
func (s *bookingService) Transition(ctx context.Context, bookingID, workerID, actorEmail string, next domain.BookingStatus, notes string) (*domain.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("transition booking: %w", err)
	}

	if workerID != "" && booking.WorkerID != workerID {
		return nil, domain.ErrForbidden
	}

	if !booking.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, booking.Status, next)
	}

	now := time.Now().UTC()
	if err := s.bookings.UpdateStatus(ctx, bookingID, next, now, notes); err != nil {
		return nil, fmt.Errorf("transition booking: %w", err)
	}

	s.events.Enqueue(ports.BookingEventInput{
		BookingID: bookingID,
		Status:    next,
		Actor:     actorEmail,
		Timestamp: now,
		Notes:     notes,
	})

	booking.Status = next
	booking.UpdatedAt = now
	booking.StatusHistory = append(booking.StatusHistory, domain.StatusHistoryEntry{
		Status:    next,
		Timestamp: now,
		Notes:     notes,
	})

	s.log.Info().
		Str("booking_id", bookingID).
		Str("status", string(next)).
		Msg("booking status updated")

	return booking, nil
}

func (s *bookingService) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

func (s *bookingService) ListByWorker(ctx context.Context, workerID string) ([]domain.Booking, error) {
	return s.bookings.ListByWorker(ctx, workerID)
}

func (s *bookingService) ListAll(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.ListAll(ctx)
}
