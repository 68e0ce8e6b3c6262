package service

import (
	"context"
	"fmt"
	"time"

	"github.com/connectpro/marketplace-api/internal/core/domain"
	"github.com/connectpro/marketplace-api/internal/core/ports"
)

type reviewService struct {
	reviews  ports.ReviewRepository
	bookings ports.BookingRepository
}

// NewReviewService returns a ReviewService implementation.
func NewReviewService(reviews ports.ReviewRepository, bookings ports.BookingRepository) ports.ReviewService {
	return &reviewService{reviews: reviews, bookings: bookings}
}

// Submit records a rating for a completed booking. One review per booking,
// and only by the user who opened it.
func (s *reviewService) Submit(ctx context.Context, userID, bookingID string, rating int, comment string) (*domain.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, domain.ErrInvalidRating
	}

	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("submit review: %w", err)
	}
	if booking.UserID != userID {
		return nil, domain.ErrForbidden
	}
	if booking.Status != domain.StatusCompleted {
		return nil, domain.ErrBookingNotCompleted
	}

	existing, err := s.reviews.FindByBooking(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("submit review: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrReviewExists
	}

	review := &domain.Review{
		BookingID: bookingID,
		UserID:    userID,
		WorkerID:  booking.WorkerID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.reviews.Insert(ctx, review)
	if err != nil {
		return nil, fmt.Errorf("submit review: %w", err)
	}
	return created, nil
}

func (s *reviewService) ListByWorker(ctx context.Context, workerID string) ([]domain.Review, error) {
	return s.reviews.ListByWorker(ctx, workerID)
}
