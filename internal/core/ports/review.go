package ports

import (
	"context"

	"github.com/connectpro/marketplace-api/internal/core/domain"
)

// ReviewRepository persists booking reviews.
type ReviewRepository interface {
	Insert(ctx context.Context, review *domain.Review) (*domain.Review, error)
	FindByBooking(ctx context.Context, bookingID string) (*domain.Review, error)
	ListByWorker(ctx context.Context, workerID string) ([]domain.Review, error)
}

// ReviewService lets users rate completed bookings.
type ReviewService interface {
	Submit(ctx context.Context, userID, bookingID string, rating int, comment string) (*domain.Review, error)
	ListByWorker(ctx context.Context, workerID string) ([]domain.Review, error)
}
