package domain

import (
	"errors"
	"time"
)

var ErrReviewExists = errors.New("booking already reviewed")
var ErrBookingNotCompleted = errors.New("booking not completed")
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// Review is a user's rating of a completed booking.
type Review struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	BookingID string    `json:"booking_id" bson:"booking_id"`
	UserID    string    `json:"user_id" bson:"user_id"`
	WorkerID  string    `json:"worker_id" bson:"worker_id"`
	Rating    int       `json:"rating" bson:"rating"` // 1..5
	Comment   string    `json:"comment,omitempty" bson:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
