package domain

import (
	"errors"
	"time"
)

// BookingStatus represents the lifecycle state of a service request.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusAccepted  BookingStatus = "accepted"
	StatusRejected  BookingStatus = "rejected"
	StatusCompleted BookingStatus = "completed"
)

// validTransitions defines the allowed state machine transitions.
var validTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:  {StatusAccepted, StatusRejected},
	StatusAccepted: {StatusCompleted},
}

var ErrInvalidTransition = errors.New("invalid status transition")
var ErrBookingNotFound = errors.New("booking not found")
var ErrWorkerUnavailable = errors.New("worker not available for bookings")

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// StatusHistoryEntry records a single status transition on a booking.
type StatusHistoryEntry struct {
	Status    BookingStatus `json:"status" bson:"status"`
	Timestamp time.Time     `json:"timestamp" bson:"timestamp"`
	Notes     string        `json:"notes,omitempty" bson:"notes,omitempty"`
}

// Booking is a user's service request directed at a worker.
type Booking struct {
	ID            string               `json:"id" bson:"_id,omitempty"`
	UserID        string               `json:"user_id" bson:"user_id"`
	WorkerID      string               `json:"worker_id" bson:"worker_id"`
	Category      string               `json:"category" bson:"category"` // worker designation requested
	Description   string               `json:"description" bson:"description"`
	Address       string               `json:"address" bson:"address"`
	City          string               `json:"city" bson:"city"`
	ScheduledFor  time.Time            `json:"scheduled_for" bson:"scheduled_for"`
	Status        BookingStatus        `json:"status" bson:"status"`
	StatusHistory []StatusHistoryEntry `json:"status_history" bson:"status_history"`
	CreatedAt     time.Time            `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at" bson:"updated_at"`
}
