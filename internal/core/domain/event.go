package domain

import "time"

// BookingEvent records one status change on a booking for the audit trail.
type BookingEvent struct {
	BookingID string        `json:"booking_id"`
	Status    BookingStatus `json:"status"`
	Actor     string        `json:"actor"` // email of the principal that triggered the change
	Timestamp time.Time     `json:"timestamp"`
	Notes     string        `json:"notes,omitempty"`
}
