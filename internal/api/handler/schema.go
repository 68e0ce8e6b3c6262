package handler

import (
	"time"

	"github.com/connectpro/marketplace-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type loginRequest struct {
	Email    string `json:"email"      validate:"required,email"`
	Password string `json:"password"   validate:"required"`
	// ContextID identifies the client context (browser/device). Optional: a
	// fresh one is generated when absent and returned in the response.
	ContextID string `json:"context_id"`
}

type sessionResponse struct {
	Session *domain.Session `json:"session"`
	Token   string          `json:"token,omitempty"`
}

// --- Registration ---

type registerUserRequest struct {
	Email     string `json:"email"      validate:"required,email"`
	Password  string `json:"password"   validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	City      string `json:"city"`
}

type registerWorkerRequest struct {
	Email           string `json:"email"            validate:"required,email"`
	Password        string `json:"password"         validate:"required,min=8"`
	FirstName       string `json:"first_name"       validate:"required"`
	LastName        string `json:"last_name"`
	Phone           string `json:"phone"`
	City            string `json:"city"`
	Designation     string `json:"designation"      validate:"required"`
	ExperienceYears int    `json:"experience_years" validate:"min=0"`
}

// --- Bookings ---

type createBookingRequest struct {
	WorkerID     string    `json:"worker_id"     validate:"required"`
	Category     string    `json:"category"`
	Description  string    `json:"description"   validate:"required"`
	Address      string    `json:"address"       validate:"required"`
	City         string    `json:"city"          validate:"required"`
	ScheduledFor time.Time `json:"scheduled_for" validate:"required"`
}

type updateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected completed"`
	Notes  string `json:"notes"`
}

// --- Worker approval ---

type approvalRequest struct {
	Approved *bool `json:"approved" validate:"required"`
}

type availabilityRequest struct {
	Available *bool `json:"available" validate:"required"`
}

// --- Contact form ---

type contactRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

// --- Reviews ---

type submitReviewRequest struct {
	BookingID string `json:"booking_id" validate:"required"`
	Rating    int    `json:"rating"     validate:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}
