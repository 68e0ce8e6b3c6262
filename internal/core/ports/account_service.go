package ports

import (
	"context"

	"github.com/connectpro/marketplace-api/internal/core/domain"
)

// RegisterUserInput carries the fields collected at customer registration.
type RegisterUserInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	City      string
}

// RegisterWorkerInput carries the fields collected at provider registration.
type RegisterWorkerInput struct {
	Email           string
	Password        string
	FirstName       string
	LastName        string
	Phone           string
	City            string
	Designation     string
	ExperienceYears int
}

// UserService manages customer accounts.
type UserService interface {
	Register(ctx context.Context, in RegisterUserInput) (*domain.User, error)
}

// WorkerService manages provider accounts and the admin approval flow.
type WorkerService interface {
	Register(ctx context.Context, in RegisterWorkerInput) (*domain.Worker, error)
	List(ctx context.Context) ([]domain.Worker, error)
	// Browse is the customer-facing listing: approved, available providers,
	// optionally filtered by designation.
	Browse(ctx context.Context, designation string) ([]domain.Worker, error)
	SetApproval(ctx context.Context, id string, approved bool) (*domain.Worker, error)
	SetAvailability(ctx context.Context, id string, available bool) (*domain.Worker, error)
}
