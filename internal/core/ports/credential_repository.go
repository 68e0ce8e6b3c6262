package ports

import (
	"context"

	"github.com/connectpro/marketplace-api/internal/core/domain"
)

// AdminRepository persists the built-in administrative account.
type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Admin, error)
	Upsert(ctx context.Context, admin *domain.Admin) error
}

// UserRepository persists customer accounts.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// WorkerRepository persists service-provider accounts.
type WorkerRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Worker, error)
	FindByID(ctx context.Context, id string) (*domain.Worker, error)
	Create(ctx context.Context, worker *domain.Worker) (*domain.Worker, error)
	List(ctx context.Context) ([]domain.Worker, error)
	// ListApproved returns bookable providers only (approved and available),
	// optionally narrowed to one designation.
	ListApproved(ctx context.Context, designation string) ([]domain.Worker, error)
	SetApproval(ctx context.Context, id string, approved bool) error
	SetAvailability(ctx context.Context, id string, available bool) error
}

// CredentialProvider is one credential namespace in the ordered resolution
// chain. Resolve returns domain.ErrAccountNotFound when the email is absent
// from this namespace and domain.ErrInvalidCredentials when it is present but
// the password does not verify; both cases let resolution continue to the
// next provider.
type CredentialProvider interface {
	Role() string
	Resolve(ctx context.Context, email, password string) (*domain.Principal, error)
}
