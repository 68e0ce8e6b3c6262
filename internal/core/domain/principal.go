package domain

import (
	"errors"
	"time"
)

// Roles a principal can resolve to. Resolution order is admin, then user,
// then worker: an address present in more than one credential store always
// authenticates against the earliest store that matches.
const (
	RoleAdmin  = "admin"
	RoleUser   = "user"
	RoleWorker = "worker"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// that callers cannot enumerate which store was checked.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccountPendingApproval means the worker's password matched but an
	// administrator has not approved the account yet.
	ErrAccountPendingApproval = errors.New("account pending approval")
	ErrTooManyAttempts        = errors.New("too many login attempts")
	ErrStoreUnavailable       = errors.New("credential store unavailable")
	ErrCorruptedSession       = errors.New("corrupted session record")
	ErrAccountExists          = errors.New("account already exists")
	ErrAccountNotFound        = errors.New("account not found")
	ErrForbidden              = errors.New("access forbidden")
)

// Admin is the single built-in administrative account. It is seeded at
// startup and verified with the same bcrypt path as every other principal.
type Admin struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// User is a customer account.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Phone        string    `json:"phone,omitempty"`
	City         string    `json:"city,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DisplayName returns the name shown in session records and dashboards.
func (u *User) DisplayName() string {
	return joinName(u.FirstName, u.LastName)
}

// Worker is a service-provider account. Authentication is refused until an
// administrator flips Approved, even when the password matches.
type Worker struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	PasswordHash    string    `json:"-"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Phone           string    `json:"phone,omitempty"`
	City            string    `json:"city,omitempty"`
	Designation     string    `json:"designation"`
	ExperienceYears int       `json:"experience_years"`
	Approved        bool      `json:"approved"`
	Available       bool      `json:"available"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// DisplayName returns the name shown in session records and dashboards.
func (w *Worker) DisplayName() string {
	return joinName(w.FirstName, w.LastName)
}

// Principal is a resolved identity: the output of a credential provider
// before a session is minted for it.
type Principal struct {
	ID          string
	Email       string
	Role        string
	DisplayName string
	Designation string // workers only
}

func joinName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}
