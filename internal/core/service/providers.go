package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/connectpro/marketplace-api/internal/core/domain"
	"github.com/connectpro/marketplace-api/internal/core/ports"
)

// DefaultProviders returns the credential resolution chain in precedence
// order: admin first, then user, then worker. The ordering is the policy that
// keeps the admin account from being shadowed by a same-address user or
// worker record; callers must not reorder it.
func DefaultProviders(admins ports.AdminRepository, users ports.UserRepository, workers ports.WorkerRepository) []ports.CredentialProvider {
	return []ports.CredentialProvider{
		adminProvider{repo: admins},
		userProvider{repo: users},
		workerProvider{repo: workers},
	}
}

type adminProvider struct {
	repo ports.AdminRepository
}

func (p adminProvider) Role() string { return domain.RoleAdmin }

func (p adminProvider) Resolve(ctx context.Context, email, password string) (*domain.Principal, error) {
	admin, err := p.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !verifyPassword(admin.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}
	return &domain.Principal{
		ID:          admin.ID,
		Email:       admin.Email,
		Role:        domain.RoleAdmin,
		DisplayName: "Admin User",
	}, nil
}

type userProvider struct {
	repo ports.UserRepository
}

func (p userProvider) Role() string { return domain.RoleUser }

func (p userProvider) Resolve(ctx context.Context, email, password string) (*domain.Principal, error) {
	user, err := p.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !verifyPassword(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}
	return &domain.Principal{
		ID:          user.ID,
		Email:       user.Email,
		Role:        domain.RoleUser,
		DisplayName: user.DisplayName(),
	}, nil
}

type workerProvider struct {
	repo ports.WorkerRepository
}

func (p workerProvider) Role() string { return domain.RoleWorker }

func (p workerProvider) Resolve(ctx context.Context, email, password string) (*domain.Principal, error) {
	worker, err := p.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !verifyPassword(worker.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}
	// Identity is confirmed at this point, so the distinct error is safe to
	// surface to the caller.
	if !worker.Approved {
		return nil, domain.ErrAccountPendingApproval
	}
	return &domain.Principal{
		ID:          worker.ID,
		Email:       worker.Email,
		Role:        domain.RoleWorker,
		DisplayName: worker.DisplayName(),
		Designation: worker.Designation,
	}, nil
}

// verifyPassword runs the uniform bcrypt comparison used for every principal
// kind, including the built-in admin.
func verifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// HashPassword produces the stored credential for a new account.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
