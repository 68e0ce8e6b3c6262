package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/connectpro/marketplace-api/internal/core/domain"
	"github.com/connectpro/marketplace-api/internal/core/ports"
)

type workerService struct {
	repo ports.WorkerRepository
	log  zerolog.Logger
}

// NewWorkerService returns a WorkerService implementation.
func NewWorkerService(repo ports.WorkerRepository, log zerolog.Logger) ports.WorkerService {
	return &workerService{repo: repo, log: log}
}

// Register creates an unapproved provider account. The account cannot
// authenticate until an administrator approves it.
func (s *workerService) Register(ctx context.Context, in ports.RegisterWorkerInput) (*domain.Worker, error) {
	if in.Email == "" || in.Password == "" || in.FirstName == "" || in.Designation == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	worker := &domain.Worker{
		Email:           in.Email,
		PasswordHash:    hash,
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		Phone:           in.Phone,
		City:            in.City,
		Designation:     in.Designation,
		ExperienceYears: in.ExperienceYears,
		Approved:        false,
		Available:       true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.repo.Create(ctx, worker)
	if err != nil {
		return nil, fmt.Errorf("register worker: %w", err)
	}

	s.log.Info().
		Str("worker_id", created.ID).
		Str("designation", created.Designation).
		Msg("worker registered, pending approval")

	return created, nil
}

func (s *workerService) List(ctx context.Context) ([]domain.Worker, error) {
	return s.repo.List(ctx)
}

// Browse lists only the providers a customer can actually book.
func (s *workerService) Browse(ctx context.Context, designation string) ([]domain.Worker, error) {
	return s.repo.ListApproved(ctx, designation)
}

func (s *workerService) SetApproval(ctx context.Context, id string, approved bool) (*domain.Worker, error) {
	if err := s.repo.SetApproval(ctx, id, approved); err != nil {
		return nil, fmt.Errorf("set approval: %w", err)
	}

	s.log.Info().Str("worker_id", id).Bool("approved", approved).Msg("worker approval updated")

	return s.repo.FindByID(ctx, id)
}

func (s *workerService) SetAvailability(ctx context.Context, id string, available bool) (*domain.Worker, error) {
	if err := s.repo.SetAvailability(ctx, id, available); err != nil {
		return nil, fmt.Errorf("set availability: %w", err)
	}
	return s.repo.FindByID(ctx, id)
}
