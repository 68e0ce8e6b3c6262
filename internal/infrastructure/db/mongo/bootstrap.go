package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/connectpro/marketplace-api/internal/core/domain"
	"github.com/connectpro/marketplace-api/internal/core/ports"
)

// EnsureAdmin seeds the single built-in admin account. The password is stored
// bcrypt-hashed so the login path is identical to every other principal.
// Idempotent: an existing record with the same email is left alone.
func EnsureAdmin(ctx context.Context, repo ports.AdminRepository, email, password string, log zerolog.Logger) error {
	if email == "" || password == "" {
		return errors.New("bootstrap admin: email and password are required")
	}

	if _, err := repo.FindByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return fmt.Errorf("bootstrap admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("bootstrap admin: hash password: %w", err)
	}

	if err := repo.Upsert(ctx, &domain.Admin{
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}); err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}

	log.Info().Str("email", email).Msg("admin account seeded")
	return nil
}
