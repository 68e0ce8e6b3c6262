package ports

import (
	"context"

	"github.com/connectpro/marketplace-api/internal/core/domain"
)

// ContactRepository persists contact-form messages.
type ContactRepository interface {
	Insert(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error)
	ListAll(ctx context.Context) ([]domain.ContactMessage, error)
}
