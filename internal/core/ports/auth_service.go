package ports

import (
	"context"

	"github.com/connectpro/marketplace-api/internal/core/domain"
)

// AuthService is the session and role-resolution authority: it turns an
// (email, password) pair into exactly one role-tagged session and answers
// "who is logged in" for the route guards.
type AuthService interface {
	// Authenticate resolves the credentials against the ordered provider
	// chain, persists the resulting session under the slot for its role, and
	// returns the session plus a signed bearer token for it.
	Authenticate(ctx context.Context, contextID, email, password string) (*domain.Session, string, error)
	// CurrentSession loads and validates the persisted session for the given
	// slot. Corrupt or invalid entries are deleted and reported as absent
	// (nil, nil) rather than surfaced as errors.
	CurrentSession(ctx context.Context, contextID string, slot domain.Slot) (*domain.Session, error)
	// SignOut clears both session slots. Idempotent.
	SignOut(ctx context.Context, contextID string) error
}
