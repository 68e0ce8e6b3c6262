package ports

import (
	"context"

	"github.com/connectpro/marketplace-api/internal/core/domain"
)

// SessionStore owns the two typed session slots per client context.
// Get returns (nil, nil) when the slot is empty and
// domain.ErrCorruptedSession when the stored value cannot be decoded; in the
// latter case the store must have already deleted the offending entry.
type SessionStore interface {
	Get(ctx context.Context, contextID string, slot domain.Slot) (*domain.Session, error)
	Put(ctx context.Context, session *domain.Session) error
	Delete(ctx context.Context, contextID string, slot domain.Slot) error
	// Clear removes both slots in one call. Used by sign-out, which must
	// never leave a stale record behind in either slot.
	Clear(ctx context.Context, contextID string) error
}

// LoginThrottle limits failed authentication attempts per email.
type LoginThrottle interface {
	Allow(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}
