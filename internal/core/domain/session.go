package domain

import (
	"fmt"
	"time"
)

// Slot identifies one of the two persisted session slots per client context.
// Admins have a dedicated slot; users and workers share one, so a later
// authentication of either kind overwrites the other (last write wins).
type Slot string

const (
	AdminSlot     Slot = "admin_session"
	PrincipalSlot Slot = "user_session"
)

// SlotForRole maps a role to the slot its session is persisted under.
func SlotForRole(role string) Slot {
	if role == RoleAdmin {
		return AdminSlot
	}
	return PrincipalSlot
}

// Session is the role-tagged proof of a successful authentication, persisted
// per client context until sign-out, expiry, or corruption detection.
type Session struct {
	ID          string    `json:"id"`
	ContextID   string    `json:"context_id"`
	PrincipalID string    `json:"principal_id"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	DisplayName string    `json:"display_name"`
	Designation string    `json:"designation,omitempty"` // workers only
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Slot returns the slot this session belongs in, derived from its role tag.
func (s *Session) Slot() Slot {
	return SlotForRole(s.Role)
}

// Expired reports whether the session's lifetime has elapsed at now.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// Validate checks that a session read back from storage is structurally
// sound and actually belongs in the slot it was found under. A session that
// fails here must be discarded, never trusted.
func (s *Session) Validate(slot Slot) error {
	if s.ID == "" || s.ContextID == "" || s.PrincipalID == "" || s.Email == "" {
		return fmt.Errorf("%w: missing identity fields", ErrCorruptedSession)
	}
	switch s.Role {
	case RoleAdmin, RoleUser, RoleWorker:
	default:
		return fmt.Errorf("%w: unknown role %q", ErrCorruptedSession, s.Role)
	}
	if s.Slot() != slot {
		return fmt.Errorf("%w: role %q found in slot %q", ErrCorruptedSession, s.Role, slot)
	}
	if s.Role == RoleWorker && s.Designation == "" {
		return fmt.Errorf("%w: worker session without designation", ErrCorruptedSession)
	}
	return nil
}
