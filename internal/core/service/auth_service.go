package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/connectpro/marketplace-api/internal/core/domain"
	"github.com/connectpro/marketplace-api/internal/core/ports"
)

// AuthConfig carries the authority's tunables.
type AuthConfig struct {
	// AdminEmail is the address of the single built-in admin account. Stored
	// admin sessions are re-checked against it on every read.
	AdminEmail string
	JWTSecret  string
	SessionTTL time.Duration
	// StoreTimeout bounds each credential/session store round trip so a
	// hanging backend fails the call instead of leaving the caller waiting.
	StoreTimeout time.Duration
}

// AuthService implements the session and role-resolution authority.
type AuthService struct {
	providers []ports.CredentialProvider
	sessions  ports.SessionStore
	throttle  ports.LoginThrottle
	cfg       AuthConfig
	log       zerolog.Logger
}

func NewAuthService(
	providers []ports.CredentialProvider,
	sessions ports.SessionStore,
	throttle ports.LoginThrottle,
	cfg AuthConfig,
	log zerolog.Logger,
) *AuthService {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 24 * time.Hour
	}
	if cfg.StoreTimeout <= 0 {
		cfg.StoreTimeout = 5 * time.Second
	}
	return &AuthService{providers: providers, sessions: sessions, throttle: throttle, cfg: cfg, log: log}
}

// Authenticate resolves the credentials against the provider chain in order.
// A provider that reports "unknown email" or "wrong password" passes
// resolution on to the next provider; only a confirmed identity stops the
// walk. The resulting session overwrites whatever previously occupied its
// slot.
func (s *AuthService) Authenticate(ctx context.Context, contextID, email, password string) (*domain.Session, string, error) {
	if contextID == "" || email == "" || password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}

	// Every store round trip below, the throttle check included, runs under
	// the same deadline.
	ctx, cancel := context.WithTimeout(ctx, s.cfg.StoreTimeout)
	defer cancel()

	allowed, err := s.throttle.Allow(ctx, email)
	if err != nil {
		s.log.Warn().Err(err).Msg("login throttle check failed, allowing attempt")
	} else if !allowed {
		return nil, "", domain.ErrTooManyAttempts
	}

	principal, err := s.resolve(ctx, email, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			if recErr := s.throttle.RecordFailure(ctx, email); recErr != nil {
				s.log.Warn().Err(recErr).Msg("failed to record login failure")
			}
		}
		return nil, "", err
	}

	now := time.Now().UTC()
	sessionID, err := newSessionID()
	if err != nil {
		return nil, "", err
	}

	session := &domain.Session{
		ID:          sessionID,
		ContextID:   contextID,
		PrincipalID: principal.ID,
		Email:       principal.Email,
		Role:        principal.Role,
		DisplayName: principal.DisplayName,
		Designation: principal.Designation,
		CreatedAt:   now,
		ExpiresAt:   now.Add(s.cfg.SessionTTL),
	}

	if err := s.sessions.Put(ctx, session); err != nil {
		return nil, "", fmt.Errorf("%w: persist session: %v", domain.ErrStoreUnavailable, err)
	}

	token, err := s.signToken(session)
	if err != nil {
		return nil, "", err
	}

	if err := s.throttle.Reset(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("failed to reset login throttle")
	}

	s.log.Info().
		Str("role", session.Role).
		Str("context_id", contextID).
		Msg("principal authenticated")

	return session, token, nil
}

// resolve walks the provider chain and returns the first confirmed identity.
func (s *AuthService) resolve(ctx context.Context, email, password string) (*domain.Principal, error) {
	for _, p := range s.providers {
		principal, err := p.Resolve(ctx, email, password)
		switch {
		case err == nil:
			return principal, nil
		case errors.Is(err, domain.ErrAccountNotFound), errors.Is(err, domain.ErrInvalidCredentials):
			continue
		case errors.Is(err, domain.ErrAccountPendingApproval):
			return nil, err
		default:
			return nil, fmt.Errorf("%w: %s lookup: %v", domain.ErrStoreUnavailable, p.Role(), err)
		}
	}
	return nil, domain.ErrInvalidCredentials
}

// CurrentSession answers "who is logged in" for one slot of one client
// context. Anything that fails decoding or validation is deleted from the
// store and reported as absent — the caller is treated as anonymous, never
// handed a session it should not trust.
func (s *AuthService) CurrentSession(ctx context.Context, contextID string, slot domain.Slot) (*domain.Session, error) {
	if contextID == "" {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.StoreTimeout)
	defer cancel()

	session, err := s.sessions.Get(ctx, contextID, slot)
	if err != nil {
		if errors.Is(err, domain.ErrCorruptedSession) {
			// The store already removed the undecodable entry.
			s.log.Warn().Str("slot", string(slot)).Msg("corrupted session discarded")
			return nil, nil
		}
		return nil, fmt.Errorf("%w: read session: %v", domain.ErrStoreUnavailable, err)
	}
	if session == nil {
		return nil, nil
	}

	if reason := s.invalidReason(session, slot); reason != "" {
		if delErr := s.sessions.Delete(ctx, contextID, slot); delErr != nil {
			s.log.Warn().Err(delErr).Str("slot", string(slot)).Msg("failed to delete invalid session")
		}
		s.log.Warn().Str("slot", string(slot)).Str("reason", reason).Msg("invalid session discarded")
		return nil, nil
	}

	return session, nil
}

// invalidReason returns a non-empty reason when the stored session must not
// be trusted. The admin slot gets the extra identity re-check: a forged entry
// with the right shape but the wrong address is still rejected.
func (s *AuthService) invalidReason(session *domain.Session, slot domain.Slot) string {
	if err := session.Validate(slot); err != nil {
		return "shape"
	}
	if slot == domain.AdminSlot && (session.Role != domain.RoleAdmin || session.Email != s.cfg.AdminEmail) {
		return "identity"
	}
	if session.Expired(time.Now().UTC()) {
		return "expired"
	}
	return ""
}

// SignOut removes both slots regardless of which (if either) is occupied.
// Store failures are logged but never surfaced: from the caller's point of
// view sign-out always succeeds.
func (s *AuthService) SignOut(ctx context.Context, contextID string) error {
	if contextID == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.StoreTimeout)
	defer cancel()

	if err := s.sessions.Clear(ctx, contextID); err != nil {
		s.log.Warn().Err(err).Str("context_id", contextID).Msg("failed to clear session slots")
	}
	return nil
}

// signToken issues the bearer token for a freshly minted session. The token
// is only honoured while the session row it names still exists, so sign-out
// revokes it immediately.
func (s *AuthService) signToken(session *domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"sid":   session.ID,
		"ctx":   session.ContextID,
		"email": session.Email,
		"role":  session.Role,
		"exp":   session.ExpiresAt.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// newSessionID generates a 256-bit random session identifier.
func newSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate session id: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
