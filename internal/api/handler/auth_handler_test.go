package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/connectpro/marketplace-api/internal/core/domain"
)

type stubAuthService struct {
	authenticateFn   func(ctx context.Context, contextID, email, password string) (*domain.Session, string, error)
	currentSessionFn func(ctx context.Context, contextID string, slot domain.Slot) (*domain.Session, error)
	signOutFn        func(ctx context.Context, contextID string) error
}

func (s *stubAuthService) Authenticate(ctx context.Context, contextID, email, password string) (*domain.Session, string, error) {
	return s.authenticateFn(ctx, contextID, email, password)
}

func (s *stubAuthService) CurrentSession(ctx context.Context, contextID string, slot domain.Slot) (*domain.Session, error) {
	return s.currentSessionFn(ctx, contextID, slot)
}

func (s *stubAuthService) SignOut(ctx context.Context, contextID string) error {
	return s.signOutFn(ctx, contextID)
}

func testEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func sampleSession(sid, contextID, role string) *domain.Session {
	now := time.Now().UTC()
	s := &domain.Session{
		ID:          sid,
		ContextID:   contextID,
		PrincipalID: role + "_1",
		Email:       role + "@example.com",
		Role:        role,
		DisplayName: "Test Person",
		CreatedAt:   now,
		ExpiresAt:   now.Add(time.Hour),
	}
	if role == domain.RoleWorker {
		s.Designation = "electrician"
	}
	return s
}

func signBearer(t *testing.T, secret string, session *domain.Session) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid":   session.ID,
		"ctx":   session.ContextID,
		"email": session.Email,
		"role":  session.Role,
		"exp":   session.ExpiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return "Bearer " + signed
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := testEcho()
	want := sampleSession("sess_1", "ctx1", domain.RoleUser)
	stub := &stubAuthService{
		authenticateFn: func(ctx context.Context, contextID, email, password string) (*domain.Session, string, error) {
			if contextID != "ctx1" || email != "alice@example.com" || password != "secret" {
				t.Fatalf("unexpected args: %s %s %s", contextID, email, password)
			}
			return want, "token123", nil
		},
	}
	handler := NewAuthHandler(stub, "secret")

	body := strings.NewReader(`{"email":"alice@example.com","password":"secret","context_id":"ctx1"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
	session, ok := resp["session"].(map[string]any)
	if !ok || session["role"] != domain.RoleUser || session["context_id"] != "ctx1" {
		t.Fatalf("unexpected session payload: %+v", session)
	}
}

func TestAuthHandler_Login_GeneratesContextID(t *testing.T) {
	e := testEcho()
	var gotContextID string
	stub := &stubAuthService{
		authenticateFn: func(ctx context.Context, contextID, email, password string) (*domain.Session, string, error) {
			gotContextID = contextID
			return sampleSession("sess_1", contextID, domain.RoleUser), "token123", nil
		},
	}
	handler := NewAuthHandler(stub, "secret")

	body := strings.NewReader(`{"email":"alice@example.com","password":"secret"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if gotContextID == "" {
		t.Fatalf("expected a generated context id")
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := testEcho()
	stub := &stubAuthService{
		authenticateFn: func(ctx context.Context, contextID, email, password string) (*domain.Session, string, error) {
			return nil, "", domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub, "secret")

	body := strings.NewReader(`{"email":"alice@example.com","password":"bad"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_Throttled(t *testing.T) {
	e := testEcho()
	stub := &stubAuthService{
		authenticateFn: func(ctx context.Context, contextID, email, password string) (*domain.Session, string, error) {
			return nil, "", domain.ErrTooManyAttempts
		},
	}
	handler := NewAuthHandler(stub, "secret")

	body := strings.NewReader(`{"email":"alice@example.com","password":"secret"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Login(c)
	if !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	e := testEcho()
	stub := &stubAuthService{
		authenticateFn: func(ctx context.Context, contextID, email, password string) (*domain.Session, string, error) {
			t.Fatalf("should not be called")
			return nil, "", nil
		},
	}
	handler := NewAuthHandler(stub, "secret")

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"not-an-email"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Login(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Session_Anonymous(t *testing.T) {
	e := testEcho()
	stub := &stubAuthService{
		currentSessionFn: func(ctx context.Context, contextID string, slot domain.Slot) (*domain.Session, error) {
			t.Fatalf("should not be called without a token")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub, "secret")

	req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Session(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["session"] != nil {
		t.Fatalf("expected null session, got %v", resp["session"])
	}
}

func TestAuthHandler_Session_Valid(t *testing.T) {
	e := testEcho()
	session := sampleSession("sess_1", "ctx1", domain.RoleAdmin)
	stub := &stubAuthService{
		currentSessionFn: func(ctx context.Context, contextID string, slot domain.Slot) (*domain.Session, error) {
			if contextID != "ctx1" || slot != domain.AdminSlot {
				t.Fatalf("unexpected lookup: %s %s", contextID, slot)
			}
			return session, nil
		},
	}
	handler := NewAuthHandler(stub, "secret")

	req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	req.Header.Set("Authorization", signBearer(t, "secret", session))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Session(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	got, ok := resp["session"].(map[string]any)
	if !ok || got["id"] != "sess_1" || got["role"] != domain.RoleAdmin {
		t.Fatalf("unexpected session payload: %+v", resp["session"])
	}
}

func TestAuthHandler_Session_SupersededToken(t *testing.T) {
	e := testEcho()
	stale := sampleSession("sess_1", "ctx1", domain.RoleUser)
	stub := &stubAuthService{
		currentSessionFn: func(ctx context.Context, contextID string, slot domain.Slot) (*domain.Session, error) {
			// The slot was overwritten by a later sign-in.
			return sampleSession("sess_2", "ctx1", domain.RoleWorker), nil
		},
	}
	handler := NewAuthHandler(stub, "secret")

	req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	req.Header.Set("Authorization", signBearer(t, "secret", stale))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Session(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["session"] != nil {
		t.Fatalf("expected null session for superseded token, got %v", resp["session"])
	}
}

func TestAuthHandler_Logout_ClearsContext(t *testing.T) {
	e := testEcho()
	session := sampleSession("sess_1", "ctx1", domain.RoleUser)
	signedOut := false
	stub := &stubAuthService{
		signOutFn: func(ctx context.Context, contextID string) error {
			if contextID != "ctx1" {
				t.Fatalf("unexpected context id: %s", contextID)
			}
			signedOut = true
			return nil
		},
	}
	handler := NewAuthHandler(stub, "secret")

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Authorization", signBearer(t, "secret", session))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if !signedOut {
		t.Fatalf("expected sign-out to run")
	}
}

func TestAuthHandler_Logout_Anonymous(t *testing.T) {
	e := testEcho()
	stub := &stubAuthService{
		signOutFn: func(ctx context.Context, contextID string) error {
			t.Fatalf("should not be called without a token")
			return nil
		},
	}
	handler := NewAuthHandler(stub, "secret")

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
