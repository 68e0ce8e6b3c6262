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

	"github.com/labstack/echo/v4"

	"github.com/connectpro/marketplace-api/internal/api/middleware"
	"github.com/connectpro/marketplace-api/internal/core/domain"
	"github.com/connectpro/marketplace-api/internal/core/ports"
)

type stubBookingService struct {
	createFn       func(ctx context.Context, in ports.CreateBookingInput) (*domain.Booking, error)
	transitionFn   func(ctx context.Context, bookingID, workerID, actorEmail string, next domain.BookingStatus, notes string) (*domain.Booking, error)
	listByUserFn   func(ctx context.Context, userID string) ([]domain.Booking, error)
	listByWorkerFn func(ctx context.Context, workerID string) ([]domain.Booking, error)
	listAllFn      func(ctx context.Context) ([]domain.Booking, error)
}

func (s *stubBookingService) Create(ctx context.Context, in ports.CreateBookingInput) (*domain.Booking, error) {
	return s.createFn(ctx, in)
}

func (s *stubBookingService) Transition(ctx context.Context, bookingID, workerID, actorEmail string, next domain.BookingStatus, notes string) (*domain.Booking, error) {
	return s.transitionFn(ctx, bookingID, workerID, actorEmail, next, notes)
}

func (s *stubBookingService) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	return s.listByUserFn(ctx, userID)
}

func (s *stubBookingService) ListByWorker(ctx context.Context, workerID string) ([]domain.Booking, error) {
	return s.listByWorkerFn(ctx, workerID)
}

func (s *stubBookingService) ListAll(ctx context.Context) ([]domain.Booking, error) {
	return s.listAllFn(ctx)
}

func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, session *domain.Session) echo.Context {
	c := e.NewContext(req, rec)
	c.Set(middleware.SessionKey, session)
	c.Set("role", session.Role)
	return c
}

func TestBookingHandler_Create_Success(t *testing.T) {
	e := testEcho()
	session := sampleSession("sess_1", "ctx1", domain.RoleUser)
	stub := &stubBookingService{
		createFn: func(ctx context.Context, in ports.CreateBookingInput) (*domain.Booking, error) {
			if in.UserID != session.PrincipalID || in.WorkerID != "worker_9" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Booking{
				ID:       "booking_1",
				UserID:   in.UserID,
				WorkerID: in.WorkerID,
				Category: "electrician",
				Status:   domain.StatusPending,
			}, nil
		},
	}
	handler := NewBookingHandler(stub)

	body := strings.NewReader(`{
		"worker_id": "worker_9",
		"description": "Rewire kitchen sockets",
		"address": "12 Elm Street",
		"city": "Austin",
		"scheduled_for": "` + time.Now().Add(48*time.Hour).UTC().Format(time.RFC3339) + `"
	}`)
	req := httptest.NewRequest(http.MethodPost, "/bookings", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, session)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != string(domain.StatusPending) {
		t.Fatalf("expected pending booking, got %+v", resp)
	}
}

func TestBookingHandler_Create_WorkerForbidden(t *testing.T) {
	e := testEcho()
	session := sampleSession("sess_1", "ctx1", domain.RoleWorker)
	stub := &stubBookingService{
		createFn: func(ctx context.Context, in ports.CreateBookingInput) (*domain.Booking, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewBookingHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, session)

	if err := handler.Create(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestBookingHandler_Create_NoSession(t *testing.T) {
	e := testEcho()
	handler := NewBookingHandler(&stubBookingService{})

	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestBookingHandler_UpdateStatus_PassesActor(t *testing.T) {
	e := testEcho()
	session := sampleSession("sess_1", "ctx1", domain.RoleWorker)
	stub := &stubBookingService{
		transitionFn: func(ctx context.Context, bookingID, workerID, actorEmail string, next domain.BookingStatus, notes string) (*domain.Booking, error) {
			if bookingID != "booking_7" || workerID != session.PrincipalID || actorEmail != session.Email {
				t.Fatalf("unexpected args: %s %s %s", bookingID, workerID, actorEmail)
			}
			if next != domain.StatusAccepted || notes != "on my way" {
				t.Fatalf("unexpected transition: %s %q", next, notes)
			}
			return &domain.Booking{ID: bookingID, Status: next}, nil
		},
	}
	handler := NewBookingHandler(stub)

	body := strings.NewReader(`{"status":"accepted","notes":"on my way"}`)
	req := httptest.NewRequest(http.MethodPatch, "/bookings/booking_7/status", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, session)
	c.SetParamNames("id")
	c.SetParamValues("booking_7")

	if err := handler.UpdateStatus(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestBookingHandler_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	e := testEcho()
	session := sampleSession("sess_1", "ctx1", domain.RoleWorker)
	stub := &stubBookingService{
		transitionFn: func(ctx context.Context, bookingID, workerID, actorEmail string, next domain.BookingStatus, notes string) (*domain.Booking, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewBookingHandler(stub)

	req := httptest.NewRequest(http.MethodPatch, "/bookings/booking_7/status", strings.NewReader(`{"status":"cancelled"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, session)
	c.SetParamNames("id")
	c.SetParamValues("booking_7")

	err := handler.UpdateStatus(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestBookingHandler_ListMine(t *testing.T) {
	e := testEcho()
	session := sampleSession("sess_1", "ctx1", domain.RoleUser)
	stub := &stubBookingService{
		listByUserFn: func(ctx context.Context, userID string) ([]domain.Booking, error) {
			if userID != session.PrincipalID {
				t.Fatalf("unexpected user id: %s", userID)
			}
			return []domain.Booking{{ID: "booking_1"}, {ID: "booking_2"}}, nil
		},
	}
	handler := NewBookingHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, session)

	if err := handler.ListMine(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(resp))
	}
}
