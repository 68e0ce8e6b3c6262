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

	"github.com/connectpro/marketplace-api/internal/core/domain"
)

type stubContactRepo struct {
	messages []domain.ContactMessage
}

func (r *stubContactRepo) Insert(_ context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	out := *msg
	out.ID = "contact_1"
	r.messages = append(r.messages, out)
	return &out, nil
}

func (r *stubContactRepo) ListAll(_ context.Context) ([]domain.ContactMessage, error) {
	return r.messages, nil
}

func TestContactHandler_Submit_Success(t *testing.T) {
	e := testEcho()
	repo := &stubContactRepo{}
	handler := NewContactHandler(repo)

	body := strings.NewReader(`{
		"name": "Carol",
		"email": "carol@example.com",
		"subject": "Billing question",
		"message": "How do I get an invoice for a completed booking?"
	}`)
	req := httptest.NewRequest(http.MethodPost, "/contacts", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Submit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	if len(repo.messages) != 1 {
		t.Fatalf("expected one stored message, got %d", len(repo.messages))
	}
	stored := repo.messages[0]
	if stored.Email != "carol@example.com" || stored.Message == "" {
		t.Fatalf("unexpected stored message: %+v", stored)
	}
	if stored.CreatedAt.IsZero() || stored.CreatedAt.After(time.Now().UTC()) {
		t.Fatalf("created_at not stamped: %v", stored.CreatedAt)
	}
}

func TestContactHandler_Submit_MissingMessage(t *testing.T) {
	e := testEcho()
	handler := NewContactHandler(&stubContactRepo{})

	body := strings.NewReader(`{"name":"Carol","email":"carol@example.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/contacts", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Submit(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestContactHandler_List(t *testing.T) {
	e := testEcho()
	repo := &stubContactRepo{messages: []domain.ContactMessage{
		{ID: "contact_1", Name: "Carol", Email: "carol@example.com", Message: "hi"},
		{ID: "contact_2", Name: "Dan", Email: "dan@example.com", Message: "hello"},
	}}
	handler := NewContactHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/admin/contacts", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 || resp[0]["email"] != "carol@example.com" {
		t.Fatalf("unexpected messages payload: %+v", resp)
	}
}
