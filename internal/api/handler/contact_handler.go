package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/connectpro/marketplace-api/internal/core/domain"
	"github.com/connectpro/marketplace-api/internal/core/ports"
)

type ContactHandler struct {
	contacts ports.ContactRepository
}

func NewContactHandler(contacts ports.ContactRepository) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// Submit stores a contact-form message. Public: works for visitors who have
// no account at all.
//
// @Summary      Submit contact message
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Message"
// @Success      201   {object}  domain.ContactMessage
// @Failure      400   {object}  errorResponse
// @Router       /contacts [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	msg, err := h.contacts.Insert(c.Request().Context(), &domain.ContactMessage{
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, msg)
}

// List returns every contact message, newest first.
//
// @Summary      List contact messages
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.ContactMessage
// @Failure      401  {object}  errorResponse
// @Router       /admin/contacts [get]
func (h *ContactHandler) List(c echo.Context) error {
	messages, err := h.contacts.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messages)
}
