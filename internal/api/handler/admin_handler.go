package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/connectpro/marketplace-api/internal/core/ports"
)

type AdminHandler struct {
	workerService ports.WorkerService
	events        ports.EventRepository
}

func NewAdminHandler(workerService ports.WorkerService, events ports.EventRepository) *AdminHandler {
	return &AdminHandler{workerService: workerService, events: events}
}

// ListWorkers returns every provider account, pending and approved alike.
//
// @Summary      List providers
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.Worker
// @Failure      401  {object}  errorResponse
// @Router       /admin/workers [get]
func (h *AdminHandler) ListWorkers(c echo.Context) error {
	workers, err := h.workerService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, workers)
}

// SetApproval approves or revokes a provider account. Revoking does not end
// an already-persisted session; the guard catches that at next use only if
// the session itself is invalid, so revocation takes effect on next sign-in.
//
// @Summary      Set provider approval
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string           true  "Worker ID"
// @Param        body  body      approvalRequest  true  "Approval flag"
// @Success      200   {object}  domain.Worker
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /admin/workers/{id}/approval [patch]
func (h *AdminHandler) SetApproval(c echo.Context) error {
	var req approvalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	worker, err := h.workerService.SetApproval(c.Request().Context(), c.Param("id"), *req.Approved)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, worker)
}

// ListBookingEvents returns the audit trail recorded for one booking.
//
// @Summary      Booking audit trail
// @Tags         admin
// @Produce      json
// @Param        id  path      string  true  "Booking ID"
// @Success      200  {array}   domain.BookingEvent
// @Failure      401  {object}  errorResponse
// @Router       /admin/bookings/{id}/events [get]
func (h *AdminHandler) ListBookingEvents(c echo.Context) error {
	events, err := h.events.ListByBooking(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}
