package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/connectpro/marketplace-api/internal/api/metrics"
	"github.com/connectpro/marketplace-api/internal/core/domain"
	"github.com/connectpro/marketplace-api/internal/core/ports"
)

type BookingHandler struct {
	bookingService ports.BookingService
}

func NewBookingHandler(bookingService ports.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// Create opens a pending booking against an approved, available provider on
// behalf of the signed-in customer.
//
// @Summary      Create booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  domain.Booking
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	if session.Role != domain.RoleUser {
		return domain.ErrForbidden
	}

	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.bookingService.Create(c.Request().Context(), ports.CreateBookingInput{
		UserID:       session.PrincipalID,
		WorkerID:     req.WorkerID,
		Category:     req.Category,
		Description:  req.Description,
		Address:      req.Address,
		City:         req.City,
		ScheduledFor: req.ScheduledFor,
	})
	if err != nil {
		return err
	}

	metrics.BookingsCreatedTotal.WithLabelValues(booking.Category).Inc()
	return c.JSON(http.StatusCreated, booking)
}

// ListMine returns the signed-in customer's bookings.
//
// @Summary      List own bookings
// @Tags         bookings
// @Produce      json
// @Success      200  {array}   domain.Booking
// @Failure      401  {object}  errorResponse
// @Router       /bookings [get]
func (h *BookingHandler) ListMine(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	bookings, err := h.bookingService.ListByUser(c.Request().Context(), session.PrincipalID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

// ListAssigned returns the bookings directed at the signed-in provider.
//
// @Summary      List assigned bookings
// @Tags         bookings
// @Produce      json
// @Success      200  {array}   domain.Booking
// @Failure      401  {object}  errorResponse
// @Router       /workers/me/bookings [get]
func (h *BookingHandler) ListAssigned(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	bookings, err := h.bookingService.ListByWorker(c.Request().Context(), session.PrincipalID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

// ListAll returns every booking in the system for the admin dashboard.
//
// @Summary      List all bookings
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.Booking
// @Failure      401  {object}  errorResponse
// @Router       /admin/bookings [get]
func (h *BookingHandler) ListAll(c echo.Context) error {
	bookings, err := h.bookingService.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

// UpdateStatus moves a booking through its lifecycle on behalf of the
// signed-in provider. The service rejects transitions on bookings assigned
// to someone else.
//
// @Summary      Update booking status
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        id    path      string                      true  "Booking ID"
// @Param        body  body      updateBookingStatusRequest  true  "Target status"
// @Success      200   {object}  domain.Booking
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req updateBookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.bookingService.Transition(
		c.Request().Context(),
		c.Param("id"),
		session.PrincipalID,
		session.Email,
		domain.BookingStatus(req.Status),
		req.Notes,
	)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, booking)
}
