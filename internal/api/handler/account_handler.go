package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/connectpro/marketplace-api/internal/core/ports"
)

type AccountHandler struct {
	userService   ports.UserService
	workerService ports.WorkerService
}

func NewAccountHandler(userService ports.UserService, workerService ports.WorkerService) *AccountHandler {
	return &AccountHandler{userService: userService, workerService: workerService}
}

// RegisterUser creates a customer account. New customers can sign in
// immediately.
//
// @Summary      Register customer
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body      registerUserRequest  true  "Customer details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /users/register [post]
func (h *AccountHandler) RegisterUser(c echo.Context) error {
	var req registerUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.Register(c.Request().Context(), ports.RegisterUserInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		City:      req.City,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

// RegisterWorker creates a provider account. The account stays pending until
// an administrator approves it; sign-in is refused meanwhile.
//
// @Summary      Register provider
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body      registerWorkerRequest  true  "Provider details"
// @Success      201   {object}  domain.Worker
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /workers/register [post]
func (h *AccountHandler) RegisterWorker(c echo.Context) error {
	var req registerWorkerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	worker, err := h.workerService.Register(c.Request().Context(), ports.RegisterWorkerInput{
		Email:           req.Email,
		Password:        req.Password,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Phone:           req.Phone,
		City:            req.City,
		Designation:     req.Designation,
		ExperienceYears: req.ExperienceYears,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, worker)
}

// BrowseWorkers lists bookable providers for customers: approved and
// available only, optionally filtered by designation. Public, like the
// review listing — customers browse before they sign up.
//
// @Summary      Browse providers
// @Tags         accounts
// @Produce      json
// @Param        designation  query     string  false  "Filter by designation (e.g. plumber)"
// @Success      200          {array}   domain.Worker
// @Router       /workers [get]
func (h *AccountHandler) BrowseWorkers(c echo.Context) error {
	workers, err := h.workerService.Browse(c.Request().Context(), c.QueryParam("designation"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, workers)
}

// SetAvailability lets a signed-in provider toggle whether they accept new
// bookings. It acts on the session's own account, never on a path parameter.
//
// @Summary      Set own availability
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body      availabilityRequest  true  "Availability flag"
// @Success      200   {object}  domain.Worker
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /workers/me/availability [patch]
func (h *AccountHandler) SetAvailability(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req availabilityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	worker, err := h.workerService.SetAvailability(c.Request().Context(), session.PrincipalID, *req.Available)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, worker)
}
