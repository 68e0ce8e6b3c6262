package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/connectpro/marketplace-api/internal/core/ports"
)

type ReviewHandler struct {
	reviewService ports.ReviewService
}

func NewReviewHandler(reviewService ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// Submit rates a completed booking. One review per booking, written by the
// customer who opened it.
//
// @Summary      Submit review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        body  body      submitReviewRequest  true  "Review"
// @Success      201   {object}  domain.Review
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /reviews [post]
func (h *ReviewHandler) Submit(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req submitReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	review, err := h.reviewService.Submit(c.Request().Context(), session.PrincipalID, req.BookingID, req.Rating, req.Comment)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, review)
}

// ListByWorker returns a provider's reviews. Public: prospective customers
// browse these before booking.
//
// @Summary      List provider reviews
// @Tags         reviews
// @Produce      json
// @Param        id  path      string  true  "Worker ID"
// @Success      200  {array}   domain.Review
// @Router       /workers/{id}/reviews [get]
func (h *ReviewHandler) ListByWorker(c echo.Context) error {
	reviews, err := h.reviewService.ListByWorker(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviews)
}
