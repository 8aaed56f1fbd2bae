package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deepmindconcepts/coaching-platform/internal/core/domain"
	"github.com/deepmindconcepts/coaching-platform/internal/core/ports"
)

type BookingHandler struct {
	bookings ports.BookingService
}

func NewBookingHandler(bookings ports.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

type createBookingRequest struct {
	ServiceID     int    `json:"service_id" validate:"required,gt=0"`
	CoachID       int    `json:"coach_id" validate:"required,gt=0"`
	Date          string `json:"date" validate:"required,datetime=2006-01-02"`
	TimeSlot      string `json:"time_slot" validate:"required"`
	Goals         string `json:"goals,omitempty"`
	Challenges    string `json:"challenges,omitempty"`
	ContactMethod string `json:"contact_method,omitempty" validate:"omitempty,oneof=email phone video"`
}

type updateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled"`
}

// Create books a coaching session for the logged-in user.
//
// @Summary      Book a coaching session
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  domain.Booking
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.bookings.Create(c.Request().Context(), ports.CreateBookingInput{
		UserID:        sess.User.ID,
		UserEmail:     sess.User.Email,
		ServiceID:     req.ServiceID,
		CoachID:       req.CoachID,
		Date:          req.Date,
		TimeSlot:      req.TimeSlot,
		Goals:         req.Goals,
		Challenges:    req.Challenges,
		ContactMethod: req.ContactMethod,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, booking)
}

// ListMine returns the logged-in user's bookings.
//
// @Summary      List my bookings
// @Tags         bookings
// @Produce      json
// @Success      200  {array}  domain.Booking
// @Router       /bookings [get]
func (h *BookingHandler) ListMine(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	bookings, err := h.bookings.ListForUser(c.Request().Context(), sess.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

// ListAll returns every booking. Admin only.
//
// @Summary      List all bookings
// @Tags         admin
// @Produce      json
// @Success      200  {array}  domain.Booking
// @Failure      403  {object}  map[string]string
// @Router       /admin/bookings [get]
func (h *BookingHandler) ListAll(c echo.Context) error {
	bookings, err := h.bookings.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

// UpdateStatus applies a booking lifecycle transition. Admin only.
//
// @Summary      Update booking status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string                      true  "Booking ID"
// @Param        body  body      updateBookingStatusRequest  true  "Target status"
// @Success      200   {object}  domain.Booking
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /admin/bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	var req updateBookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.bookings.UpdateStatus(c.Request().Context(), c.Param("id"), domain.BookingStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, booking)
}
