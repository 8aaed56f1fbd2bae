package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deepmindconcepts/coaching-platform/internal/core/domain"
)

// ContactService is the surface the contact handler needs.
type ContactService interface {
	Submit(ctx context.Context, name, email, subject, message string) (*domain.ContactMessage, error)
	ListAll(ctx context.Context) ([]domain.ContactMessage, error)
}

type ContactHandler struct {
	contact ContactService
}

func NewContactHandler(contact ContactService) *ContactHandler {
	return &ContactHandler{contact: contact}
}

type contactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required,min=10"`
}

// Submit records a contact form submission.
//
// @Summary      Send a contact message
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Message"
// @Success      201   {object}  domain.ContactMessage
// @Failure      400   {object}  map[string]string
// @Router       /contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	msg, err := h.contact.Submit(c.Request().Context(), req.Name, req.Email, req.Subject, req.Message)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, msg)
}

// ListMessages returns every received contact message. Admin only.
//
// @Summary      List contact messages
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.ContactMessage
// @Failure      403  {object}  map[string]string
// @Router       /admin/messages [get]
func (h *ContactHandler) ListMessages(c echo.Context) error {
	msgs, err := h.contact.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msgs)
}
