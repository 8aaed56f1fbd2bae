package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deepmindconcepts/coaching-platform/internal/core/domain"
	"github.com/deepmindconcepts/coaching-platform/internal/core/ports"
)

// AdminHandler serves the administrator's directory views.
type AdminHandler struct {
	directory ports.UserDirectory
}

func NewAdminHandler(directory ports.UserDirectory) *AdminHandler {
	return &AdminHandler{directory: directory}
}

// ListUsers returns every account, sanitized. Admin only.
//
// @Summary      List accounts
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.User
// @Failure      403  {object}  map[string]string
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.directory.List(c.Request().Context())
	if err != nil {
		return err
	}

	sanitized := make([]domain.User, 0, len(users))
	for _, u := range users {
		sanitized = append(sanitized, u.Sanitized())
	}
	return c.JSON(http.StatusOK, sanitized)
}
