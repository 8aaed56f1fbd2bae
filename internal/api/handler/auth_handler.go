package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deepmindconcepts/coaching-platform/internal/api/metrics"
	"github.com/deepmindconcepts/coaching-platform/internal/core/domain"
	"github.com/deepmindconcepts/coaching-platform/internal/core/ports"
)

type AuthHandler struct {
	sessions ports.SessionManager
}

func NewAuthHandler(sessions ports.SessionManager) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

type registerRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Secret string `json:"password" validate:"required,min=6"`
	Name   string `json:"name" validate:"required"`
	Avatar string `json:"avatar,omitempty"`
}

type loginRequest struct {
	Email  string `json:"email" validate:"required"`
	Secret string `json:"password" validate:"required"`
}

type authResponse struct {
	Token     string      `json:"token"`
	User      domain.User `json:"user"`
	Dashboard string      `json:"dashboard"`
}

// Register creates a new end-user account and opens a session for it.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess, err := h.sessions.Register(c.Request().Context(), ports.RegisterInput{
		Email:  req.Email,
		Secret: req.Secret,
		Name:   req.Name,
		Avatar: req.Avatar,
	})
	if err != nil {
		if err == domain.ErrUserExists {
			metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
		} else {
			metrics.RegistrationsTotal.WithLabelValues("failure").Inc()
		}
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusCreated, authResponse{
		Token:     sess.Token,
		User:      sess.User,
		Dashboard: sess.DashboardPath(),
	})
}

// Login authenticates a user and opens a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess, err := h.sessions.Login(c.Request().Context(), req.Email, req.Secret)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, authResponse{
		Token:     sess.Token,
		User:      sess.User,
		Dashboard: sess.DashboardPath(),
	})
}

// Logout closes the current session. Safe to call without one.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      204  "session removed"
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token := bearerToken(c)
	if token != "" {
		if err := h.sessions.Logout(c.Request().Context(), token); err != nil {
			return err
		}
	}
	return c.NoContent(http.StatusNoContent)
}

// Me returns the identity of the current session.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  meResponse
// @Failure      401  {object}  map[string]string
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, meResponse{
		User:      sess.User,
		IsAdmin:   sess.IsAdmin(),
		IsCoach:   sess.IsCoach(),
		IsUser:    sess.IsUser(),
		Dashboard: sess.DashboardPath(),
	})
}

type meResponse struct {
	User      domain.User `json:"user"`
	IsAdmin   bool        `json:"is_admin"`
	IsCoach   bool        `json:"is_coach"`
	IsUser    bool        `json:"is_user"`
	Dashboard string      `json:"dashboard"`
}
