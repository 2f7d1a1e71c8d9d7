package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/handypro/connect-api/internal/api/metrics"
	"github.com/handypro/connect-api/internal/core/domain"
	"github.com/handypro/connect-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
		Phone:    req.Phone,
		Role:     req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserExists), errors.Is(err, domain.ErrInvalidRole):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(user.Role).Inc()
	return c.JSON(http.StatusOK, user)
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Login with email and password
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "Email address"
// @Param        password  formData  string  true  "Password"
// @Success      200       {object}  tokenResponse
// @Failure      401       {object}  errorResponse
// @Failure      422       {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	signed, _, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "incorrect email or password"})
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, tokenResponse{AccessToken: signed, TokenType: "bearer"})
}

// Me returns the authenticated user.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
