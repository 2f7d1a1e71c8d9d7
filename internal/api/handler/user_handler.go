package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/handypro/connect-api/internal/core/ports"
)

// UserHandler serves the profile endpoints.
type UserHandler struct {
	authService ports.AuthService
}

func NewUserHandler(authService ports.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// Profile returns the caller's profile.
//
// @Summary      Get own profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Router       /users/profile [get]
func (h *UserHandler) Profile(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateProfile updates the caller's mutable profile fields.
//
// @Summary      Update own profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      profileUpdateRequest  true  "Fields to update"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /users/profile [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req profileUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	updated, err := h.authService.UpdateProfile(c.Request().Context(), user, ports.ProfileUpdateInput{
		FullName: req.FullName,
		Phone:    req.Phone,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}
