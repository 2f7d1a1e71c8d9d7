package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/handypro/connect-api/internal/api/middleware"
	"github.com/handypro/connect-api/internal/core/domain"
)

// currentUser extracts the identity resolved by the Auth middleware.
// Its presence proves the middleware ran; a protected route reached
// without it fails closed.
func currentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.UserContextKey).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}
