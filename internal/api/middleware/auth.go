package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/handypro/connect-api/internal/api/metrics"
	"github.com/handypro/connect-api/internal/core/domain"
	"github.com/handypro/connect-api/internal/core/ports"
	"github.com/handypro/connect-api/pkg/token"
)

// UserContextKey is where Auth stores the resolved *domain.User.
const UserContextKey = "auth_user"

// Auth is the access guard: it extracts the bearer token, verifies the
// signature and expiry, then resolves the subject against the user
// repository. The second step rejects structurally valid tokens whose
// subject no longer exists. Every failure is a plain 401.
func Auth(tokens *token.Manager, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenRejectionsTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenRejectionsTotal.WithLabelValues("malformed_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, err := users.FindByEmail(c.Request().Context(), claims.Subject)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.TokenRejectionsTotal.WithLabelValues("unknown_subject").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
				return err
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}
