package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Thor-asgardian/FullStack/internal/api/metrics"
	"github.com/Thor-asgardian/FullStack/internal/core/domain"
	"github.com/Thor-asgardian/FullStack/internal/core/ports"
)

// claimsKey is the echo context key the verified claims are stored
// under. Handlers read them back through handler.ctxClaims.
const claimsKey = "auth_claims"

// Auth extracts the bearer token from the Authorization header,
// verifies it, and injects the resulting claims into the request
// context. Requests without a valid token never reach the next handler.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					metrics.TokenVerificationsTotal.WithLabelValues("expired").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "token expired")
				}
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
			c.Set(claimsKey, claims)

			return next(c)
		}
	}
}

// Claims returns the verified claims attached by Auth, or nil when the
// request was never authenticated.
func Claims(c echo.Context) *domain.Claims {
	claims, _ := c.Get(claimsKey).(*domain.Claims)
	return claims
}

// SetClaims attaches claims to the context directly. Intended for tests
// exercising handlers below the middleware.
func SetClaims(c echo.Context, claims *domain.Claims) {
	c.Set(claimsKey, claims)
}
