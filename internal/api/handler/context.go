package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Thor-asgardian/FullStack/internal/api/middleware"
	"github.com/Thor-asgardian/FullStack/internal/core/domain"
)

// ctxClaims extracts the claims injected by the Auth middleware and
// fast-fails before any service call. Absent claims mean the middleware
// never ran or was bypassed; the request is rejected with 401 rather
// than trusted.
func ctxClaims(c echo.Context) (*domain.Claims, error) {
	claims := middleware.Claims(c)
	if claims == nil || claims.UserID == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}
