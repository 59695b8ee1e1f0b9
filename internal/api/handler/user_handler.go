package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Thor-asgardian/FullStack/internal/core/domain"
	"github.com/Thor-asgardian/FullStack/internal/core/ports"
)

// UserHandler serves the token-protected identity endpoints.
type UserHandler struct {
	authService ports.AuthService
}

func NewUserHandler(authService ports.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// Profile returns the caller's own account record, looked up by the
// subject id carried in the verified token.
//
// @Summary      Get own profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  profileResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /profile [get]
func (h *UserHandler) Profile(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	user, err := h.authService.Profile(c.Request().Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Message: "user not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, profileResponse{User: toUserResponse(user)})
}

// AdminListUsers returns every account. Route access is restricted to
// the admin role by the RBAC middleware.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  userListResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /admin/users [get]
func (h *UserHandler) AdminListUsers(c echo.Context) error {
	users, err := h.authService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userListResponse{Users: toUserResponses(users)})
}

// ModeratorDashboard greets moderators and admins with their own
// claims. No store round trip: the token already carries everything.
//
// @Summary      Moderator dashboard
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  dashboardResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /moderator/dashboard [get]
func (h *UserHandler) ModeratorDashboard(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dashboardResponse{
		Message: "Welcome to moderator dashboard",
		User:    *claims,
	})
}
