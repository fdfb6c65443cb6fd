package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/campusops/venue-booking/internal/models"
)

// Identity headers set by the auth gateway in front of this service.
// Issuing and verifying credentials is the gateway's job, not ours.
const (
	HeaderUserID   = "X-User-Id"
	HeaderUserRole = "X-User-Role"
)

const identityKey = "identity"

// Identity requires a well-formed caller identity on the request and
// stashes it in the echo context for handlers.
func Identity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := uuid.Parse(c.Request().Header.Get(HeaderUserID))
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid user identity")
		}

		role := models.Role(c.Request().Header.Get(HeaderUserRole))
		if !role.Valid() {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid user role")
		}

		c.Set(identityKey, models.Identity{UserID: userID.String(), Role: role})
		return next(c)
	}
}

// CallerIdentity returns the identity stored by the Identity middleware.
func CallerIdentity(c echo.Context) models.Identity {
	ident, _ := c.Get(identityKey).(models.Identity)
	return ident
}
