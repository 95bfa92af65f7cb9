package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/elbuensabor/backoffice/internal/core/domain"
)

// ctxSession extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: a parseable role
// proves the middleware ran and the token carries a usable identity.
func ctxSession(c echo.Context) (identityID string, role domain.Role, err error) {
	raw, _ := c.Get("role").(string)
	role, perr := domain.ParseRole(raw)
	if perr != nil {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	identityID, _ = c.Get("identity_id").(string)
	if identityID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "token missing identity")
	}
	return identityID, role, nil
}
