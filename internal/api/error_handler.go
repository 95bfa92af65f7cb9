package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/elbuensabor/backoffice/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// partialFailureResponse is the envelope for dual-store outcomes that left,
// or may have left, inconsistent state behind. It carries enough identifiers
// for an operator to remediate manually.
type partialFailureResponse struct {
	Error          string `json:"error"`
	PartialFailure bool   `json:"partial_failure"`
	Compensated    bool   `json:"compensated"`
	IdentityID     string `json:"identity_id,omitempty"`
	Email          string `json:"email,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Renders dual-store partial failures in a distinct envelope so callers
//     can tell a clean rollback from an orphaned record.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var pf *domain.PartialFailureError
		if errors.As(err, &pf) {
			_ = c.JSON(http.StatusBadGateway, partialFailureResponse{
				Error:          "provisioning failed after identity creation",
				PartialFailure: true,
				Compensated:    pf.Compensated,
				IdentityID:     pf.IdentityID,
				Email:          pf.Email,
			})
			return
		}
		var oc *domain.OrphanedCredentialError
		if errors.As(err, &oc) {
			_ = c.JSON(http.StatusBadGateway, partialFailureResponse{
				Error:          "profile removed but credential deletion failed",
				PartialFailure: true,
				IdentityID:     oc.IdentityID,
				Email:          oc.Email,
			})
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	var uo *domain.UnknownOutcomeError
	if errors.As(err, &uo) {
		return http.StatusGatewayTimeout, "operation outcome unknown, verify before retrying"
	}

	// Known domain errors map to deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidArgument),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrPasswordTooShort),
		errors.Is(err, domain.ErrEmptyOrder),
		errors.Is(err, domain.ErrInvalidOrderState),
		errors.Is(err, domain.ErrInvalidMovementKind):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrProfileMissing):
		return http.StatusConflict, "account has no staff profile"
	case errors.Is(err, domain.ErrIdentityNotFound):
		return http.StatusNotFound, "identity not found"
	case errors.Is(err, domain.ErrStaffNotFound):
		return http.StatusNotFound, "staff member not found"
	case errors.Is(err, domain.ErrOrderNotFound):
		return http.StatusNotFound, "order not found"
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, "inventory item not found"
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, "email already in use"
	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, "store unavailable"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
