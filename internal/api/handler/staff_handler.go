package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/elbuensabor/backoffice/internal/api/metrics"
	"github.com/elbuensabor/backoffice/internal/core/domain"
	"github.com/elbuensabor/backoffice/internal/core/ports"
)

// StaffHandler exposes staff provisioning and contract management.
type StaffHandler struct {
	provisioning ports.ProvisioningService
}

func NewStaffHandler(provisioning ports.ProvisioningService) *StaffHandler {
	return &StaffHandler{provisioning: provisioning}
}

type provisionRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name"     validate:"required"`
	Role     string `json:"role"     validate:"required,oneof=administrator manager cashier cook"`
}

type provisionResponse struct {
	IdentityID string `json:"identity_id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Role       string `json:"role"`
}

type staffProfileResponse struct {
	IdentityID string `json:"identity_id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Position   string `json:"position"`
	Salary     string `json:"salary"`
	Email      string `json:"email"`
}

type contractRequest struct {
	Position string `json:"position" validate:"required"`
	Salary   string `json:"salary"   validate:"required"`
}

// Create handles POST /v1/staff: the two-store provisioning saga.
func (h *StaffHandler) Create(c echo.Context) error {
	var req provisionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	id, err := h.provisioning.Provision(c.Request().Context(), ports.ProvisionInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
	})
	if err != nil {
		metrics.ProvisioningTotal.WithLabelValues(provisionOutcome(err)).Inc()
		return err
	}
	metrics.ProvisioningTotal.WithLabelValues("ok").Inc()

	return c.JSON(http.StatusCreated, provisionResponse{
		IdentityID: id,
		Email:      req.Email,
		Name:       req.Name,
		Role:       req.Role,
	})
}

func provisionOutcome(err error) string {
	var pf *domain.PartialFailureError
	if errors.As(err, &pf) {
		if pf.Compensated {
			return "compensated"
		}
		return "orphaned"
	}
	var uo *domain.UnknownOutcomeError
	if errors.As(err, &uo) {
		return "unknown"
	}
	return "rejected"
}

// List handles GET /v1/staff.
func (h *StaffHandler) List(c echo.Context) error {
	profiles, err := h.provisioning.ListStaff(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]staffProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, staffProfileResponse{
			IdentityID: p.IdentityID,
			Name:       p.Name,
			Role:       string(p.Role),
			Position:   p.Position,
			Salary:     p.Salary.StringFixed(2),
			Email:      p.Email,
		})
	}
	return c.JSON(http.StatusOK, out)
}

// Delete handles DELETE /v1/staff/:name: the reverse-order deprovision saga.
func (h *StaffHandler) Delete(c echo.Context) error {
	name := c.Param("name")
	if err := h.provisioning.Deprovision(c.Request().Context(), name); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// UpdateContract handles PUT /v1/staff/:name/contract.
func (h *StaffHandler) UpdateContract(c echo.Context) error {
	var req contractRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	salary, err := domain.ParseAmount(req.Salary)
	if err != nil {
		return err
	}
	if err := h.provisioning.UpdateContract(c.Request().Context(), c.Param("name"), req.Position, salary); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
