package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/elbuensabor/backoffice/internal/api/metrics"
	"github.com/elbuensabor/backoffice/internal/core/ports"
)

const dayLayout = "2006-01-02"

// FinanceHandler exposes daily revenue and the movement ledger.
type FinanceHandler struct {
	finance ports.FinanceService
	tz      *time.Location
}

func NewFinanceHandler(finance ports.FinanceService, tz *time.Location) *FinanceHandler {
	if tz == nil {
		tz = time.UTC
	}
	return &FinanceHandler{finance: finance, tz: tz}
}

type revenueResponse struct {
	Day     string `json:"day"`
	Revenue string `json:"revenue"`
}

type movementRequest struct {
	Kind        string `json:"kind"        validate:"required"`
	Description string `json:"description" validate:"required"`
	Amount      string `json:"amount"      validate:"required"`
}

type movementResponse struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Timestamp   string `json:"timestamp"`
}

type ledgerResponse struct {
	Movements  []movementResponse `json:"movements"`
	NetBalance string             `json:"net_balance"`
}

// Revenue handles GET /v1/finance/revenue?day=YYYY-MM-DD. The day defaults
// to today in the restaurant's timezone.
func (h *FinanceHandler) Revenue(c echo.Context) error {
	day := time.Now().In(h.tz)
	if raw := c.QueryParam("day"); raw != "" {
		parsed, err := time.ParseInLocation(dayLayout, raw, h.tz)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "day must be formatted YYYY-MM-DD")
		}
		day = parsed
	}

	revenue, err := h.finance.DailyRevenue(c.Request().Context(), day)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, revenueResponse{
		Day:     day.Format(dayLayout),
		Revenue: revenue.StringFixed(2),
	})
}

// RecordMovement handles POST /v1/finance/movements.
func (h *FinanceHandler) RecordMovement(c echo.Context) error {
	var req movementRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	id, err := h.finance.RecordMovement(c.Request().Context(), req.Kind, req.Description, req.Amount)
	if err != nil {
		return err
	}
	metrics.MovementsRecordedTotal.WithLabelValues(strings.ToUpper(req.Kind)).Inc()
	return c.JSON(http.StatusCreated, map[string]string{"id": id})
}

// Ledger handles GET /v1/finance/ledger.
func (h *FinanceHandler) Ledger(c echo.Context) error {
	report, err := h.finance.Ledger(c.Request().Context())
	if err != nil {
		return err
	}

	movements := make([]movementResponse, 0, len(report.Movements))
	for _, m := range report.Movements {
		movements = append(movements, movementResponse{
			ID:          m.ID,
			Kind:        string(m.Kind),
			Description: m.Description,
			Amount:      m.SignedAmount.StringFixed(2),
			Timestamp:   m.Timestamp.Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusOK, ledgerResponse{
		Movements:  movements,
		NetBalance: report.NetBalance.StringFixed(2),
	})
}
