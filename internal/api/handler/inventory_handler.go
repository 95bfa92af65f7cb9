package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/elbuensabor/backoffice/internal/core/domain"
	"github.com/elbuensabor/backoffice/internal/core/ports"
)

// InventoryHandler exposes the stock list.
type InventoryHandler struct {
	inventory ports.InventoryService
}

func NewInventoryHandler(inventory ports.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventory: inventory}
}

type inventoryItemRequest struct {
	Name     string `json:"name"      validate:"required"`
	Quantity int64  `json:"quantity"  validate:"gte=0"`
	UnitCost string `json:"unit_cost" validate:"required"`
}

type inventoryItemResponse struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
	UnitCost string `json:"unit_cost"`
}

func toInventoryResponse(items []*domain.InventoryItem) []inventoryItemResponse {
	out := make([]inventoryItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, inventoryItemResponse{
			Key:      it.Key,
			Name:     it.Name,
			Quantity: it.Quantity,
			UnitCost: it.UnitCost.StringFixed(2),
		})
	}
	return out
}

// List handles GET /v1/inventory?q=<query>.
func (h *InventoryHandler) List(c echo.Context) error {
	items, err := h.inventory.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toInventoryResponse(items))
}

// Upsert handles PUT /v1/inventory.
func (h *InventoryHandler) Upsert(c echo.Context) error {
	var req inventoryItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	item, err := h.inventory.Upsert(c.Request().Context(), req.Name, req.Quantity, req.UnitCost)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, inventoryItemResponse{
		Key:      item.Key,
		Name:     item.Name,
		Quantity: item.Quantity,
		UnitCost: item.UnitCost.StringFixed(2),
	})
}

// Delete handles DELETE /v1/inventory/:name.
func (h *InventoryHandler) Delete(c echo.Context) error {
	if err := h.inventory.Remove(c.Request().Context(), c.Param("name")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
