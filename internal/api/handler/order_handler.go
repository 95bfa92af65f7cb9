package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/elbuensabor/backoffice/internal/api/metrics"
	"github.com/elbuensabor/backoffice/internal/core/domain"
	"github.com/elbuensabor/backoffice/internal/core/ports"
)

// OrderHandler exposes the order lifecycle and the menu listing.
type OrderHandler struct {
	orders ports.OrderService
}

func NewOrderHandler(orders ports.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

func toOrderResponse(o *domain.Order) orderResponse {
	items := make([]orderLineResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderLineResponse{ItemID: it.ItemID, Quantity: it.Quantity})
	}
	resp := orderResponse{
		ID:        o.ID,
		Items:     items,
		Total:     o.Total.StringFixed(2),
		State:     string(o.State),
		CreatedBy: o.CreatedBy,
		CreatedAt: o.CreatedAt.Format(time.RFC3339),
	}
	if !o.FinalizedAt.IsZero() {
		resp.FinalizedAt = o.FinalizedAt.Format(time.RFC3339)
	}
	return resp
}

// Create handles POST /v1/orders.
func (h *OrderHandler) Create(c echo.Context) error {
	identityID, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	items := make([]ports.LineItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, ports.LineItemInput{ItemID: it.ItemID, Quantity: it.Quantity})
	}

	order, err := h.orders.Create(c.Request().Context(), ports.CreateOrderInput{
		Items:     items,
		CreatedBy: identityID,
	})
	if err != nil {
		return err
	}
	metrics.OrdersCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toOrderResponse(order))
}

// Transition handles POST /v1/orders/:id/transition.
func (h *OrderHandler) Transition(c echo.Context) error {
	var req transitionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	target, err := domain.ParseOrderState(req.Target)
	if err != nil {
		return err
	}

	orderID := c.Param("id")
	result, err := h.orders.Transition(c.Request().Context(), orderID, target)
	if err != nil {
		metrics.OrderTransitionsTotal.WithLabelValues(string(target), "rejected").Inc()
		return err
	}
	if result.AlreadyFinalized {
		metrics.OrderTransitionsTotal.WithLabelValues(string(target), "noop").Inc()
	} else {
		metrics.OrderTransitionsTotal.WithLabelValues(string(target), "applied").Inc()
	}

	resp := transitionResponse{
		ID:               orderID,
		State:            string(result.State),
		AlreadyFinalized: result.AlreadyFinalized,
	}
	if !result.FinalizedAt.IsZero() {
		resp.FinalizedAt = result.FinalizedAt.Format(time.RFC3339)
	}
	return c.JSON(http.StatusOK, resp)
}

// ListActive handles GET /v1/orders/active.
func (h *OrderHandler) ListActive(c echo.Context) error {
	orders, err := h.orders.ListActive(c.Request().Context())
	if err != nil {
		return err
	}
	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	return c.JSON(http.StatusOK, out)
}

// Menu handles GET /v1/menu.
func (h *OrderHandler) Menu(c echo.Context) error {
	items, err := h.orders.Menu(c.Request().Context())
	if err != nil {
		return err
	}
	out := make([]menuItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, menuItemResponse{ID: it.ID, Name: it.Name, Price: it.Price.StringFixed(2)})
	}
	return c.JSON(http.StatusOK, out)
}
