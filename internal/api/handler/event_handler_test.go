package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/elbuensabor/backoffice/internal/core/ports"
)

type stubDispatcher struct {
	events []ports.OrderEventInput
}

func (d *stubDispatcher) Enqueue(event ports.OrderEventInput) {
	d.events = append(d.events, event)
}

func (d *stubDispatcher) EnqueueBatch(events []ports.OrderEventInput) {
	d.events = append(d.events, events...)
}

func TestEventHandler_Receive(t *testing.T) {
	dispatcher := &stubDispatcher{}
	h := NewEventHandler(dispatcher)

	c, rec := newTestContext(t, http.MethodPost, "/v1/orders/events",
		`{"order_id":"ord-1","state":"FINALIZED","timestamp":"2026-03-14T13:00:00Z","source":"pos-2"}`)
	if err := h.Receive(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
	if len(dispatcher.events) != 1 || dispatcher.events[0].OrderID != "ord-1" {
		t.Fatalf("event not enqueued: %+v", dispatcher.events)
	}
}

func TestEventHandler_Receive_RejectsUnknownState(t *testing.T) {
	dispatcher := &stubDispatcher{}
	h := NewEventHandler(dispatcher)

	c, _ := newTestContext(t, http.MethodPost, "/v1/orders/events",
		`{"order_id":"ord-1","state":"SHIPPED","timestamp":"2026-03-14T13:00:00Z","source":"pos-2"}`)
	err := h.Receive(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
	if len(dispatcher.events) != 0 {
		t.Fatalf("invalid event must not be enqueued")
	}
}

func TestEventHandler_ReceiveBatch(t *testing.T) {
	dispatcher := &stubDispatcher{}
	h := NewEventHandler(dispatcher)

	c, rec := newTestContext(t, http.MethodPost, "/v1/orders/events/batch",
		`[{"order_id":"ord-1","state":"FINALIZED","timestamp":"2026-03-14T13:00:00Z","source":"pos-2"},
		  {"order_id":"ord-2","state":"CANCELLED","timestamp":"2026-03-14T13:01:00Z","source":"kitchen-1"}]`)
	if err := h.ReceiveBatch(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
	if len(dispatcher.events) != 2 {
		t.Fatalf("expected 2 events enqueued, got %d", len(dispatcher.events))
	}
}

func TestEventHandler_ReceiveBatch_Empty(t *testing.T) {
	dispatcher := &stubDispatcher{}
	h := NewEventHandler(dispatcher)

	c, _ := newTestContext(t, http.MethodPost, "/v1/orders/events/batch", `[]`)
	err := h.ReceiveBatch(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
