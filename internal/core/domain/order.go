package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderState represents the lifecycle state of an order.
type OrderState string

const (
	OrderActive    OrderState = "ACTIVE"
	OrderFinalized OrderState = "FINALIZED"
	OrderCancelled OrderState = "CANCELLED"
)

// validTransitions defines the allowed state machine transitions.
// FINALIZED and CANCELLED are terminal.
var validTransitions = map[OrderState][]OrderState{
	OrderActive: {OrderFinalized, OrderCancelled},
}

// CanTransitionTo reports whether a transition from the current state to next is valid.
func (s OrderState) CanTransitionTo(next OrderState) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition may leave this state.
func (s OrderState) Terminal() bool {
	return s == OrderFinalized || s == OrderCancelled
}

// ParseOrderState validates a raw state string.
func ParseOrderState(s string) (OrderState, error) {
	switch OrderState(s) {
	case OrderActive, OrderFinalized, OrderCancelled:
		return OrderState(s), nil
	}
	return "", ErrInvalidOrderState
}

// LineItem is a single menu item position on an order.
type LineItem struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// Order is the core aggregate of the order lifecycle. Orders are never
// deleted; finalized and cancelled orders remain as append-only history for
// financial reconciliation.
type Order struct {
	ID          string          `json:"id"`
	Items       []LineItem      `json:"items"`
	Total       decimal.Decimal `json:"total"`
	State       OrderState      `json:"state"`
	CreatedBy   string          `json:"created_by"`
	CreatedAt   time.Time       `json:"created_at"`
	FinalizedAt FlexTime        `json:"finalized_at,omitzero"`
}
