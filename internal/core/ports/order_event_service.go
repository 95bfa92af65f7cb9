package ports

import (
	"context"
	"time"
)

// OrderEventInput is an order status event reported by a floor or kitchen
// device. Timestamp is the device-side event time, used for deduplication.
type OrderEventInput struct {
	OrderID     string
	TargetState string
	Timestamp   time.Time
	Source      string
}

// OrderEventService processes incoming order status events.
type OrderEventService interface {
	Process(ctx context.Context, event OrderEventInput) error
}
