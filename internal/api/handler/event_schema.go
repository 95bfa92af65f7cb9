package handler

import "time"

type orderEventRequest struct {
	OrderID     string    `json:"order_id"  validate:"required"`
	TargetState string    `json:"state"     validate:"required,oneof=ACTIVE FINALIZED CANCELLED"`
	Timestamp   time.Time `json:"timestamp" validate:"required"`
	Source      string    `json:"source"    validate:"required"`
}

type acceptedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}
