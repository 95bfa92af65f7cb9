package handler

type orderLineRequest struct {
	ItemID   string `json:"item_id"  validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

type createOrderRequest struct {
	Items []orderLineRequest `json:"items" validate:"required,min=1,dive"`
}

type transitionRequest struct {
	Target string `json:"target" validate:"required,oneof=ACTIVE FINALIZED CANCELLED"`
}

type orderLineResponse struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

type orderResponse struct {
	ID          string              `json:"id"`
	Items       []orderLineResponse `json:"items"`
	Total       string              `json:"total"`
	State       string              `json:"state"`
	CreatedBy   string              `json:"created_by,omitempty"`
	CreatedAt   string              `json:"created_at"`
	FinalizedAt string              `json:"finalized_at,omitempty"`
}

type transitionResponse struct {
	ID               string `json:"id"`
	State            string `json:"state"`
	AlreadyFinalized bool   `json:"already_finalized,omitempty"`
	FinalizedAt      string `json:"finalized_at,omitempty"`
}

type menuItemResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}
