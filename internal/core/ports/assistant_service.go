package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/elbuensabor/backoffice/internal/core/domain"
)

// StaffSummary is the assistant's view of one staff member. Salary is
// deliberately omitted.
type StaffSummary struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Position string `json:"position"`
}

// FinanceSummary condenses the movement ledger for the assistant.
type FinanceSummary struct {
	NetBalance    decimal.Decimal `json:"net_balance"`
	MovementCount int             `json:"movement_count"`
}

// AssistantContext is the aggregated business snapshot handed to the chat
// assistant's prompt builder. It is read straight from the store adapters,
// never through the coordinators.
type AssistantContext struct {
	GeneratedAt time.Time               `json:"generated_at"`
	Inventory   []*domain.InventoryItem `json:"inventory"`
	Finance     FinanceSummary          `json:"finance"`
	Staff       []StaffSummary          `json:"staff"`
}

// AssistantService builds the snapshot document.
type AssistantService interface {
	BuildContext(ctx context.Context) (*AssistantContext, error)
}
