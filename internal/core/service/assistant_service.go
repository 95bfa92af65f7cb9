package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/elbuensabor/backoffice/internal/core/ports"
)

// AssistantService aggregates the business snapshot the chat assistant uses
// as prompt context. It reads the store adapters directly, never through the
// coordinators, and omits sensitive fields such as salaries.
type AssistantService struct {
	inventory ports.InventoryRepository
	movements ports.FinanceRepository
	staff     ports.StaffRepository
}

func NewAssistantService(inventory ports.InventoryRepository, movements ports.FinanceRepository, staff ports.StaffRepository) *AssistantService {
	return &AssistantService{inventory: inventory, movements: movements, staff: staff}
}

func (s *AssistantService) BuildContext(ctx context.Context) (*ports.AssistantContext, error) {
	items, err := s.inventory.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("assistant context: inventory: %w", err)
	}

	movements, err := s.movements.ListMovements(ctx)
	if err != nil {
		return nil, fmt.Errorf("assistant context: movements: %w", err)
	}
	net := decimal.Zero
	for _, m := range movements {
		net = net.Add(m.SignedAmount)
	}

	profiles, err := s.staff.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("assistant context: staff: %w", err)
	}
	staff := make([]ports.StaffSummary, 0, len(profiles))
	for _, p := range profiles {
		staff = append(staff, ports.StaffSummary{
			Name:     p.Name,
			Role:     string(p.Role),
			Position: p.Position,
		})
	}

	return &ports.AssistantContext{
		GeneratedAt: time.Now().UTC(),
		Inventory:   items,
		Finance:     ports.FinanceSummary{NetBalance: net, MovementCount: len(movements)},
		Staff:       staff,
	}, nil
}
