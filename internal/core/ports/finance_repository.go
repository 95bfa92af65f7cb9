package ports

import (
	"context"

	"github.com/elbuensabor/backoffice/internal/core/domain"
)

// FinanceRepository persists the manual movement ledger.
type FinanceRepository interface {
	SaveMovement(ctx context.Context, movement *domain.FinancialMovement) error
	ListMovements(ctx context.Context) ([]*domain.FinancialMovement, error)
}
