package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/elbuensabor/backoffice/internal/core/domain"
)

// LedgerReport is the movement ledger sorted by timestamp descending plus
// the running net balance over all signed amounts.
type LedgerReport struct {
	Movements  []*domain.FinancialMovement
	NetBalance decimal.Decimal
}

// FinanceService derives revenue from finalized orders and maintains the
// manual movement ledger.
type FinanceService interface {
	// DailyRevenue sums the totals of FINALIZED orders whose finalization
	// stamp falls on day in the configured timezone.
	DailyRevenue(ctx context.Context, day time.Time) (decimal.Decimal, error)

	// RecordMovement parses rawAmount tolerantly (see domain.ParseAmount)
	// and stores a signed movement with a time-ordered id.
	RecordMovement(ctx context.Context, kind, description, rawAmount string) (movementID string, err error)

	Ledger(ctx context.Context) (*LedgerReport, error)
}
