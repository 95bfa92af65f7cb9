package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/elbuensabor/backoffice/internal/core/domain"
	"github.com/elbuensabor/backoffice/internal/core/ports"
)

// FinanceService derives daily revenue from finalized orders and keeps the
// ledger of manual income/expense movements.
type FinanceService struct {
	movements ports.FinanceRepository
	orders    ports.OrderRepository
	tz        *time.Location
	log       zerolog.Logger
}

func NewFinanceService(movements ports.FinanceRepository, orders ports.OrderRepository, tz *time.Location, log zerolog.Logger) *FinanceService {
	if tz == nil {
		tz = time.UTC
	}
	return &FinanceService{movements: movements, orders: orders, tz: tz, log: log}
}

// DailyRevenue sums the totals of FINALIZED orders whose finalization stamp
// falls on day in the configured timezone. Orders that are not FINALIZED or
// carry no stamp are excluded regardless of when they were created.
func (s *FinanceService) DailyRevenue(ctx context.Context, day time.Time) (decimal.Decimal, error) {
	orders, err := s.orders.ListAll(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("load orders: %w", err)
	}

	wantY, wantM, wantD := day.In(s.tz).Date()
	total := decimal.Zero
	for _, o := range orders {
		if o.State != domain.OrderFinalized || o.FinalizedAt.IsZero() {
			continue
		}
		y, m, d := o.FinalizedAt.In(s.tz).Date()
		if y == wantY && m == wantM && d == wantD {
			total = total.Add(o.Total)
		}
	}
	return total, nil
}

// RecordMovement stores one manual ledger entry. Expenses are stored with a
// negative signed amount. The id is time-ordered so the store sorts
// movements in creation order without a secondary index.
func (s *FinanceService) RecordMovement(ctx context.Context, kind, description, rawAmount string) (string, error) {
	k, err := domain.ParseMovementKind(kind)
	if err != nil {
		return "", err
	}
	amount, err := domain.ParseAmount(rawAmount)
	if err != nil {
		return "", err
	}

	signed := amount
	if k == domain.MovementExpense {
		signed = amount.Neg()
	}

	now := time.Now().In(s.tz)
	movement := &domain.FinancialMovement{
		ID:           fmt.Sprintf("MOV-%d", now.UnixNano()),
		Kind:         k,
		Description:  description,
		SignedAmount: signed,
		Timestamp:    now,
	}

	if err := s.movements.SaveMovement(ctx, movement); err != nil {
		s.log.Error().Err(err).Str("movement_id", movement.ID).Msg("failed to save movement")
		return "", err
	}

	s.log.Info().
		Str("movement_id", movement.ID).
		Str("kind", string(k)).
		Str("amount", signed.StringFixed(2)).
		Msg("movement recorded")

	return movement.ID, nil
}

// Ledger returns all movements sorted by timestamp descending plus the net
// balance over their signed amounts.
func (s *FinanceService) Ledger(ctx context.Context) (*ports.LedgerReport, error) {
	movements, err := s.movements.ListMovements(ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(movements, func(i, j int) bool {
		return movements[i].Timestamp.After(movements[j].Timestamp)
	})

	net := decimal.Zero
	for _, m := range movements {
		net = net.Add(m.SignedAmount)
	}

	return &ports.LedgerReport{Movements: movements, NetBalance: net}, nil
}
