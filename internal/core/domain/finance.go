package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MovementKind distinguishes manually recorded income from expenses.
type MovementKind string

const (
	MovementIncome  MovementKind = "INCOME"
	MovementExpense MovementKind = "EXPENSE"
)

// ParseMovementKind validates a raw kind string, case-insensitively.
func ParseMovementKind(s string) (MovementKind, error) {
	k := MovementKind(strings.ToUpper(strings.TrimSpace(s)))
	switch k {
	case MovementIncome, MovementExpense:
		return k, nil
	}
	return "", ErrInvalidMovementKind
}

// FinancialMovement is a manually recorded income or expense not tied to an
// order. Immutable once created. SignedAmount is negative for expenses.
type FinancialMovement struct {
	ID           string          `json:"id"`
	Kind         MovementKind    `json:"kind"`
	Description  string          `json:"description"`
	SignedAmount decimal.Decimal `json:"signed_amount"`
	Timestamp    time.Time       `json:"timestamp"`
}
