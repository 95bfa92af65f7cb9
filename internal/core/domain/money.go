package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts an operator-typed amount into a decimal. Both common
// notations are accepted: thousands-dot/decimal-comma ("1.234,56") and
// thousands-comma/decimal-dot ("1,234.56"). When both separators are present
// the one occurring last is the decimal separator and the other is stripped
// as a grouping mark; when only commas are present they are treated as
// grouping marks. The result must be strictly positive.
func ParseAmount(raw string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), " ", "")
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("%w: empty input", ErrInvalidAmount)
	}

	lastDot := strings.LastIndex(cleaned, ".")
	lastComma := strings.LastIndex(cleaned, ",")
	if lastDot >= 0 && lastComma > lastDot {
		// Both separators present with the comma last: comma is the decimal
		// mark and dots are grouping.
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	} else {
		// Dot (if any) is the decimal mark; commas are grouping.
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	if amount.Sign() <= 0 {
		return decimal.Zero, fmt.Errorf("%w: %q is not positive", ErrInvalidAmount, raw)
	}
	return amount, nil
}
