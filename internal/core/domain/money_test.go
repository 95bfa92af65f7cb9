package domain

import (
	"errors"
	"testing"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"1.234,56", "1234.56"},
		{"1,234.56", "1234.56"},
		{"1000", "1000"},
		{"10.50", "10.5"},
		{"1,000", "1000"},
		{"1.000,50", "1000.5"},
		{" 2 500.75 ", "2500.75"},
		{"10,50", "1050"}, // commas alone are grouping marks
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.raw)
		if err != nil {
			t.Errorf("ParseAmount(%q) returned error: %v", tc.raw, err)
			continue
		}
		if got.String() != tc.want {
			t.Errorf("ParseAmount(%q) = %s, want %s", tc.raw, got, tc.want)
		}
	}
}

func TestParseAmount_Invalid(t *testing.T) {
	for _, raw := range []string{"-5", "abc", "", "0", "0,00", "1.2.3,4,5"} {
		if _, err := ParseAmount(raw); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("ParseAmount(%q): expected ErrInvalidAmount, got %v", raw, err)
		}
	}
}
