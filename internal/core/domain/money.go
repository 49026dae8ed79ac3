package domain

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money is a monetary amount in US dollars. The campaign API may encode
// amounts either as JSON numbers or as decimal strings ("1000.00"); both
// decode to the same value. Money always encodes as a bare JSON number.
type Money struct {
	decimal.Decimal
}

// NewMoney returns a Money holding v.
func NewMoney(v decimal.Decimal) Money {
	return Money{Decimal: v}
}

// MoneyFromFloat is a convenience for tests and literals.
func MoneyFromFloat(f float64) Money {
	return Money{Decimal: decimal.NewFromFloat(f)}
}

// ParseMoney parses a decimal string such as "1000.50".
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{Decimal: d}, nil
}

// MarshalJSON encodes the amount as a JSON number.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal string.
func (m *Money) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		m.Decimal = decimal.Zero
		return nil
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return fmt.Errorf("decode money: %w", err)
	}
	m.Decimal = d
	return nil
}

var (
	usdPrinter = message.NewPrinter(language.AmericanEnglish)
	maxInt64   = decimal.NewFromInt(math.MaxInt64)
)

// FormatUSD renders m in en-US currency style, e.g. "$1,000.00" or
// "-$5.00". The amount is rounded to cents without passing through float64.
func FormatUSD(m Money) string {
	d := m.Decimal.Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	whole := d.Truncate(0)
	cents := d.Sub(whole).Shift(2).IntPart()
	return fmt.Sprintf("%s$%s.%02d", sign, groupThousands(whole), cents)
}

// groupThousands formats a non-negative whole amount with comma separators.
// The printer covers the int64 range; larger amounts are grouped by hand.
func groupThousands(whole decimal.Decimal) string {
	if whole.LessThanOrEqual(maxInt64) {
		return usdPrinter.Sprintf("%d", whole.IntPart())
	}
	digits := whole.String()
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}
