package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency symbol used across the admin views.
const CurrencySymbol = "₦"

// FormatAmount renders an amount the way the admin tables show money:
// currency symbol, thousands separators, two decimal places dropped when
// the amount is whole.
func FormatAmount(amount float64) string {
	d := decimal.NewFromFloat(amount)

	places := int32(2)
	if d.Equal(d.Truncate(0)) {
		places = 0
	}
	s := d.StringFixed(places)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(CurrencySymbol)
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteString(fracPart)
	return b.String()
}

// SumAmounts totals float money values without accumulating float error.
func SumAmounts(amounts []float64) float64 {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(decimal.NewFromFloat(a))
	}
	f, _ := total.Float64()
	return f
}
