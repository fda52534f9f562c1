package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatUSD форматирует сумму в долларах без дробной части: $1,295
func FormatUSD(amount decimal.Decimal) string {
	rounded := amount.Round(0)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}
	return sign + "$" + groupThousands(rounded.StringFixed(0))
}

// FormatInt - то же для целой суммы в долларах
func FormatInt(amount int) string {
	return FormatUSD(decimal.NewFromInt(int64(amount)))
}

// Average возвращает total/count с округлением до центов, 0 при count == 0
func Average(total decimal.Decimal, count int) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return total.DivRound(decimal.NewFromInt(int64(count)), 2)
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
