package loans

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatNumber groups digits the ru-RU way (non-breaking space).
func FormatNumber(n int) string {
	return message.NewPrinter(language.Russian).Sprintf("%d", n)
}

// FormatRub renders an amount in roubles, e.g. "250 000 ₽".
func FormatRub(n int) string {
	return FormatNumber(n) + " ₽"
}

// FormatPercent renders a rate with one decimal, e.g. "12.5%".
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// FormatRateRU renders a rate the ru-RU way with at most one decimal,
// e.g. "10,2%".
func FormatRateRU(v float64) string {
	return message.NewPrinter(language.Russian).Sprint(number.Decimal(v, number.MaxFractionDigits(1))) + "%"
}

// FormatMonths renders a term, e.g. "12 мес.".
func FormatMonths(n int) string {
	return fmt.Sprintf("%d мес.", n)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
