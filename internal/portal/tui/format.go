package tui

import (
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DateLayout is DD/MM/AAAA.
const DateLayout = "02/01/2006"

// NoDate stands in for a missing or unparsable date.
const NoDate = "--/--/----"

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// Money formats v as Brazilian reais, e.g. "R$ 1.234,50".
func Money(v float64) string {
	if v < 0 {
		return "-R$ " + ptBR.Sprintf("%.2f", math.Abs(v))
	}
	return "R$ " + ptBR.Sprintf("%.2f", v)
}

// SignedMoney is Money with an explicit '+' for non-negative values.
func SignedMoney(v float64) string {
	if v >= 0 {
		return "+" + Money(v)
	}
	return Money(v)
}

// Percent formats v (already in percent units) with two decimals.
func Percent(v float64) string {
	return ptBR.Sprintf("%.2f", v) + "%"
}

// Quantity formats a share count without trailing zeros for whole numbers.
func Quantity(v float64) string {
	if v == math.Trunc(v) {
		return ptBR.Sprintf("%d", int64(v))
	}
	return ptBR.Sprintf("%.4f", v)
}

// Date formats t as DD/MM/AAAA, or NoDate when ok is false.
func Date(t time.Time, ok bool) string {
	if !ok {
		return NoDate
	}
	return t.Format(DateLayout)
}
