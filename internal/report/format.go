// Package report renders a budget for people: currency strings, a plain-text
// summary and XLSX workbooks.
package report

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL renders v as Brazilian reais, e.g. "R$ 1.234,50".
func FormatBRL(v float64) string {
	if v < 0 && math.Abs(v) >= 0.005 {
		return "-R$ " + printer.Sprintf("%.2f", -v)
	}
	return "R$ " + printer.Sprintf("%.2f", math.Abs(v))
}

// FormatQuantity renders a quantity with pt-BR separators and at most two
// fraction digits.
func FormatQuantity(q float64) string {
	return printer.Sprint(number.Decimal(q, number.MaxFractionDigits(2)))
}
