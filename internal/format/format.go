// Package format renders money, percentage and count strings for breakdown
// and evidence text. One shared printer keeps grouping separators consistent
// everywhere a number is shown to the owner.
package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Money renders a dollar amount with grouping and no cents ("$12,450").
// Cents are dropped, not rounded up; KPI displays follow the ledger total.
func Money(amount float64) string {
	return printer.Sprintf("$%d", int64(amount))
}

// MoneyExact renders a dollar amount with cents ("$1,038.50").
func MoneyExact(amount float64) string {
	return printer.Sprintf("$%.2f", amount)
}

// Percent renders a 0-1 rate as a percentage with one decimal ("80.0%").
func Percent(rate float64) string {
	return printer.Sprintf("%.1f%%", rate*100)
}

// Count renders an integer with grouping separators ("10,000").
func Count(n int) string {
	return printer.Sprintf("%d", n)
}

// Score renders a 0-100 score with one decimal ("72.5").
func Score(v float64) string {
	return printer.Sprintf("%.1f", v)
}
