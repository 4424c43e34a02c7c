package web

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var inr = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR renders an amount as whole rupees with Indian digit grouping,
// e.g. 250000 -> ₹2,50,000.
func FormatINR(d decimal.Decimal) string {
	f, _ := d.Round(0).Float64()
	return inr.Sprintf("₹%v", number.Decimal(f, number.MaxFractionDigits(0)))
}

// FormatDate renders a date as abbreviated month, day, year.
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}
