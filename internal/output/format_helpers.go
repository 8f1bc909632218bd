package output

import (
	"strconv"

	"github.com/shopspring/decimal"
)

var decimalHundred = decimal.NewFromInt(100)

// FormatCurrency formats a decimal as currency with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string { return "$" + amount.StringFixed(2) }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatRate formats a fractional rate (0.07) as a percentage (7.00%).
func FormatRate(rate decimal.Decimal) string { return FormatPercentage(rate.Mul(decimalHundred)) }

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
