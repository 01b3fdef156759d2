package utils

import (
	"github.com/shopspring/decimal"
)

const montoPrecision = 2

// FormatMonto renders an amount in soles with two decimals.
// Example: 12.5 returns "S/ 12.50"
func FormatMonto(amount decimal.Decimal) string {
	return "S/ " + amount.StringFixed(montoPrecision)
}
