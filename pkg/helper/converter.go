package helper

import (
	"fmt"

	"github.com/dquezada/pasarela/pkg/constant"
)

// FormatQuetzales renders an amount in centavos as a decimal quetzal string,
// e.g. 500 -> "5.00", 1250 -> "12.50".
func FormatQuetzales(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	return fmt.Sprintf("%s%d.%02d", sign, cents/constant.CentsPerUnit, cents%constant.CentsPerUnit)
}

// MinAmountMessage builds the client-facing rejection message for amounts
// below the configured minimum.
func MinAmountMessage(minCents int64) string {
	return fmt.Sprintf(constant.MsgMinAmountPattern, FormatQuetzales(minCents), minCents)
}
