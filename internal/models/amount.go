package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseLocaleAmount converts an amount written with "." as thousands
// separator and "," as decimal separator ("-1.234,56") to a decimal
func ParseLocaleAmount(s string) (decimal.Decimal, error) {
	normalized := strings.TrimSpace(s)
	normalized = strings.ReplaceAll(normalized, " ", "")
	normalized = strings.ReplaceAll(normalized, "\u00A0", "")
	normalized = strings.ReplaceAll(normalized, ".", "")
	normalized = strings.Replace(normalized, ",", ".", 1)

	if normalized == "" || strings.Contains(normalized, ",") {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	amount, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return amount, nil
}
