// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaskedBudget is the fixed-width placeholder shown while the budget
// figure is hidden.
const MaskedBudget = "••••••"

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatMoney formats a budget amount with a dollar glyph and thousands
// separators. Whole amounts drop the cents.
// e.g., 45000 -> "$45,000", 1250.5 -> "$1,250.50"
func FormatMoney(amount float64) string {
	// Round to the cent grid first so a fraction like .999 carries into
	// the whole part instead of printing as ".100".
	amount = math.Round(amount*100) / 100
	whole := math.Trunc(amount)
	cents := math.Round((amount - whole) * 100)
	if cents == 0 {
		return "$" + FormatNumber(int64(whole))
	}
	return fmt.Sprintf("$%s.%02d", FormatNumber(int64(whole)), int64(cents))
}

// FormatBudget returns the budget for display: the real amount when
// revealed, the mask otherwise.
func FormatBudget(amount float64, revealed bool) string {
	if !revealed {
		return MaskedBudget
	}
	return FormatMoney(amount)
}

// FormatPercent renders a 0-100 percentage rounded to a whole percent.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.0f%%", pct)
}
