// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatMoney formats a dollar amount with comma separators and two decimals.
// e.g., 1234.5 -> "$1,234.50"
func FormatMoney(amount float64) string {
	if amount < 0 {
		return "-" + FormatMoney(-amount)
	}

	s := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(s, ".", 2)
	return "$" + groupThousands(parts[0]) + "." + parts[1]
}

// FormatPercent formats a 0-100 float as a percentage string.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.0f%%", pct)
}

// FormatCycle abbreviates a pay cadence for table columns.
// e.g., "fortnightly" -> "/fn"
func FormatCycle(cycle string) string {
	switch cycle {
	case "weekly":
		return "/wk"
	case "fortnightly":
		return "/fn"
	case "monthly":
		return "/mo"
	case "quarterly":
		return "/qtr"
	case "annually":
		return "/yr"
	default:
		return "/" + cycle
	}
}

// FormatNumber adds comma separators to an integer.
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}
	return groupThousands(strconv.FormatInt(n, 10))
}

func groupThousands(s string) string {
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
