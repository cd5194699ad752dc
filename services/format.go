package services

import (
	"math"
	"strconv"
	"strings"
)

const (
	narrowNoBreakSpace = "\u202f"
	noBreakSpace       = "\u00a0"
)

// FormatCurrency formats a euro amount with zero decimal places using the
// grouping convention of lang.
//
//	fr: 80 000 €   (narrow no-break space groups, no-break space before the sign)
//	en: €80,000
func FormatCurrency(amount float64, lang Language) string {
	negative := false
	rounded := math.Round(amount)
	if rounded < 0 {
		negative = true
		rounded = -rounded
	}
	digits := strconv.FormatFloat(rounded, 'f', 0, 64)

	var result string
	switch lang {
	case LangEN:
		result = "€" + groupThousands(digits, ",")
	default:
		result = groupThousands(digits, narrowNoBreakSpace) + noBreakSpace + "€"
	}
	if negative {
		result = "-" + result
	}
	return result
}

// FormatPercent renders a percentage as an integer with a literal % sign.
func FormatPercent(rate float64) string {
	return strconv.FormatFloat(math.Round(rate), 'f', 0, 64) + "%"
}

// FormatNumber prints a value with no trailing zeros, e.g. 1100 or 1100.5.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// groupThousands inserts sep between every group of three digits,
// counting from the right.
func groupThousands(s, sep string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
