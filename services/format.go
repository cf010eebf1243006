package services

import (
	"fmt"
	"strings"
)

// FormatINR formats an amount in Indian Rupee notation with exactly two
// decimal places. The Indian numbering system groups the rightmost three
// digits together and every two digits after that (₹12,34,567.00).
func FormatINR(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)
	dot := strings.IndexByte(raw, '.')
	intPart, decPart := raw[:dot], raw[dot+1:]

	grouped := "₹" + groupIndianDigits(intPart) + "." + decPart
	if negative {
		return "-" + grouped
	}
	return grouped
}

// groupIndianDigits inserts commas per the Indian numbering system.
func groupIndianDigits(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	groups := []string{digits[len(digits)-3:]}
	rest := digits[:len(digits)-3]
	for len(rest) > 2 {
		groups = append(groups, rest[len(rest)-2:])
		rest = rest[:len(rest)-2]
	}
	if rest != "" {
		groups = append(groups, rest)
	}
	for i, j := 0, len(groups)-1; i < j; i, j = i+1, j-1 {
		groups[i], groups[j] = groups[j], groups[i]
	}
	return strings.Join(groups, ",")
}
