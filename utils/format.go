package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatAmount renders a rupee amount the way the sales team reads it:
// crores from 1,00,00,000 up, lakhs from 1,00,000 up, otherwise a
// thousands-grouped whole number.
func FormatAmount(amount float64) string {
	switch {
	case amount >= 10000000:
		return fmt.Sprintf("₹%.2f Cr", amount/10000000)
	case amount >= 100000:
		return fmt.Sprintf("₹%.2f L", amount/100000)
	default:
		return "₹" + groupThousands(int64(math.Round(amount)))
	}
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}
