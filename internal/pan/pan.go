package pan

import "strings"

// Digits returns the ASCII decimal digits of s in their original order.
// Separators and every other character, including non-ASCII digits, are dropped.
func Digits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// LastN returns the last n bytes of s, or s itself when it is shorter.
func LastN(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

// Mask hides the middle of a card number for display.
// 10+ digits keep BIN(6) and last 4; 5..9 keep only the last 4; shorter ones are fully masked.
func Mask(s string) string {
	cleaned := Digits(s)
	n := len(cleaned)
	if n == 0 {
		return ""
	}
	if n <= 4 {
		return strings.Repeat("*", n)
	}
	if n < 10 {
		return strings.Repeat("*", n-4) + LastN(cleaned, 4)
	}
	return cleaned[:6] + strings.Repeat("*", n-10) + LastN(cleaned, 4)
}
