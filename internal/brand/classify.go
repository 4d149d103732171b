package brand

import "github.com/alovak/cardbrand/internal/pan"

// Classify returns the brand of cardNumber, or Unknown when no rule matches.
// Non-digit characters are ignored. It never fails and is safe for concurrent use.
func Classify(cardNumber string) Brand {
	b, _, _ := Explain(cardNumber)
	return b
}

// Explain is Classify plus the rule that decided the result.
// ok is false when the number fell through to Unknown.
func Explain(cardNumber string) (b Brand, rule Rule, ok bool) {
	digits := pan.Digits(cardNumber)
	for _, r := range rules {
		if r.match(digits) {
			return r.Brand, r, true
		}
	}
	return Unknown, Rule{}, false
}
