package brand

import (
	"fmt"
	"strconv"
	"strings"
)

// Rule pairs a brand with a predicate over normalized digits.
type Rule struct {
	Brand       Brand
	Description string
	match       func(digits string) bool
}

// Match reports whether digits satisfy the rule.
func (r Rule) Match(digits string) bool {
	return r.match(digits)
}

var eloPrefixes = []string{
	"4011", "4312", "4389", "4514", "4576",
	"5041", "5067", "5090",
	"6278", "6362", "6363",
	"650", "6516", "6550",
}

// rules is evaluated top to bottom and the first match wins.
// Visa's "4" shadows Elo's 4xxx prefixes and Discover's "65" shadows Elo's 65xx;
// that order is intentional and pinned by tests.
var rules = []Rule{
	prefixRule(Visa, "4"),
	prefixRule(AmericanExpress, "34", "37"),
	anyRule(MasterCard, rangeRule(MasterCard, 2, 51, 55), rangeRule(MasterCard, 4, 2221, 2720)),
	anyRule(Discover, prefixRule(Discover, "6011", "65"), rangeRule(Discover, 3, 644, 649)),
	prefixRule(Hipercard, "6062"),
	prefixRule(Elo, eloPrefixes...),
}

// Rules returns a copy of the rule table in evaluation order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

func prefixRule(b Brand, prefixes ...string) Rule {
	return Rule{
		Brand:       b,
		Description: "prefix " + strings.Join(prefixes, ", "),
		match: func(digits string) bool {
			for _, p := range prefixes {
				if strings.HasPrefix(digits, p) {
					return true
				}
			}
			return false
		},
	}
}

// rangeRule matches when the first n digits, read as a number, lie in [lo, hi].
// Fewer than n digits never match.
func rangeRule(b Brand, n, lo, hi int) Rule {
	return Rule{
		Brand:       b,
		Description: fmt.Sprintf("first %d digits in %d-%d", n, lo, hi),
		match: func(digits string) bool {
			v, ok := leading(digits, n)
			return ok && v >= lo && v <= hi
		},
	}
}

func anyRule(b Brand, sub ...Rule) Rule {
	desc := make([]string, 0, len(sub))
	for _, r := range sub {
		desc = append(desc, r.Description)
	}
	return Rule{
		Brand:       b,
		Description: strings.Join(desc, "; or "),
		match: func(digits string) bool {
			for _, r := range sub {
				if r.match(digits) {
					return true
				}
			}
			return false
		},
	}
}

func leading(digits string, n int) (int, bool) {
	if len(digits) < n {
		return 0, false
	}
	v, err := strconv.Atoi(digits[:n])
	if err != nil {
		return 0, false
	}
	return v, true
}
