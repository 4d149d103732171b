// Package brand identifies the card network of a card number from its leading digits.
package brand

import "github.com/gosimple/slug"

// Brand is a card network. The zero value is Unknown.
type Brand int

const (
	Unknown Brand = iota
	Visa
	MasterCard
	AmericanExpress
	Discover
	Hipercard
	Elo
)

// UnknownLabel is the label returned for numbers no rule recognises.
const UnknownLabel = "Bandeira desconhecida"

var labels = map[Brand]string{
	Visa:            "Visa",
	MasterCard:      "MasterCard",
	AmericanExpress: "American Express",
	Discover:        "Discover",
	Hipercard:       "Hipercard",
	Elo:             "Elo",
}

// All lists every value Classify can return.
func All() []Brand {
	return []Brand{Visa, MasterCard, AmericanExpress, Discover, Hipercard, Elo, Unknown}
}

func (b Brand) String() string {
	if l, ok := labels[b]; ok {
		return l
	}
	return UnknownLabel
}

// Key returns a stable lowercase identifier, e.g. "american-express".
func (b Brand) Key() string {
	l, ok := labels[b]
	if !ok {
		return "unknown"
	}
	return slug.Make(l)
}
