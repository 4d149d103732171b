package brand

import "golang.org/x/text/language"

// first tag is the fallback
var (
	labelLangs    = []language.Tag{language.BrazilianPortuguese, language.English}
	labelMatcher  = language.NewMatcher(labelLangs)
	unknownByLang = []string{UnknownLabel, "Unknown brand"}
)

// Label renders b for a BCP 47 language such as "pt-BR" or "en-US".
// Brand names are proper nouns and never change; only Unknown is translated.
// Unrecognised or empty languages fall back to Portuguese.
func Label(b Brand, lang string) string {
	if b != Unknown {
		return b.String()
	}
	_, idx := language.MatchStrings(labelMatcher, lang)
	return unknownByLang[idx]
}
