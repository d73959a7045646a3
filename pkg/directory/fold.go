package directory

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldDiacritics strips combining marks: "Åland" becomes "Aland".
func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// groupOf is the group letter of a display name: its first rune with
// diacritics removed. Case is kept as the name has it.
func groupOf(primary string) string {
	folded := foldDiacritics(primary)
	r, size := utf8.DecodeRuneInString(folded)
	if size == 0 {
		return ""
	}
	return string(r)
}

func foldCase(s string) string {
	return cases.Fold().String(s)
}
