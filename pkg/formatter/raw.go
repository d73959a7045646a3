package formatter

import (
	"unicode"
	"unicode/utf8"

	"github.com/pluqqy/dialpad/pkg/caret"
	"github.com/pluqqy/dialpad/pkg/edit"
)

// ErrInvalidRegion is edit.ErrInvalidRegion, re-exported for callers that
// only import formatters.
var ErrInvalidRegion = edit.ErrInvalidRegion

func isPlus(r rune) bool {
	for _, p := range caret.DefaultPlus {
		if r == p {
			return true
		}
	}
	return false
}

// splitSuffix cuts raw at the first rune that is neither a digit nor a plus
// marker. The tail holds pauses, waits and operators (extensions, DTMF) and is
// never reformatted.
func splitSuffix(raw string) (number, suffix string) {
	for i, r := range raw {
		if !unicode.IsDigit(r) && !isPlus(r) {
			return raw[:i], raw[i:]
		}
	}
	return raw, ""
}

func hasPlus(number string) bool {
	r, size := utf8.DecodeRuneInString(number)
	return size > 0 && isPlus(r)
}

func digitsOf(s string) []rune {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, r)
		}
	}
	return out
}
