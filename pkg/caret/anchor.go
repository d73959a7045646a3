package caret

import "unicode/utf8"

// Anchor is a position-independent description of where a caret sits: the
// first allowed rune at or after the caret and how many equal runes follow it
// up to the end of the text, the anchor itself included.
//
// Indices are meaningless once a formatter rewrites the text. The occurrence
// count is not, as long as the formatter keeps allowed runes in order.
type Anchor struct {
	Char               rune
	OccurrencesFromEnd int
}

// Extract captures the anchor for caret in text. It reports false when no
// allowed rune exists at or after the caret; the caller then places the caret
// at the end of the reformatted text.
func Extract(text string, caret int, set CharacterSet) (Anchor, bool) {
	runes := []rune(text)
	caret = clamp(caret, 0, len(runes))

	for i := caret; i < len(runes); i++ {
		if !set.Contains(runes[i]) {
			continue
		}
		count := 0
		for _, r := range runes[i:] {
			if r == runes[i] {
				count++
			}
		}
		return Anchor{Char: runes[i], OccurrencesFromEnd: count}, true
	}
	return Anchor{}, false
}

// Remap finds the offset in text that corresponds to anchor. The text is
// scanned backward and the caret lands immediately before the rune whose
// occurrence count from the end matches. It reports false when text holds
// fewer matching runes than the anchor expects.
func Remap(text string, anchor Anchor) (int, bool) {
	if anchor.OccurrencesFromEnd < 1 {
		return 0, false
	}
	runes := []rune(text)
	seen := 0
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] != anchor.Char {
			continue
		}
		seen++
		if seen == anchor.OccurrencesFromEnd {
			return i, true
		}
	}
	return 0, false
}

// Place resolves the final caret for text. A missing anchor (ok false) or an
// unresolvable one both fall back to the end of text.
func Place(text string, anchor Anchor, ok bool) int {
	end := RuneLen(text)
	if !ok {
		return end
	}
	if offset, found := Remap(text, anchor); found {
		return offset
	}
	return end
}

// RuneLen is the caret-space length of text.
func RuneLen(text string) int {
	return utf8.RuneCountInString(text)
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
