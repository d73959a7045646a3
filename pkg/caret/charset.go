package caret

import "unicode"

// Marker defaults recognised by libphonenumber.
const (
	DefaultPlus      = "+＋"
	DefaultPauses    = ",;"
	DefaultOperators = "*#"
)

// CharacterSet is the set of runes that survive reformatting: decimal digits
// plus the configured plus, pause/wait and operator markers. Everything else
// is a formatting artifact the formatter may insert or remove freely.
type CharacterSet struct {
	markers map[rune]struct{}
	plus    map[rune]struct{}
}

// NewCharacterSet builds a set from marker strings. Every rune of every
// argument is treated as a marker.
func NewCharacterSet(plus, pauses, operators string) CharacterSet {
	markers := make(map[rune]struct{})
	for _, group := range []string{plus, pauses, operators} {
		for _, r := range group {
			markers[r] = struct{}{}
		}
	}
	plusSet := make(map[rune]struct{})
	for _, r := range plus {
		plusSet[r] = struct{}{}
	}
	return CharacterSet{markers: markers, plus: plusSet}
}

// DefaultCharacterSet returns the set used when no markers are configured.
func DefaultCharacterSet() CharacterSet {
	return NewCharacterSet(DefaultPlus, DefaultPauses, DefaultOperators)
}

// Contains reports whether r is never stripped by the edit pipeline.
func (s CharacterSet) Contains(r rune) bool {
	if unicode.IsDigit(r) {
		return true
	}
	_, ok := s.markers[r]
	return ok
}

// IsPlus reports whether r is one of the plus markers.
func (s CharacterSet) IsPlus(r rune) bool {
	_, ok := s.plus[r]
	return ok
}

// ContainsAll reports whether every rune of text is in the set.
func (s CharacterSet) ContainsAll(text string) bool {
	for _, r := range text {
		if !s.Contains(r) {
			return false
		}
	}
	return true
}

// HasSeparator reports whether text has at least one rune outside the set.
func (s CharacterSet) HasSeparator(text string) bool {
	return !s.ContainsAll(text)
}

// Filter returns the raw stream of text: only the runes in the set, in order.
func (s CharacterSet) Filter(text string) string {
	out := make([]rune, 0, len(text))
	for _, r := range text {
		if s.Contains(r) {
			out = append(out, r)
		}
	}
	return string(out)
}
