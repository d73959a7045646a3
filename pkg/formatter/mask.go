package formatter

import (
	"fmt"
	"strings"
)

// Slot marks a digit position in a mask template.
const Slot = '#'

// Mask formats numbers from per-region templates such as "+# (###) ###-####".
// Literals are only written when a digit follows them, so partial input never
// ends in a dangling separator. Digits beyond the last slot are appended as
// typed; a trailing pause or operator suffix is kept verbatim.
type Mask struct {
	templates map[string]string
}

// NewMask creates a Mask from region templates. Region codes are matched
// case-insensitively.
func NewMask(templates map[string]string) *Mask {
	m := &Mask{templates: make(map[string]string, len(templates))}
	for region, tpl := range templates {
		if tpl == "" {
			continue
		}
		m.templates[strings.ToUpper(region)] = tpl
	}
	return m
}

// Template returns the template registered for region.
func (m *Mask) Template(region string) (string, bool) {
	tpl, ok := m.templates[strings.ToUpper(region)]
	return tpl, ok
}

// Format applies the region template to raw.
func (m *Mask) Format(raw, region string) (string, error) {
	tpl, ok := m.Template(region)
	if !ok {
		return "", fmt.Errorf("%w: no mask for %q", ErrInvalidRegion, region)
	}

	number, suffix := splitSuffix(raw)
	digits := digitsOf(number)
	if len(digits) == 0 {
		return number + suffix, nil
	}

	var (
		out     []rune
		pending []rune
		next    int
	)
	for _, r := range tpl {
		if next == len(digits) {
			break
		}
		if r != Slot {
			pending = append(pending, r)
			continue
		}
		out = append(out, pending...)
		pending = pending[:0]
		out = append(out, digits[next])
		next++
	}
	out = append(out, digits[next:]...)

	return string(out) + suffix, nil
}
