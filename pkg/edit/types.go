package edit

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	// ErrInvalidRange is returned for operations whose range falls outside
	// the buffer or runs backwards.
	ErrInvalidRange = errors.New("invalid edit range")

	// ErrInvalidRegion is returned when the formatter does not recognise the
	// region. Callers keep their last known-good region.
	ErrInvalidRegion = errors.New("invalid region")
)

// Operation replaces the runes in [Start, End) with Text. Offsets are rune
// indices into the buffer the operation is applied to.
type Operation struct {
	Start int
	End   int
	Text  string
}

// Insert returns an operation inserting text at offset.
func Insert(offset int, text string) Operation {
	return Operation{Start: offset, End: offset, Text: text}
}

// Delete returns an operation removing [start, end).
func Delete(start, end int) Operation {
	return Operation{Start: start, End: end}
}

// Replace returns an operation replacing [start, end) with text.
func Replace(start, end int, text string) Operation {
	return Operation{Start: start, End: end, Text: text}
}

// Len is the number of runes the operation removes.
func (o Operation) Len() int {
	return o.End - o.Start
}

// Empty reports whether the operation removes nothing.
func (o Operation) Empty() bool {
	return o.Start == o.End
}

// Validate checks the operation against a buffer of length runes.
func (o Operation) Validate(length int) error {
	if o.Start < 0 || o.Start > o.End || o.End > length {
		return fmt.Errorf("%w: [%d, %d) over %d runes", ErrInvalidRange, o.Start, o.End, length)
	}
	return nil
}

// Apply returns buffer with the operation applied naively, together with the
// caret the edit implies (right after the inserted text) and the removed
// runes.
func (o Operation) Apply(buffer string) (edited string, caret int, removed string, err error) {
	runes := []rune(buffer)
	if err := o.Validate(len(runes)); err != nil {
		return "", 0, "", err
	}
	text := []rune(o.Text)

	out := make([]rune, 0, len(runes)-o.Len()+len(text))
	out = append(out, runes[:o.Start]...)
	out = append(out, text...)
	out = append(out, runes[o.End:]...)

	return string(out), o.Start + len(text), string(runes[o.Start:o.End]), nil
}

// Result is the outcome of one pipeline run.
//
// Accepted means the caller should apply the raw edit itself. Otherwise the
// caller adopts Buffer and Caret as authoritative. A rejected edit returns the
// untouched buffer and caret with Rejected set.
type Result struct {
	Buffer          string
	Caret           int
	Accepted        bool
	Rejected        bool
	SuggestedRegion string
}

// Formatter canonicalises a raw stream for a region. It must be pure for a
// fixed input and may only insert or remove separators and a leading prefix
// marker: the relative order of digits is preserved.
type Formatter interface {
	Format(raw, region string) (string, error)
}

// FormatterFunc adapts a function to Formatter.
type FormatterFunc func(raw, region string) (string, error)

// Format calls f.
func (f FormatterFunc) Format(raw, region string) (string, error) {
	return f(raw, region)
}

// PrefixResolver is implemented by formatters that know the international
// prefix ("+" and the country code) of a region.
type PrefixResolver interface {
	InternationalPrefix(region string) (string, error)
}

// RegionDetector is implemented by formatters that can recognise the region a
// raw stream belongs to. It reports false when nothing was recognised.
type RegionDetector interface {
	DetectRegion(raw, region string) (string, bool)
}

// InterceptFunc lets the host veto an edit before the pipeline runs. Returning
// false rejects the edit.
type InterceptFunc func(buffer string, op Operation) bool

func isBlank(s string) bool {
	return strings.TrimFunc(s, unicode.IsSpace) == ""
}
