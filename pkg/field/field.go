package field

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/pluqqy/dialpad/pkg/caret"
	"github.com/pluqqy/dialpad/pkg/directory"
	"github.com/pluqqy/dialpad/pkg/edit"
	"github.com/pluqqy/dialpad/pkg/formatter"
	"github.com/pluqqy/dialpad/pkg/models"
)

// FallbackRegion is used when the configured default region is unknown.
const FallbackRegion = "US"

// fallbackPlaceholder is shown when a region has no example number.
const fallbackPlaceholder = "12345678"

// Field is a phone number input: the text, its caret and the region the text
// is formatted for. It is not safe for concurrent use.
type Field struct {
	pipeline *edit.Pipeline
	numbers  *formatter.PhoneNumbers
	settings models.FieldSettings
	logger   *zap.Logger

	text    string
	caret   int
	region  string
	editing bool
	err     error
}

// New creates an empty field. An unsupported default region falls back to
// FallbackRegion.
func New(pipeline *edit.Pipeline, numbers *formatter.PhoneNumbers, settings models.FieldSettings, logger *zap.Logger) *Field {
	if logger == nil {
		logger = zap.NewNop()
	}
	f := &Field{
		pipeline: pipeline,
		numbers:  numbers,
		settings: settings,
		logger:   logger,
		region:   strings.ToUpper(settings.DefaultRegion),
	}
	if !numbers.Supported(f.region) {
		logger.Warn("unknown default region",
			zap.String("region", settings.DefaultRegion),
			zap.String("fallback", FallbackRegion))
		f.region = FallbackRegion
	}
	return f
}

// Text returns the current buffer.
func (f *Field) Text() string { return f.text }

// Caret returns the caret as a rune offset into Text.
func (f *Field) Caret() int { return f.caret }

// Region returns the region the text is formatted for.
func (f *Field) Region() string { return f.region }

// Editing reports whether the field has focus.
func (f *Field) Editing() bool { return f.editing }

// Err returns the error of the last edit, if any.
func (f *Field) Err() error { return f.err }

// Flag returns the emoji flag of the current region.
func (f *Field) Flag() string { return directory.Flag(f.region) }

// Edit runs op through the pipeline and adopts the outcome. A rejected edit
// leaves the field untouched. On ErrInvalidRegion the last good text and
// region are kept and the error is remembered for display.
func (f *Field) Edit(op edit.Operation) (edit.Result, error) {
	result, err := f.pipeline.Apply(f.text, f.caret, op, f.region)
	if err != nil {
		f.err = err
		if errors.Is(err, edit.ErrInvalidRegion) {
			f.logger.Warn("edit kept last good region",
				zap.String("region", f.region),
				zap.Error(err))
		}
		return result, err
	}
	f.err = nil
	if result.Rejected {
		return result, nil
	}

	f.text, f.caret = result.Buffer, result.Caret
	if result.SuggestedRegion != "" && f.settings.AutoRegion {
		f.switchRegion(result.SuggestedRegion)
	}
	return result, nil
}

// Insert types s at the caret.
func (f *Field) Insert(s string) (edit.Result, error) {
	return f.Edit(edit.Insert(f.caret, s))
}

// Backspace removes the rune before the caret.
func (f *Field) Backspace() (edit.Result, error) {
	if f.caret == 0 {
		return f.unchanged(), nil
	}
	return f.Edit(edit.Delete(f.caret-1, f.caret))
}

// DeleteForward removes the rune after the caret.
func (f *Field) DeleteForward() (edit.Result, error) {
	if f.caret >= caret.RuneLen(f.text) {
		return f.unchanged(), nil
	}
	return f.Edit(edit.Delete(f.caret, f.caret+1))
}

// MoveCaret moves the caret by delta runes, clamped to the text.
func (f *Field) MoveCaret(delta int) {
	f.SetCaret(f.caret + delta)
}

// SetCaret places the caret at pos, clamped to the text.
func (f *Field) SetCaret(pos int) {
	f.caret = max(0, min(pos, caret.RuneLen(f.text)))
}

// SetText replaces the whole text with s, caret at the end. The prefix guard
// does not apply. With auto-region on, a number carrying its own country code
// switches the region before it is formatted.
func (f *Field) SetText(s string) error {
	set := f.pipeline.CharacterSet()
	raw := set.Filter(s)

	region := f.region
	if detector, ok := f.pipeline.Formatter().(edit.RegionDetector); ok && f.settings.AutoRegion {
		if detected, ok := detector.DetectRegion(raw, f.region); ok {
			region = detected
		}
	}

	text := raw
	if f.settings.Formatting && raw != "" {
		formatted, err := f.pipeline.Formatter().Format(raw, region)
		if err != nil {
			f.err = fmt.Errorf("format for region %q: %w", region, err)
			return f.err
		}
		text = formatted
	}

	f.err = nil
	f.text = text
	f.caret = caret.RuneLen(text)
	f.switchRegion(region)
	return nil
}

// SetRegion switches to region. Unknown regions return ErrInvalidRegion and
// keep the current one.
func (f *Field) SetRegion(region string) error {
	region = strings.ToUpper(strings.TrimSpace(region))
	if !f.numbers.Supported(region) {
		return fmt.Errorf("%w: %q", edit.ErrInvalidRegion, region)
	}
	f.switchRegion(region)
	return nil
}

// BeginEditing gives the field focus. With the prefix and the example
// placeholder on, an empty field is seeded with "+<code> ".
func (f *Field) BeginEditing() {
	f.editing = true
	if f.text != "" || !f.settings.WithPrefix || !f.settings.WithExamplePlaceholder {
		return
	}
	if prefix, ok := f.prefix(); ok {
		f.text = prefix + " "
		f.caret = caret.RuneLen(f.text)
	}
}

// EndEditing removes focus. Text that is only the international prefix is
// cleared so the placeholder shows again.
func (f *Field) EndEditing() {
	f.editing = false
	if !f.settings.WithPrefix || !f.settings.WithExamplePlaceholder {
		return
	}
	if prefix, ok := f.prefix(); ok && strings.TrimSpace(f.text) == prefix {
		f.text = ""
		f.caret = 0
	}
}

// Select adopts a picker entry: its key becomes the region and the text is
// reset to the bare prefix while editing, or emptied otherwise.
func (f *Field) Select(entry directory.Entry) error {
	if err := f.SetRegion(entry.Key); err != nil {
		return err
	}
	f.err = nil
	f.text = ""
	if prefix, ok := f.prefix(); ok && f.editing {
		f.text = prefix
	}
	f.caret = caret.RuneLen(f.text)
	return nil
}

// Placeholder is the example number for the current region, international
// when the prefix is on.
func (f *Field) Placeholder() string {
	if !f.settings.WithExamplePlaceholder {
		return ""
	}
	if example := f.numbers.Example(f.region, f.settings.WithPrefix); example != "" {
		return example
	}
	return fallbackPlaceholder
}

// Valid reports whether the text is a complete, valid number.
func (f *Field) Valid() bool {
	return f.numbers.Valid(f.text, f.region)
}

// E164 returns the text in E.164 form.
func (f *Field) E164() (string, error) {
	return f.numbers.E164(f.text, f.region)
}

// NationalNumber returns the national significant number, or "" when the
// text does not parse.
func (f *Field) NationalNumber() string {
	return f.numbers.NationalNumber(f.text, f.region)
}

func (f *Field) prefix() (string, bool) {
	prefix, err := f.numbers.InternationalPrefix(f.region)
	if err != nil {
		return "", false
	}
	return prefix, true
}

func (f *Field) switchRegion(region string) {
	if region == f.region {
		return
	}
	f.logger.Debug("region switched",
		zap.String("from", f.region),
		zap.String("to", region))
	f.region = region
}

func (f *Field) unchanged() edit.Result {
	return edit.Result{Buffer: f.text, Caret: f.caret, Rejected: true}
}
