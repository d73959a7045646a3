package edit

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/pluqqy/dialpad/pkg/caret"
)

// Pipeline runs one character-level edit through filtering, formatting and
// caret remapping. It holds no state between calls and is safe to share, but
// calls for one logical field must be serialised by the caller because each
// result feeds the region the next call is made with.
type Pipeline struct {
	formatter   Formatter
	set         caret.CharacterSet
	intercept   InterceptFunc
	maxDigits   int
	formatting  bool
	prefixGuard bool
	logger      *zap.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithCharacterSet replaces the default allowed character set.
func WithCharacterSet(set caret.CharacterSet) Option {
	return func(p *Pipeline) {
		p.set = set
	}
}

// WithIntercept installs a host pre-check that runs before anything else.
func WithIntercept(fn InterceptFunc) Option {
	return func(p *Pipeline) {
		p.intercept = fn
	}
}

// WithMaxDigits rejects edits that would leave more than n digits in the
// national number. The calling code of a leading "+<code>" is not counted.
// Zero disables the limit.
func WithMaxDigits(n int) Option {
	return func(p *Pipeline) {
		p.maxDigits = n
	}
}

// WithFormatting toggles reformatting. With formatting off every valid edit
// is accepted verbatim.
func WithFormatting(enabled bool) Option {
	return func(p *Pipeline) {
		p.formatting = enabled
	}
}

// WithPrefixGuard toggles the rejection of edits that leave the text shorter
// than the region's "+<code>" prefix. Turn it off when the prefix is not
// mandatory, so national numbers can be typed into an empty buffer.
func WithPrefixGuard(enabled bool) Option {
	return func(p *Pipeline) {
		p.prefixGuard = enabled
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New creates a pipeline around formatter.
func New(formatter Formatter, opts ...Option) *Pipeline {
	p := &Pipeline{
		formatter:  formatter,
		set:         caret.DefaultCharacterSet(),
		formatting:  true,
		prefixGuard: true,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// CharacterSet returns the set of runes the pipeline never strips.
func (p *Pipeline) CharacterSet() caret.CharacterSet {
	return p.set
}

// Formatter returns the formatter the pipeline canonicalises with.
func (p *Pipeline) Formatter() Formatter {
	return p.formatter
}

// Apply runs op against buffer, whose caret currently sits at caretPos, and
// formats the outcome for region.
//
// Formatter failures are returned wrapped; ErrInvalidRegion can be matched
// with errors.Is. A rejected edit is not an error.
func (p *Pipeline) Apply(buffer string, caretPos int, op Operation, region string) (Result, error) {
	edited, implied, removed, err := op.Apply(buffer)
	if err != nil {
		return Result{}, err
	}

	if p.intercept != nil && !p.intercept(buffer, op) {
		return p.reject(buffer, caretPos, op, "intercepted"), nil
	}

	// Autofill inserts blank text at an empty range and fixes it up later.
	if op.Empty() && isBlank(op.Text) {
		if op.Text == "" {
			implied = caretPos
		}
		return Result{Buffer: edited, Caret: implied, Accepted: true}, nil
	}
	if !p.formatting {
		return Result{Buffer: edited, Caret: implied, Accepted: true}, nil
	}

	if p.prefixGuard && p.shrinksBelowPrefix(buffer, edited, region) {
		return p.reject(buffer, caretPos, op, "shorter than international prefix"), nil
	}

	raw := p.set.Filter(edited)
	if p.maxDigits > 0 && p.nationalDigits(raw, region) > p.maxDigits {
		return p.reject(buffer, caretPos, op, "digit limit"), nil
	}

	// Deleting a single separator keeps the edited text as is, otherwise the
	// formatter would put the separator straight back.
	if op.Len() == 1 && op.Text == "" && p.set.HasSeparator(removed) {
		anchor, found := caret.Extract(buffer, caretPos, p.set)
		return Result{Buffer: edited, Caret: caret.Place(edited, anchor, found)}, nil
	}

	anchor, found := caret.Extract(edited, implied, p.set)

	canonical, err := p.formatter.Format(raw, region)
	if err != nil {
		p.logger.Warn("format failed",
			zap.String("region", region),
			zap.Int("raw_len", caret.RuneLen(raw)),
			zap.Error(err))
		return Result{}, fmt.Errorf("format for region %q: %w", region, err)
	}

	result := Result{
		Buffer: canonical,
		Caret:  caret.Place(canonical, anchor, found),
	}

	if detector, ok := p.formatter.(RegionDetector); ok {
		if detected, ok := detector.DetectRegion(raw, region); ok && detected != region {
			result.SuggestedRegion = detected
			p.logger.Debug("region recognised",
				zap.String("from", region),
				zap.String("to", detected))
		}
	}

	return result, nil
}

// shrinksBelowPrefix reports whether an edit removes text and leaves less
// than the "+<code>" prefix of region. Growing a short buffer is allowed.
func (p *Pipeline) shrinksBelowPrefix(buffer, edited, region string) bool {
	prefix, ok := p.prefix(region)
	if !ok {
		return false
	}
	n := caret.RuneLen(edited)
	return n < caret.RuneLen(buffer) && n < caret.RuneLen(prefix)
}

func (p *Pipeline) prefix(region string) (string, bool) {
	resolver, ok := p.formatter.(PrefixResolver)
	if !ok {
		return "", false
	}
	prefix, err := resolver.InternationalPrefix(region)
	if err != nil {
		return "", false
	}
	return prefix, true
}

func (p *Pipeline) reject(buffer string, caretPos int, op Operation, reason string) Result {
	p.logger.Debug("edit rejected",
		zap.String("reason", reason),
		zap.Int("start", op.Start),
		zap.Int("end", op.End),
		zap.Int("text_len", caret.RuneLen(op.Text)))
	return Result{Buffer: buffer, Caret: caretPos, Rejected: true}
}

// nationalDigits counts the digits of raw after the calling code of a
// leading "+<code>". The code is the one of the region raw belongs to, which
// may differ from region while a foreign number is being typed.
func (p *Pipeline) nationalDigits(raw, region string) int {
	digits := countDigits(raw)
	first, _ := utf8.DecodeRuneInString(raw)
	if !p.set.IsPlus(first) {
		return digits
	}
	if detector, ok := p.formatter.(RegionDetector); ok {
		if detected, ok := detector.DetectRegion(raw, region); ok {
			region = detected
		}
	}
	prefix, ok := p.prefix(region)
	if !ok {
		return digits
	}
	code := digitsOf(prefix)
	if strings.HasPrefix(digitsOf(raw), code) {
		return digits - len(code)
	}
	return digits
}

func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}
