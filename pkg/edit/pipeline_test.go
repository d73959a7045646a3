package edit

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pluqqy/dialpad/pkg/caret"
)

// usFormatter groups digits as "+1 555-123-4567" and knows the US prefix and
// the +44 calling code. It stands in for a real formatter.
type usFormatter struct{}

func (usFormatter) Format(raw, region string) (string, error) {
	if region != "US" && region != "GB" {
		return "", fmt.Errorf("%w: %s", ErrInvalidRegion, region)
	}
	var digits []rune
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) == 0 {
		return "", nil
	}
	var b strings.Builder
	b.WriteRune('+')
	for i, d := range digits {
		switch i {
		case 1:
			b.WriteRune(' ')
		case 4, 7:
			b.WriteRune('-')
		}
		b.WriteRune(d)
	}
	return b.String(), nil
}

func (usFormatter) InternationalPrefix(region string) (string, error) {
	switch region {
	case "US":
		return "+1", nil
	case "GB":
		return "+44", nil
	}
	return "", ErrInvalidRegion
}

func (usFormatter) DetectRegion(raw, region string) (string, bool) {
	if strings.HasPrefix(raw, "+44") {
		return "GB", true
	}
	if strings.HasPrefix(raw, "+1") {
		return "US", true
	}
	return "", false
}

func TestApplyInsertAtEnd(t *testing.T) {
	p := New(usFormatter{})

	res, err := p.Apply("+1 555", 6, Insert(6, "1"), "US")
	require.NoError(t, err)
	assert.Equal(t, "+1 555-1", res.Buffer)
	assert.Equal(t, 8, res.Caret, "no anchor after the caret puts it at the end")
	assert.False(t, res.Accepted)
	assert.False(t, res.Rejected)
	assert.Empty(t, res.SuggestedRegion)
}

func TestApplyDeleteMiddleDigit(t *testing.T) {
	// "+1 (555) 123-4567": the caret sits between 2 and 3.
	p := New(FormatterFunc(func(raw, region string) (string, error) {
		return usFormatter{}.Format(raw, region)
	}))

	res, err := p.Apply("+1 (555) 123-4567", 11, Delete(10, 11), "US")
	require.NoError(t, err)
	assert.Equal(t, "+1 555-134-567", res.Buffer)
	assert.Equal(t, "3", string([]rune(res.Buffer)[res.Caret]), "caret lands right before the surviving 3")
	assert.Equal(t, 8, res.Caret)
}

func TestApplyInsertMiddle(t *testing.T) {
	p := New(usFormatter{})

	// Typing 9 between the first two 5s of "+1 555-1".
	res, err := p.Apply("+1 555-1", 4, Insert(4, "9"), "US")
	require.NoError(t, err)
	assert.Equal(t, "+1 595-51", res.Buffer)
	assert.Equal(t, 5, res.Caret, "caret stays in front of the 5 that followed it")
}

func TestApplySeparatorBackspace(t *testing.T) {
	p := New(usFormatter{})

	// Backspace right after the dash of "+1 555-123".
	res, err := p.Apply("+1 555-123", 7, Delete(6, 7), "US")
	require.NoError(t, err)
	assert.Equal(t, "+1 555123", res.Buffer, "separator deletion is kept without reformatting")
	assert.Equal(t, 6, res.Caret)
	assert.False(t, res.Accepted)
}

func TestApplyNoOpAllowance(t *testing.T) {
	p := New(usFormatter{})

	tests := []struct {
		name       string
		buffer     string
		caret      int
		op         Operation
		wantBuffer string
		wantCaret  int
	}{
		{name: "empty edit", buffer: "+1 555", caret: 4, op: Insert(4, ""), wantBuffer: "+1 555", wantCaret: 4},
		{name: "empty edit away from caret", buffer: "+1 555", caret: 2, op: Insert(5, ""), wantBuffer: "+1 555", wantCaret: 2},
		{name: "blank insert", buffer: "+1 555", caret: 0, op: Insert(0, " "), wantBuffer: " +1 555", wantCaret: 1},
		{name: "tab insert", buffer: "", caret: 0, op: Insert(0, "\t"), wantBuffer: "\t", wantCaret: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := p.Apply(tt.buffer, tt.caret, tt.op, "US")
			require.NoError(t, err)
			assert.True(t, res.Accepted)
			assert.Equal(t, tt.wantBuffer, res.Buffer)
			assert.Equal(t, tt.wantCaret, res.Caret)
		})
	}
}

func TestApplyNoOpIsIdempotent(t *testing.T) {
	p := New(usFormatter{})
	buffer, pos := "+1 555-123", 5

	for i := 0; i < 2; i++ {
		res, err := p.Apply(buffer, pos, Insert(pos, ""), "US")
		require.NoError(t, err)
		assert.Equal(t, "+1 555-123", res.Buffer)
		assert.Equal(t, 5, res.Caret)
		buffer, pos = res.Buffer, res.Caret
	}
}

func TestApplyRejectsBelowPrefix(t *testing.T) {
	p := New(usFormatter{})

	res, err := p.Apply("+1", 2, Delete(1, 2), "US")
	require.NoError(t, err)
	assert.True(t, res.Rejected)
	assert.False(t, res.Accepted)
	assert.Equal(t, "+1", res.Buffer)
	assert.Equal(t, 2, res.Caret)

	res, err = p.Apply("+44", 3, Delete(2, 3), "GB")
	require.NoError(t, err)
	assert.True(t, res.Rejected)
}

func TestApplyUnknownPrefixSkipsGuard(t *testing.T) {
	p := New(FormatterFunc(func(raw, region string) (string, error) { return raw, nil }))

	res, err := p.Apply("+1", 2, Delete(1, 2), "US")
	require.NoError(t, err)
	assert.False(t, res.Rejected)
	assert.Equal(t, "+", res.Buffer)
}

func TestApplyInvalidRegion(t *testing.T) {
	p := New(usFormatter{})

	_, err := p.Apply("+1 555", 6, Insert(6, "1"), "ZZ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRegion))
}

func TestApplyInvalidRange(t *testing.T) {
	p := New(usFormatter{})

	for _, op := range []Operation{
		{Start: -1, End: 0},
		{Start: 3, End: 2},
		{Start: 0, End: 7},
	} {
		_, err := p.Apply("+1 555", 0, op, "US")
		assert.ErrorIs(t, err, ErrInvalidRange)
	}
}

func TestApplyStripsDisallowedCharacters(t *testing.T) {
	p := New(usFormatter{})

	res, err := p.Apply("+1 555", 6, Insert(6, "abc1x2"), "US")
	require.NoError(t, err)
	assert.Equal(t, "+1 555-12", res.Buffer)
	assert.Equal(t, caret.RuneLen(res.Buffer), res.Caret)
}

func TestApplyPasteReplacesSelection(t *testing.T) {
	p := New(usFormatter{})

	res, err := p.Apply("+1 555-123", 3, Replace(3, 6, "(800)"), "US")
	require.NoError(t, err)
	assert.Equal(t, "+1 800-123", res.Buffer)
	assert.Equal(t, 7, res.Caret, "caret stays before the 1 that followed the selection")
}

func TestApplySuggestsRegion(t *testing.T) {
	p := New(usFormatter{})

	res, err := p.Apply("+4", 2, Insert(2, "4"), "US")
	require.NoError(t, err)
	assert.Equal(t, "GB", res.SuggestedRegion)

	res, err = p.Apply("+1", 2, Insert(2, "5"), "US")
	require.NoError(t, err)
	assert.Empty(t, res.SuggestedRegion, "same region is not a suggestion")
}

func TestApplyIntercept(t *testing.T) {
	var seen []Operation
	p := New(usFormatter{}, WithIntercept(func(buffer string, op Operation) bool {
		seen = append(seen, op)
		return op.Text != "7"
	}))

	res, err := p.Apply("+1 555", 6, Insert(6, "7"), "US")
	require.NoError(t, err)
	assert.True(t, res.Rejected)
	assert.Equal(t, "+1 555", res.Buffer)

	res, err = p.Apply("+1 555", 6, Insert(6, "8"), "US")
	require.NoError(t, err)
	assert.False(t, res.Rejected)
	assert.Len(t, seen, 2)
}

func TestApplyMaxDigits(t *testing.T) {
	p := New(usFormatter{}, WithMaxDigits(3))

	res, err := p.Apply("+1 555", 6, Insert(6, "1"), "US")
	require.NoError(t, err)
	assert.True(t, res.Rejected)

	res, err = p.Apply("+1 55", 5, Insert(5, "5"), "US")
	require.NoError(t, err)
	assert.False(t, res.Rejected)
}

func TestApplyMaxDigitsCountsNationalNumber(t *testing.T) {
	p := New(usFormatter{}, WithMaxDigits(10))

	// The calling code does not count towards the limit.
	res, err := p.Apply("+1 650-253-000", 14, Insert(14, "0"), "US")
	require.NoError(t, err)
	assert.False(t, res.Rejected)
	assert.Equal(t, "+1 650-253-0000", res.Buffer)

	res, err = p.Apply(res.Buffer, res.Caret, Insert(res.Caret, "1"), "US")
	require.NoError(t, err)
	assert.True(t, res.Rejected)

	// A foreign calling code being typed is not counted either.
	res, err = p.Apply("+4 420-794-6000", 15, Insert(15, "0"), "US")
	require.NoError(t, err)
	assert.False(t, res.Rejected)

	// Without a leading plus every digit is national.
	p = New(FormatterFunc(func(raw, region string) (string, error) { return raw, nil }), WithMaxDigits(3))
	res, err = p.Apply("123", 3, Insert(3, "4"), "US")
	require.NoError(t, err)
	assert.True(t, res.Rejected)
}

func TestApplyGrowingShortBufferPassesGuard(t *testing.T) {
	p := New(usFormatter{})

	res, err := p.Apply("", 0, Insert(0, "5"), "US")
	require.NoError(t, err)
	assert.False(t, res.Rejected)
	assert.Equal(t, "+5", res.Buffer)
}

func TestApplyPrefixGuardDisabled(t *testing.T) {
	p := New(usFormatter{}, WithPrefixGuard(false))

	res, err := p.Apply("+1", 2, Delete(1, 2), "US")
	require.NoError(t, err)
	assert.False(t, res.Rejected)
	assert.Equal(t, "", res.Buffer)
	assert.Equal(t, 0, res.Caret)
}

func TestApplyFormattingDisabled(t *testing.T) {
	p := New(usFormatter{}, WithFormatting(false))

	res, err := p.Apply("+1 555", 6, Insert(6, "x"), "US")
	require.NoError(t, err)
	assert.True(t, res.Accepted)
	assert.Equal(t, "+1 555x", res.Buffer)
	assert.Equal(t, 7, res.Caret)
}

func TestApplyCustomCharacterSet(t *testing.T) {
	// Without operators '#' becomes a separator and is dropped.
	p := New(usFormatter{}, WithCharacterSet(caret.NewCharacterSet("+", "", "")))
	assert.False(t, p.CharacterSet().Contains('#'))

	res, err := p.Apply("+1 555", 6, Insert(6, "#"), "US")
	require.NoError(t, err)
	assert.Equal(t, "+1 555", res.Buffer)
}

func TestApplyDigitsSurviveTyping(t *testing.T) {
	p := New(usFormatter{})
	set := p.CharacterSet()

	buffer, pos := "+1", 2
	typed := "5551234567"
	for _, r := range typed {
		res, err := p.Apply(buffer, pos, Insert(pos, string(r)), "US")
		require.NoError(t, err)
		buffer, pos = res.Buffer, res.Caret
	}
	assert.Equal(t, "+1 555-123-4567", buffer)
	assert.Equal(t, "+1"+typed, set.Filter(buffer))
	assert.Equal(t, caret.RuneLen(buffer), pos)
}

func TestApplyLogsRejections(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	p := New(usFormatter{}, WithLogger(zap.New(core)))

	_, err := p.Apply("+1", 2, Delete(1, 2), "US")
	require.NoError(t, err)
	_, err = p.Apply("+1", 2, Insert(2, "2"), "ZZ")
	require.Error(t, err)

	assert.Equal(t, 1, logs.FilterMessage("edit rejected").Len())
	assert.Equal(t, 1, logs.FilterMessage("format failed").Len())
}

func TestOperationApply(t *testing.T) {
	edited, implied, removed, err := Replace(1, 3, "xyz").Apply("aébc")
	require.NoError(t, err)
	assert.Equal(t, "axyzc", edited)
	assert.Equal(t, 4, implied)
	assert.Equal(t, "éb", removed)

	assert.Equal(t, 2, Delete(1, 3).Len())
	assert.True(t, Insert(2, "a").Empty())
}
