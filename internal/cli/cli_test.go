package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/dialpad/pkg/formatter"
)

func captureOutput(t *testing.T, in string) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	SetOutput(strings.NewReader(in), out, errOut)
	t.Cleanup(func() {
		SetOutput(os.Stdin, os.Stdout, os.Stderr)
		SetGlobalFlags(false, false, false)
	})
	return out, errOut
}

func TestShowCaret(t *testing.T) {
	tests := []struct {
		text  string
		caret int
		want  string
	}{
		{"+1 (650", 7, "+1 (650|"},
		{"+1 (650", 3, "+1 |(650"},
		{"", 0, "|"},
		{"+1", -2, "|+1"},
		{"+1", 9, "+1|"},
		{"+７ 7", 2, "+７| 7"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ShowCaret(tt.text, tt.caret))
	}
}

func TestValidateRegion(t *testing.T) {
	numbers := formatter.NewPhoneNumbers()

	region, err := ValidateRegion(" gb ", numbers)
	require.NoError(t, err)
	assert.Equal(t, "GB", region)

	_, err = ValidateRegion("GBR", numbers)
	assert.ErrorContains(t, err, "invalid region")

	_, err = ValidateRegion("XX", numbers)
	assert.ErrorContains(t, err, "unsupported region: XX")
}

func TestValidateOutputFormat(t *testing.T) {
	for _, format := range []string{"text", "json", "yaml"} {
		assert.NoError(t, ValidateOutputFormat(format))
	}
	assert.ErrorContains(t, ValidateOutputFormat("xml"), "invalid output format")
}

func TestValidateLogPath(t *testing.T) {
	dir := t.TempDir()

	assert.NoError(t, ValidateLogPath(filepath.Join(dir, "dialpad.log")))
	assert.ErrorContains(t, ValidateLogPath(filepath.Join(dir, "missing", "dialpad.log")), "log directory does not exist")
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("", true)
	require.NoError(t, err)
	logger.Info("dropped")

	path := filepath.Join(t.TempDir(), "dialpad.log")
	logger, err = NewLogger(path, true)
	require.NoError(t, err)
	logger.Debug("region switched")
	_ = logger.Sync()

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "region switched")
}

func TestPrintHelpers(t *testing.T) {
	out, errOut := captureOutput(t, "")
	SetGlobalFlags(false, true, false)

	PrintSuccess("copied %s", "+16502530000")
	PrintInfo("info")
	PrintWarning("careful")
	PrintError("broken")

	assert.Equal(t, "OK: copied +16502530000\nINFO: info\n", out.String())
	assert.Equal(t, "WARNING: careful\nERROR: broken\n", errOut.String())

	out.Reset()
	SetGlobalFlags(true, true, false)
	PrintSuccess("hidden")
	PrintInfo("hidden")
	assert.Empty(t, out.String())
}

func TestConfirm(t *testing.T) {
	captureOutput(t, "yes\n")
	ok, err := Confirm("Reset?", false)
	require.NoError(t, err)
	assert.True(t, ok)

	captureOutput(t, "\n")
	ok, err = Confirm("Reset?", true)
	require.NoError(t, err)
	assert.True(t, ok)

	captureOutput(t, "n\n")
	ok, err = Confirm("Reset?", true)
	require.NoError(t, err)
	assert.False(t, ok)

	captureOutput(t, "")
	SetGlobalFlags(false, false, true)
	ok, err = Confirm("Reset?", false)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	table := NewTableFormatter(&buf)
	table.Header("REGION", "PREFIX")
	table.Row("GB", "+44")
	table.Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "REGION  PREFIX", lines[0])
	assert.Equal(t, "------  ------", lines[1])
	assert.Equal(t, "GB      +44", lines[2])
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "United...", TruncateString("United Kingdom", 9))
	assert.Equal(t, "GB", TruncateString("GB", 9))
}
