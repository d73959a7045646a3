package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pluqqy/dialpad/pkg/formatter"
)

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	switch OutputFormat(format) {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ValidateRegion validates a region flag against libphonenumber metadata
func ValidateRegion(region string, numbers *formatter.PhoneNumbers) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(region))
	if len(normalized) != 2 {
		return "", fmt.Errorf("invalid region: %q (must be a two-letter code such as US)", region)
	}
	if !numbers.Supported(normalized) {
		return "", fmt.Errorf("unsupported region: %s", normalized)
	}
	return normalized, nil
}

// ValidateLogPath checks that the directory of a log file exists
func ValidateLogPath(path string) error {
	dir := filepath.Dir(path)
	if !filepath.IsAbs(dir) {
		dir, _ = filepath.Abs(dir)
	}

	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("log directory does not exist: %s", dir)
		}
		return fmt.Errorf("error accessing log directory: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("log path parent is not a directory: %s", dir)
	}

	return nil
}
