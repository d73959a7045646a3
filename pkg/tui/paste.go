package tui

import (
	"regexp"
	"strings"
)

// PasteCleaner strips the decoration phone numbers usually carry when copied
// from web pages, contact cards or terminals.
type PasteCleaner struct {
	telURIPattern    *regexp.Regexp
	labelPattern     *regexp.Regexp
	extensionPattern *regexp.Regexp
	tuiBorderPattern *regexp.Regexp
}

// NewPasteCleaner creates a cleaner with compiled patterns
func NewPasteCleaner() *PasteCleaner {
	return &PasteCleaner{
		// tel:+1-650-253-0000 and tel://...
		telURIPattern: regexp.MustCompile(`(?i)^tel:(//)?`),
		// "Phone: ", "Tel. ", "Mobile - "
		labelPattern: regexp.MustCompile(`(?i)^(phone|tel|mobile|cell|fax)\.?\s*[:\-]?\s*`),
		// " ext. 12", " x12", ";ext=12"
		extensionPattern: regexp.MustCompile(`(?i)(\s*(ext\.?|extension|x)\s*\d+|;ext=\d+)$`),
		tuiBorderPattern: regexp.MustCompile(`^[│├└┌┐┘┤┬┴┼─]+\s*|\s*[│├└┌┐┘┤┬┴┼─]+$`),
	}
}

// Clean returns the first non-empty line of content without URI scheme,
// label, extension or box-drawing borders.
func (pc *PasteCleaner) Clean(content string) string {
	line := ""
	for _, l := range strings.Split(content, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			line = l
			break
		}
	}

	line = pc.tuiBorderPattern.ReplaceAllString(line, "")
	line = pc.telURIPattern.ReplaceAllString(line, "")
	line = pc.labelPattern.ReplaceAllString(line, "")
	line = pc.extensionPattern.ReplaceAllString(line, "")
	return strings.TrimSpace(line)
}
