package directory

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/pluqqy/dialpad/pkg/formatter"
)

// flagBase is the distance from 'A' to REGIONAL INDICATOR SYMBOL LETTER A.
const flagBase = 0x1F1E6 - 'A'

// Flag returns the emoji flag of a two-letter region code, or "" when the
// code is not two ASCII letters.
func Flag(code string) string {
	if len(code) != 2 {
		return ""
	}
	code = strings.ToUpper(code)
	out := make([]rune, 0, 2)
	for i := 0; i < len(code); i++ {
		c := code[i]
		if c < 'A' || c > 'Z' {
			return ""
		}
		out = append(out, rune(c)+flagBase)
	}
	return string(out)
}

// Regions builds the static source list of every region libphonenumber
// supports: key is the region code, primary the display name in locale and
// secondary the dial prefix. Regions without a display name or flag are left
// out.
func Regions(locale language.Tag, numbers *formatter.PhoneNumbers) []Entry {
	namer := display.Regions(locale)
	if namer == nil {
		namer = display.Regions(language.English)
	}

	var entries []Entry
	for _, code := range numbers.Regions() {
		region, err := language.ParseRegion(code)
		if err != nil {
			continue
		}
		name := namer.Name(region)
		if name == "" || Flag(code) == "" {
			continue
		}
		calling := numbers.CountryCode(code)
		if calling == 0 {
			continue
		}
		entries = append(entries, Entry{
			Key:       code,
			Primary:   name,
			Secondary: "+" + strconv.Itoa(calling),
		})
	}
	return entries
}
