package formatter

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const unknownRegion = "ZZ"

// PhoneNumbers formats partial input with libphonenumber metadata.
//
// International input (leading plus) is formatted INTERNATIONAL and national
// input NATIONAL whenever libphonenumber parses it and the output keeps the
// typed digits in order. Otherwise the country code is split off with a single
// space, or the digits are returned as typed.
type PhoneNumbers struct{}

// NewPhoneNumbers returns the libphonenumber-backed formatter.
func NewPhoneNumbers() *PhoneNumbers {
	return &PhoneNumbers{}
}

// CountryCode returns the calling code of region, or 0 if it is unknown.
func (f *PhoneNumbers) CountryCode(region string) int {
	return phonenumbers.GetCountryCodeForRegion(strings.ToUpper(region))
}

// Supported reports whether region has metadata.
func (f *PhoneNumbers) Supported(region string) bool {
	return f.CountryCode(region) != 0
}

// Regions lists every supported region code in ascending order.
func (f *PhoneNumbers) Regions() []string {
	supported := phonenumbers.GetSupportedRegions()
	regions := make([]string, 0, len(supported))
	for region := range supported {
		regions = append(regions, region)
	}
	sort.Strings(regions)
	return regions
}

// InternationalPrefix returns "+" followed by the calling code of region.
func (f *PhoneNumbers) InternationalPrefix(region string) (string, error) {
	code := f.CountryCode(region)
	if code == 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidRegion, region)
	}
	return "+" + strconv.Itoa(code), nil
}

// Format canonicalises raw for region.
func (f *PhoneNumbers) Format(raw, region string) (string, error) {
	region = strings.ToUpper(region)
	if !f.Supported(region) {
		return "", fmt.Errorf("%w: %q", ErrInvalidRegion, region)
	}

	number, suffix := splitSuffix(raw)
	digits := string(digitsOf(number))

	if !hasPlus(number) {
		if formatted, ok := formatPreserving(digits, region, phonenumbers.NATIONAL, digits); ok {
			return formatted + suffix, nil
		}
		return digits + suffix, nil
	}

	code, national := splitCountryCode(digits)
	switch {
	case digits == "":
		return "+" + suffix, nil
	case code == "":
		return "+" + digits + suffix, nil
	case national == "":
		return "+" + code + suffix, nil
	}

	if formatted, ok := formatPreserving("+"+digits, region, phonenumbers.INTERNATIONAL, digits); ok {
		return formatted + suffix, nil
	}
	return "+" + code + " " + national + suffix, nil
}

// DetectRegion recognises the region of international input. A calling code
// shared by several regions (NANP, +7) only switches region once the number
// is complete and valid for another member.
func (f *PhoneNumbers) DetectRegion(raw, region string) (string, bool) {
	number, _ := splitSuffix(raw)
	if !hasPlus(number) {
		return "", false
	}
	digits := string(digitsOf(number))
	code, _ := splitCountryCode(digits)
	if code == "" {
		return "", false
	}
	calling, _ := strconv.Atoi(code)

	if calling == f.CountryCode(region) {
		num, err := phonenumbers.Parse("+"+digits, strings.ToUpper(region))
		if err != nil || !phonenumbers.IsValidNumber(num) {
			return "", false
		}
		detected := phonenumbers.GetRegionCodeForNumber(num)
		if detected == "" || detected == unknownRegion {
			return "", false
		}
		return detected, true
	}

	detected := phonenumbers.GetRegionCodeForCountryCode(calling)
	if detected == "" || detected == unknownRegion {
		return "", false
	}
	return detected, true
}

// Example returns the libphonenumber example number for region, formatted
// internationally or nationally. It is empty for unknown regions.
func (f *PhoneNumbers) Example(region string, international bool) string {
	num := phonenumbers.GetExampleNumber(strings.ToUpper(region))
	if num == nil {
		return ""
	}
	if international {
		return phonenumbers.Format(num, phonenumbers.INTERNATIONAL)
	}
	return phonenumbers.Format(num, phonenumbers.NATIONAL)
}

// Parse parses text as a phone number for region.
func (f *PhoneNumbers) Parse(text, region string) (*phonenumbers.PhoneNumber, error) {
	num, err := phonenumbers.Parse(text, strings.ToUpper(region))
	if err != nil {
		return nil, fmt.Errorf("parse phone number: %w", err)
	}
	return num, nil
}

// Valid reports whether text is a complete, valid number for region.
func (f *PhoneNumbers) Valid(text, region string) bool {
	num, err := f.Parse(text, region)
	return err == nil && phonenumbers.IsValidNumber(num)
}

// E164 returns text in E.164 form.
func (f *PhoneNumbers) E164(text, region string) (string, error) {
	num, err := f.Parse(text, region)
	if err != nil {
		return "", err
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

// NationalNumber returns the national significant number of text, or "" when
// text does not parse.
func (f *PhoneNumbers) NationalNumber(text, region string) string {
	num, err := f.Parse(text, region)
	if err != nil {
		return ""
	}
	return phonenumbers.GetNationalSignificantNumber(num)
}

// splitCountryCode takes the shortest leading digit run that is an assigned
// calling code. Calling codes are prefix-free, so the first hit is the only one.
func splitCountryCode(digits string) (code, national string) {
	for n := 1; n <= 3 && n <= len(digits); n++ {
		calling, err := strconv.Atoi(digits[:n])
		if err != nil {
			return "", digits
		}
		if region := phonenumbers.GetRegionCodeForCountryCode(calling); region != "" && region != unknownRegion {
			return digits[:n], digits[n:]
		}
	}
	return "", digits
}

// formatPreserving formats input and keeps the result only if its digits are
// exactly want, in order. libphonenumber drops national prefixes in some
// styles, which would strand the caret.
func formatPreserving(input, region string, style phonenumbers.PhoneNumberFormat, want string) (string, bool) {
	if want == "" {
		return "", false
	}
	num, err := phonenumbers.Parse(input, region)
	if err != nil {
		return "", false
	}
	out := phonenumbers.Format(num, style)
	if string(digitsOf(out)) != want {
		return "", false
	}
	return out, true
}
