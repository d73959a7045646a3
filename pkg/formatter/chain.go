package formatter

import (
	"errors"
	"fmt"

	"github.com/pluqqy/dialpad/pkg/edit"
)

// Chain tries formatters in order. A formatter that does not know the region
// passes to the next one; any other error stops the chain.
type Chain []edit.Formatter

// Format returns the output of the first formatter that knows region.
func (c Chain) Format(raw, region string) (string, error) {
	for _, f := range c {
		out, err := f.Format(raw, region)
		if err == nil {
			return out, nil
		}
		if !errors.Is(err, ErrInvalidRegion) {
			return "", err
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRegion, region)
}

// InternationalPrefix asks every member that can resolve prefixes.
func (c Chain) InternationalPrefix(region string) (string, error) {
	for _, f := range c {
		resolver, ok := f.(edit.PrefixResolver)
		if !ok {
			continue
		}
		if prefix, err := resolver.InternationalPrefix(region); err == nil {
			return prefix, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRegion, region)
}

// DetectRegion returns the first recognised region.
func (c Chain) DetectRegion(raw, region string) (string, bool) {
	for _, f := range c {
		detector, ok := f.(edit.RegionDetector)
		if !ok {
			continue
		}
		if detected, ok := detector.DetectRegion(raw, region); ok {
			return detected, true
		}
	}
	return "", false
}
