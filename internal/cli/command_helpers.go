package cli

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/pluqqy/dialpad/pkg/directory"
	"github.com/pluqqy/dialpad/pkg/field"
	"github.com/pluqqy/dialpad/pkg/files"
	"github.com/pluqqy/dialpad/pkg/formatter"
	"github.com/pluqqy/dialpad/pkg/models"
)

// CommandContext carries what every command needs: settings with flag
// overrides applied, the diagnostic logger and the number metadata.
type CommandContext struct {
	Settings *models.Settings
	Logger   *zap.Logger
	Numbers  *formatter.PhoneNumbers
}

// ContextOptions are the persistent flag values a context is built from
type ContextOptions struct {
	Region  string
	LogFile string
	Debug   bool
}

// NewCommandContext loads settings and applies flag overrides
func NewCommandContext(opts ContextOptions) (*CommandContext, error) {
	settings, err := files.ReadSettings()
	if err != nil {
		return nil, err
	}

	numbers := formatter.NewPhoneNumbers()
	if opts.Region != "" {
		region, err := ValidateRegion(opts.Region, numbers)
		if err != nil {
			return nil, err
		}
		settings.Field.DefaultRegion = region
	}

	if opts.LogFile != "" {
		if err := ValidateLogPath(opts.LogFile); err != nil {
			return nil, err
		}
	}
	logger, err := NewLogger(opts.LogFile, opts.Debug)
	if err != nil {
		return nil, err
	}

	return &CommandContext{
		Settings: settings,
		Logger:   logger,
		Numbers:  numbers,
	}, nil
}

// Close flushes the logger
func (c *CommandContext) Close() {
	_ = c.Logger.Sync()
}

// NewField wires a phone field from the context settings
func (c *CommandContext) NewField() *field.Field {
	pipeline := field.NewPipeline(c.Settings, field.NewFormatter(c.Settings, c.Numbers), c.Logger)
	return field.New(pipeline, c.Numbers, c.Settings.Field, c.Logger)
}

// Locale parses the picker locale, falling back to English
func (c *CommandContext) Locale() language.Tag {
	tag, err := language.Parse(c.Settings.Picker.Locale)
	if err != nil {
		c.Logger.Debug("invalid picker locale", zap.String("locale", c.Settings.Picker.Locale), zap.Error(err))
		return language.English
	}
	return tag
}

// NewDirectory builds the region directory with pinned as the current region
func (c *CommandContext) NewDirectory(pinned string) *directory.Directory {
	picker := c.Settings.Picker
	locale := c.Locale()
	return directory.Build(directory.Regions(locale, c.Numbers), directory.Options{
		Pinned:      pinned,
		Common:      picker.CommonRegions,
		HidePinned:  !picker.ShowCurrent,
		HideCommon:  !picker.ShowCommon,
		CommonTitle: picker.CommonTitle,
		Locale:      locale,
	})
}

// RequireRegion returns the region flag or the configured default
func (c *CommandContext) RequireRegion() (string, error) {
	region, err := ValidateRegion(c.Settings.Field.DefaultRegion, c.Numbers)
	if err != nil {
		return "", fmt.Errorf("default region: %w", err)
	}
	return region, nil
}
