package field

import (
	"go.uber.org/zap"

	"github.com/pluqqy/dialpad/pkg/caret"
	"github.com/pluqqy/dialpad/pkg/edit"
	"github.com/pluqqy/dialpad/pkg/formatter"
	"github.com/pluqqy/dialpad/pkg/models"
)

// NewFormatter returns the formatter settings describe: the configured masks
// first, libphonenumber for every other region.
func NewFormatter(settings *models.Settings, numbers *formatter.PhoneNumbers) formatter.Chain {
	if len(settings.Masks) == 0 {
		return formatter.Chain{numbers}
	}
	return formatter.Chain{formatter.NewMask(settings.Masks), numbers}
}

// NewPipeline builds the edit pipeline for settings around f.
func NewPipeline(settings *models.Settings, f edit.Formatter, logger *zap.Logger) *edit.Pipeline {
	markers := settings.Markers
	return edit.New(f,
		edit.WithCharacterSet(caret.NewCharacterSet(markers.Plus, markers.Pauses, markers.Operators)),
		edit.WithMaxDigits(settings.Field.MaxDigits),
		edit.WithFormatting(settings.Field.Formatting),
		edit.WithPrefixGuard(settings.Field.WithPrefix),
		edit.WithLogger(logger),
	)
}

// FromSettings wires a field from settings alone.
func FromSettings(settings *models.Settings, logger *zap.Logger) *Field {
	numbers := formatter.NewPhoneNumbers()
	pipeline := NewPipeline(settings, NewFormatter(settings, numbers), logger)
	return New(pipeline, numbers, settings.Field, logger)
}
