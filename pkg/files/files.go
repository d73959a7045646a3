package files

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pluqqy/dialpad/pkg/models"
)

const (
	ConfigDir    = ".dialpad"
	SettingsFile = "settings.yaml"
)

// SettingsPath is the settings file relative to the working directory.
func SettingsPath() string {
	return filepath.Join(ConfigDir, SettingsFile)
}

// InitConfig creates the config directory and writes default settings unless
// a settings file already exists. It reports whether a file was written.
func InitConfig() (bool, error) {
	if err := os.MkdirAll(ConfigDir, 0755); err != nil {
		return false, fmt.Errorf("failed to create directory %s: %w", ConfigDir, err)
	}

	if _, err := os.Stat(SettingsPath()); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("failed to stat settings: %w", err)
	}

	if err := WriteSettings(models.DefaultSettings()); err != nil {
		return false, err
	}
	return true, nil
}

// ReadSettings loads the settings file. A missing file yields the defaults,
// and keys absent from the file keep their default values.
func ReadSettings() (*models.Settings, error) {
	settings := models.DefaultSettings()

	content, err := os.ReadFile(SettingsPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}

	normalize(settings)
	return settings, nil
}

// WriteSettings stores settings, creating the config directory if needed.
func WriteSettings(settings *models.Settings) error {
	if err := os.MkdirAll(ConfigDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory for settings: %w", err)
	}

	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}

	if err := os.WriteFile(SettingsPath(), content, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	return nil
}

// WriteFile writes content to a file (for exported numbers and region lists)
func WriteFile(path string, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

func normalize(settings *models.Settings) {
	settings.Field.DefaultRegion = strings.ToUpper(strings.TrimSpace(settings.Field.DefaultRegion))
	if settings.Field.MaxDigits < 0 {
		settings.Field.MaxDigits = 0
	}

	common := settings.Picker.CommonRegions[:0]
	for _, code := range settings.Picker.CommonRegions {
		if code = strings.ToUpper(strings.TrimSpace(code)); code != "" {
			common = append(common, code)
		}
	}
	settings.Picker.CommonRegions = common

	if settings.Masks == nil {
		settings.Masks = map[string]string{}
	}
}
