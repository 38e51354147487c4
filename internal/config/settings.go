package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/alexisbeaulieu97/imagepick/pkg/errors"
)

const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Settings holds the widget's local configuration. Host snapshots never
// change these values.
type Settings struct {
	Log    LogSettings    `yaml:"log"`
	Layout LayoutSettings `yaml:"layout"`
	Input  InputSettings  `yaml:"input"`
}

// LogSettings controls where and how diagnostics are written.
type LogSettings struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `yaml:"format" validate:"omitempty,log_format"`
	// File is the log destination. Empty selects the command's default.
	File string `yaml:"file"`
}

// LayoutSettings sizes the terminal grid.
type LayoutSettings struct {
	CellWidth       int `yaml:"cell_width" validate:"min=8,max=80"`
	RowLabelWidth   int `yaml:"row_label_width" validate:"min=0,max=40"`
	MaxCaptionLines int `yaml:"max_caption_lines" validate:"min=1,max=5"`
}

// InputSettings toggles terminal input features.
type InputSettings struct {
	Mouse     bool `yaml:"mouse"`
	AltScreen bool `yaml:"alt_screen"`
}

// DefaultSettings returns the settings used when no file is present.
func DefaultSettings() Settings {
	return Settings{
		Log: LogSettings{
			Level:  "info",
			Format: LogFormatText,
		},
		Layout: LayoutSettings{
			CellWidth:       18,
			RowLabelWidth:   12,
			MaxCaptionLines: 2,
		},
		Input: InputSettings{
			Mouse: true,
		},
	}
}

// DefaultSettingsPath returns <user config dir>/imagepick/settings.yaml.
func DefaultSettingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "imagepick", "settings.yaml"), nil
}

// DefaultLogPath returns <user cache dir>/imagepick/imagepick.log.
func DefaultLogPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolve cache dir: %w", err)
	}
	return filepath.Join(dir, "imagepick", "imagepick.log"), nil
}

// ValidateSettings checks every field against its validation tags.
func ValidateSettings(s *Settings) error {
	if s == nil {
		return apperrors.NewValidationError("settings", "settings are nil", nil)
	}
	return convertValidationError(validatorInstance().Struct(s))
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := fieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return apperrors.NewValidationError(field, msg, err)
	}

	return apperrors.NewValidationError("settings", err.Error(), err)
}

// fieldName drops the root struct name from the yaml-named namespace.
func fieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.Join(parts, ".")
}
