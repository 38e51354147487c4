package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	apperrors "github.com/alexisbeaulieu97/imagepick/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseSettings reads a settings file, layers it over DefaultSettings and
// validates the result.
func ParseSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewParseError(path, 0, err)
	}
	return DecodeSettings(path, data)
}

// DecodeSettings decodes YAML settings held in memory. path is only used in errors.
func DecodeSettings(path string, data []byte) (*Settings, error) {
	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, apperrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateSettings(&settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// LoadSettings is ParseSettings that tolerates a missing file: it returns the
// defaults and found=false.
func LoadSettings(path string) (settings *Settings, found bool, err error) {
	if path == "" {
		defaults := DefaultSettings()
		return &defaults, false, nil
	}

	if _, statErr := os.Stat(path); errors.Is(statErr, fs.ErrNotExist) {
		defaults := DefaultSettings()
		return &defaults, false, nil
	}

	settings, err = ParseSettings(path)
	if err != nil {
		return nil, true, err
	}
	return settings, true, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
