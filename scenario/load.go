// SPDX-License-Identifier: MIT

package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a scenario file.
type Format int

const (
	// FormatTOML is the default encoding.
	FormatTOML Format = iota

	// FormatYAML is selected by the .yaml and .yml extensions.
	FormatYAML
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// DetectFormat determines the format from the file extension.
// Anything other than .yaml/.yml is treated as TOML.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Load reads and decodes the scenario file at path.
func Load(path string) (File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	f, err := Parse(content, DetectFormat(path))
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a scenario from content in the given format.
func Parse(content []byte, format Format) (File, error) {
	var f File
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &f); err != nil {
			return File{}, fmt.Errorf("scenario: TOML parse error: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &f); err != nil {
			return File{}, fmt.Errorf("scenario: YAML parse error: %w", err)
		}
	default:
		return File{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	return f, nil
}
