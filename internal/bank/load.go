package bank

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/berth-dev/quiz/banks"
)

// Format identifies the encoding of a bank file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

// Load reads and validates the bank at path.
// An empty path loads the embedded default bank.
func Load(path string) (*Bank, error) {
	if path == "" {
		return Default()
	}

	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading bank: %w", err)
	}

	return Parse(data, format)
}

// Default returns the embedded Genetics and Evolution bank.
func Default() (*Bank, error) {
	b, err := Parse(banks.Genetics, FormatJSON)
	if err != nil {
		return nil, fmt.Errorf("embedded bank %s: %w", banks.DefaultName, err)
	}
	return b, nil
}

// Parse decodes data in the given format and validates the result.
func Parse(data []byte, format Format) (*Bank, error) {
	var b Bank

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &b); err != nil {
			return nil, fmt.Errorf("parsing bank: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &b); err != nil {
			return nil, fmt.Errorf("parsing bank: %w", err)
		}
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}

	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

// Encode renders the bank in the given format.
func (b *Bank) Encode(format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(b, "", "  ")
	case FormatYAML:
		return yaml.Marshal(b)
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}
}
