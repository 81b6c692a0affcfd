package dataset

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"lookup/internal/domain"
)

var ErrUnsupportedFormat = errors.New("unsupported data format")

// Format identifies how an item file is encoded
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFor picks the format from a file extension
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Load reads the items stored at path
func Load(path string) ([]domain.Item, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}
	items, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return items, nil
}

// tomlDocument is the TOML layout: an array of tables named items
type tomlDocument struct {
	Items []map[string]any `toml:"items"`
}

// Decode parses a list of items. JSON and YAML hold a top-level array of
// objects; TOML holds an [[items]] array of tables.
func Decode(data []byte, format Format) ([]domain.Item, error) {
	var raw []map[string]any

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case FormatTOML:
		var doc tomlDocument
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		raw = doc.Items
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	items := make([]domain.Item, 0, len(raw))
	for _, r := range raw {
		if r == nil {
			continue
		}
		items = append(items, domain.Item(r))
	}
	return items, nil
}

// FromLines turns every non-blank line of r into an item whose display
// field holds the line
func FromLines(r io.Reader, displayKey string) ([]domain.Item, error) {
	if displayKey == "" {
		displayKey = domain.DefaultDisplayKey
	}

	var items []domain.Item
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		items = append(items, domain.Item{displayKey: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lines: %w", err)
	}
	return items, nil
}
