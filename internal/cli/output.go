package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	gotoml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"lookup/internal/domain"
)

// Output formats of the picked item
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
	OutputTOML = "toml"
)

var outputFormats = []string{OutputText, OutputJSON, OutputYAML, OutputTOML}

func validOutput(format string) error {
	for _, f := range outputFormats {
		if f == format {
			return nil
		}
	}
	return fmt.Errorf("unknown output format %q (want one of %s)", format, strings.Join(outputFormats, ", "))
}

// writeItem prints item in format. Text prints the display field, or the
// typed text of a submitted query.
func writeItem(w io.Writer, item domain.Item, format, displayKey string) error {
	switch format {
	case OutputJSON:
		b, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("failed to encode item: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(map[string]any(item)); err != nil {
			return fmt.Errorf("failed to encode item: %w", err)
		}
		return enc.Close()
	case OutputTOML:
		if err := gotoml.NewEncoder(w).Encode(map[string]any(item)); err != nil {
			return fmt.Errorf("failed to encode item: %w", err)
		}
		return nil
	default:
		label, ok := domain.DisplayValue(item, displayKey)
		if !ok {
			label, _ = domain.DisplayValue(item, domain.SubmittedTextKey)
		}
		_, err := fmt.Fprintln(w, label)
		return err
	}
}
