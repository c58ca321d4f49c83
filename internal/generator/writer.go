package generator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Encode renders spec as yaml or json.
func Encode(spec *OpenAPISpec, format string) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case "json":
		encoder := json.NewEncoder(&buf)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(spec); err != nil {
			return nil, fmt.Errorf("failed to encode JSON: %w", err)
		}
	case "yaml":
		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)
		if err := encoder.Encode(spec); err != nil {
			return nil, fmt.Errorf("failed to encode YAML: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: json, yaml)", format)
	}
	return buf.Bytes(), nil
}

// Write replaces the file at outputPath with the encoded spec. Nothing is
// touched on disk unless encoding succeeds.
func Write(spec *OpenAPISpec, outputPath, format string) error {
	data, err := Encode(spec, format)
	if err != nil {
		return err
	}

	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
