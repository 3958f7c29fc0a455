// Package seed provides the business plan payload used to populate an empty store.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed business_plan.yaml
var defaultPayload []byte

// Default returns the built-in payload as JSON.
func Default() ([]byte, error) {
	return FromYAML(defaultPayload)
}

// Load returns the payload to seed with. An empty path selects the built-in
// payload; otherwise the file is read as YAML (.yaml, .yml) or JSON.
func Load(path string) ([]byte, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FromYAML(data)
	case ".json":
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported seed file type %q", filepath.Ext(path))
	}
}

// FromYAML converts a YAML document to the JSON form accepted by domain.Decode.
func FromYAML(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse seed yaml: %w", err)
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("convert seed yaml: %w", err)
	}
	return out, nil
}
