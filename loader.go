package alltools

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// LoadDefinition reads a catalog definition from a .json, .yaml/.yml or .toml file.
func LoadDefinition(path string) (Definition, error) {
	data, err := os.ReadFile(path) // #nosec G304 - catalog path is operator-provided
	if err != nil {
		return Definition{}, &LoadError{Path: path, Cause: err}
	}

	def, err := DecodeDefinition(filepath.Ext(path), data)
	if err != nil {
		return Definition{}, &LoadError{Path: path, Cause: err}
	}
	return def, nil
}

// DecodeDefinition decodes a definition; ext selects the format (".json", ".yaml",
// ".yml" or ".toml").
func DecodeDefinition(ext string, data []byte) (Definition, error) {
	var def Definition

	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &def); err != nil {
			return Definition{}, fmt.Errorf("json parse error: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &def); err != nil {
			return Definition{}, fmt.Errorf("yaml parse error: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &def); err != nil {
			return Definition{}, fmt.Errorf("toml parse error: %w", err)
		}
	default:
		return Definition{}, fmt.Errorf("unsupported extension %q", ext)
	}

	if len(def.Languages) == 0 && len(def.Tools) == 0 {
		return Definition{}, fmt.Errorf("empty catalog definition")
	}
	return def, nil
}

// LoadCatalog reads a definition file and validates it into a Catalog.
func LoadCatalog(path string) (*Catalog, error) {
	def, err := LoadDefinition(path)
	if err != nil {
		return nil, err
	}
	return NewCatalog(def)
}
