package messages

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ZaguanLabs/alltools"
)

// LoadFile reads a message bundle from a .json or .yaml/.yml file.
func LoadFile(path string) (Bundle, error) {
	data, err := os.ReadFile(path) // #nosec G304 - message paths are operator-provided
	if err != nil {
		return nil, &alltools.LoadError{Path: path, Cause: err}
	}

	b, err := Decode(filepath.Ext(path), data)
	if err != nil {
		return nil, &alltools.LoadError{Path: path, Cause: err}
	}
	return b, nil
}

// Decode parses a bundle; ext selects the format.
func Decode(ext string, data []byte) (Bundle, error) {
	var b Bundle

	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &b); err != nil {
			return nil, fmt.Errorf("json parse error: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &b); err != nil {
			return nil, fmt.Errorf("yaml parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported extension %q", ext)
	}

	if b == nil {
		b = Bundle{}
	}
	return b, nil
}

// LoadStore builds a store from message files. Later files override earlier ones.
func LoadStore(def alltools.Language, paths ...string) (*Store, error) {
	store := NewStore(def)
	for _, path := range paths {
		b, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		store.Merge(b)
	}
	return store, nil
}

// Encode writes a bundle in the format selected by ext.
func Encode(w io.Writer, ext string, b Bundle) error {
	switch strings.ToLower(ext) {
	case ".json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(b)
	case ".yaml", ".yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(b); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported extension %q", ext)
	}
}

// WriteFile writes a bundle to path, choosing the format from its extension.
func WriteFile(path string, b Bundle) error {
	f, err := os.Create(path) // #nosec G304 - path is intentionally user-provided
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	if err := Encode(f, filepath.Ext(path), b); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
