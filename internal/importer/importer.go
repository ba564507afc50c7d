package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Extensions lists the file extensions LoadFile understands.
func Extensions() []string {
	return []string{".json", ".yaml", ".yml"}
}

// LoadFile reads path and decodes it by extension. The result is a generic
// value (maps, slices, scalars) that has not been validated yet; pass it to
// schemas.Validate or Store.LoadResume.
func LoadFile(path string) (any, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}
	return Parse(path, content)
}

// Parse decodes content using the format implied by name's extension.
func Parse(name string, content []byte) (any, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, &LoadError{Path: name, Message: "file is empty"}
	}

	var doc any
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".json":
		if err := json.Unmarshal(content, &doc); err != nil {
			return nil, &LoadError{Path: name, Message: "failed to unmarshal JSON", Cause: err}
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &doc); err != nil {
			return nil, &LoadError{Path: name, Message: "failed to unmarshal YAML", Cause: err}
		}
	default:
		return nil, &LoadError{
			Path:    name,
			Message: fmt.Sprintf("unsupported file extension %q (want %s)", ext, strings.Join(Extensions(), ", ")),
		}
	}
	return doc, nil
}
