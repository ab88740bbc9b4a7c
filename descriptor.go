package readmegen

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/alnah/go-readmegen/internal/yamlutil"
)

// LoadDescriptor reads and parses the module descriptor at path.
// A missing file yields ErrConfigNotFound; malformed YAML yields
// ErrConfigParse carrying the parser's diagnostic. No schema is enforced:
// unknown keys are ignored and every known key is optional.
func LoadDescriptor(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- descriptor path is user-provided
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading module descriptor: %w", err)
	}

	return ParseDescriptor(data)
}

// ParseDescriptor parses descriptor YAML from memory.
func ParseDescriptor(data []byte) (*Descriptor, error) {
	var d Descriptor
	if err := yamlutil.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return &d, nil
}
