package mapfile

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is a map document encoding.
type Format int

const (
	// JSON is the encoding of the classic data.json file.
	JSON Format = iota
	// YAML accepts the same document shape written as YAML.
	YAML
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatOf picks the format from the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return JSON, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Document is the decoded form of a map file.
type Document struct {
	Map [][]int `json:"map" yaml:"map"`
}
