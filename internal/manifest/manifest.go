// Package manifest reads tree files: declarative descriptions of a
// directory layout written in TOML, YAML or JSON.
//
// In every format a mapping is a directory and any other value is a file.
// Key order in the file is the order things are created in. A string is the
// file's content, true makes an empty file and false (or null) leaves the
// entry out.
package manifest

import (
	"fmt"
	"os"

	"github.com/cbout22/filetree/internal/config"
	"github.com/cbout22/filetree/internal/tree"
)

// DefaultTreeFile is looked for when no tree file is named.
const DefaultTreeFile = "tree.toml"

// Load reads and decodes a tree file. An empty format is inferred from the
// file's extension.
func Load(path string, format config.Format) (*tree.Dir, error) {
	if format == "" {
		f, err := config.FormatFromPath(path)
		if err != nil {
			return nil, err
		}
		format = f
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tree file: %w", err)
	}

	d, err := Decode(format, data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return d, nil
}

// Decode turns the text of a tree file into a tree.
func Decode(format config.Format, data []byte) (*tree.Dir, error) {
	switch format {
	case config.TOML:
		return decodeTOML(data)
	case config.YAML, config.JSON:
		// JSON is a subset of YAML, and the YAML decoder keeps key order.
		return decodeYAML(data)
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}
