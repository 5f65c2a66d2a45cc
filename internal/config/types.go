package config

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cbout22/filetree/internal/writer"
)

// Format is the notation a tree file is written in.
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
	JSON Format = "json"
)

// ValidFormats returns all supported formats.
func ValidFormats() []Format {
	return []Format{TOML, YAML, JSON}
}

// IsValid checks whether the format is one of the known formats.
func (f Format) IsValid() bool {
	switch f {
	case TOML, YAML, JSON:
		return true
	}
	return false
}

// Extensions returns the file suffixes recognised for this format.
func (f Format) Extensions() []string {
	switch f {
	case TOML:
		return []string{".toml"}
	case YAML:
		return []string{".yaml", ".yml"}
	case JSON:
		return []string{".json"}
	}
	return nil
}

// FormatFromPath picks the format from a file's extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, f := range ValidFormats() {
		for _, e := range f.Extensions() {
			if e == ext {
				return f, nil
			}
		}
	}
	return "", fmt.Errorf("cannot tell the format of %q: use a .toml, .yaml, .yml or .json file, or pass --format", path)
}

// ParseFormat validates a format name given on the command line.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	if !f.IsValid() {
		return "", fmt.Errorf("unknown format %q (want toml, yaml or json)", name)
	}
	return f, nil
}

// ParsePerm parses an octal permission such as "0755", "755" or "0o755".
// An empty string yields def.
func ParsePerm(s string, def fs.FileMode) (fs.FileMode, error) {
	ss := strings.TrimSpace(s)
	if ss == "" {
		return def, nil
	}
	if !strings.HasPrefix(ss, "0") {
		ss = "0" + ss
	}
	// base 0 understands both 0755 and 0o755
	u, err := strconv.ParseUint(ss, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid permission %q: %w", s, err)
	}
	if u > 0o7777 {
		return 0, fmt.Errorf("invalid permission %q: out of range", s)
	}
	return fs.FileMode(u), nil
}

// Settings are the knobs shared by the commands that touch a filesystem.
type Settings struct {
	Root     string
	DirPerm  fs.FileMode
	FilePerm fs.FileMode
}

// DefaultSettings returns settings rooted at the working directory with the
// writer's default permissions.
func DefaultSettings() Settings {
	return Settings{
		Root:     ".",
		DirPerm:  writer.DefaultDirPerm,
		FilePerm: writer.DefaultFilePerm,
	}
}

// Writer returns an OS writer using the configured permissions.
func (s Settings) Writer() *writer.OSFileWriter {
	return &writer.OSFileWriter{DirPerm: s.DirPerm, FilePerm: s.FilePerm}
}
