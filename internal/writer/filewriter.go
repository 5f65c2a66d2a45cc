// Package writer provides the filesystem primitives a tree is materialized
// with: create a directory, write a file, and the handful of reads and
// removals needed around them.
package writer

import "io/fs"

// Default permissions for created directories and files.
const (
	DefaultDirPerm  fs.FileMode = 0o755
	DefaultFilePerm fs.FileMode = 0o644
)

// FileWriter abstracts the two mutations a tree needs.
type FileWriter interface {
	// MkdirAll creates a directory path and any missing parents.
	// An existing directory is not an error.
	MkdirAll(path string) error

	// Write creates or truncates the file at path and writes data to it.
	Write(path string, data []byte) error
}

// FileReader reports what is on disk.
type FileReader interface {
	Stat(path string) (fs.FileInfo, error)
	ReadFile(path string) ([]byte, error)
}

// TempCreator provisions and removes scratch directories.
type TempCreator interface {
	// MkdirTemp creates a uniquely named directory under dir (the host
	// default when empty) and returns its path.
	MkdirTemp(dir, pattern string) (string, error)

	// RemoveAll deletes path and everything under it.
	RemoveAll(path string) error
}

// FS is a complete host filesystem.
type FS interface {
	FileWriter
	FileReader
	TempCreator
}

func orDefault(perm, def fs.FileMode) fs.FileMode {
	if perm == 0 {
		return def
	}
	return perm
}
