package writer

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// OSFileWriter implements FS using the real filesystem.
// Zero permissions fall back to DefaultDirPerm and DefaultFilePerm.
type OSFileWriter struct {
	DirPerm  fs.FileMode
	FilePerm fs.FileMode
}

var _ FS = (*OSFileWriter)(nil)

func (w *OSFileWriter) MkdirAll(path string) error {
	return os.MkdirAll(path, orDefault(w.DirPerm, DefaultDirPerm))
}

// Write writes data to path. When the parent is missing (a key such as
// "path/as/name" implies directories nobody declared) it is created and the
// write is tried once more.
func (w *OSFileWriter) Write(path string, data []byte) error {
	perm := orDefault(w.FilePerm, DefaultFilePerm)
	err := os.WriteFile(path, data, perm)
	if err == nil || !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	parent := filepath.Dir(path)
	if parent == path {
		return err
	}
	if mkErr := w.MkdirAll(parent); mkErr != nil {
		return mkErr
	}
	return os.WriteFile(path, data, perm)
}

func (w *OSFileWriter) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

func (w *OSFileWriter) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (w *OSFileWriter) MkdirTemp(dir, pattern string) (string, error) {
	return os.MkdirTemp(dir, pattern)
}

func (w *OSFileWriter) RemoveAll(path string) error {
	return os.RemoveAll(path)
}
