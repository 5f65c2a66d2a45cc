package writer

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
)

// BillyFileWriter implements FS on top of any billy.Filesystem.
// With memfs it is an in-memory host, used for dry runs and tests.
type BillyFileWriter struct {
	FS       billy.Filesystem
	DirPerm  fs.FileMode
	FilePerm fs.FileMode
}

var _ FS = (*BillyFileWriter)(nil)

// NewMemory returns a writer backed by an empty in-memory filesystem.
func NewMemory() *BillyFileWriter {
	return &BillyFileWriter{FS: memfs.New()}
}

func (w *BillyFileWriter) MkdirAll(path string) error {
	return w.FS.MkdirAll(path, orDefault(w.DirPerm, DefaultDirPerm))
}

func (w *BillyFileWriter) Write(path string, data []byte) error {
	perm := orDefault(w.FilePerm, DefaultFilePerm)
	err := util.WriteFile(w.FS, path, data, perm)
	if err == nil || !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if mkErr := w.MkdirAll(filepath.Dir(path)); mkErr != nil {
		return mkErr
	}
	return util.WriteFile(w.FS, path, data, perm)
}

func (w *BillyFileWriter) Stat(path string) (fs.FileInfo, error) {
	return w.FS.Stat(path)
}

func (w *BillyFileWriter) ReadFile(path string) ([]byte, error) {
	return util.ReadFile(w.FS, path)
}

// MkdirTemp uses the part of pattern before the last "*" as the name prefix.
func (w *BillyFileWriter) MkdirTemp(dir, pattern string) (string, error) {
	prefix := pattern
	if i := strings.LastIndex(pattern, "*"); i >= 0 {
		prefix = pattern[:i]
	}
	return util.TempDir(w.FS, dir, prefix)
}

func (w *BillyFileWriter) RemoveAll(path string) error {
	return util.RemoveAll(w.FS, path)
}
