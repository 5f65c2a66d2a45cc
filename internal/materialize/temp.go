package materialize

import (
	"errors"

	"github.com/cbout22/filetree/internal/tempdir"
	"github.com/cbout22/filetree/internal/tree"
	"github.com/cbout22/filetree/internal/writer"
)

// ErrNoTempSupport is returned by MaterializeTemp when the Materializer's
// writer cannot provision temporary directories.
var ErrNoTempSupport = errors.New("writer does not support temporary directories")

// MaterializeTemp provisions a fresh temporary directory and materializes n
// inside it. The caller owns the returned handle and must Close it to remove
// the directory.
//
// If provisioning fails, nothing is attempted and the handle is nil. If the
// tree fails partway, the handle is returned together with the error so the
// partial result can be inspected; it still needs to be closed.
func (m *Materializer) MaterializeTemp(n tree.Node) (*tempdir.Dir, error) {
	tc, ok := m.fs.(writer.TempCreator)
	if !ok {
		return nil, ErrNoTempSupport
	}
	dir, err := tempdir.New(tc, tempdir.DefaultPattern)
	if err != nil {
		return nil, err
	}
	if err := m.Materialize(dir.Path(), n); err != nil {
		return dir, err
	}
	return dir, nil
}

// MaterializeTemp is Materializer.MaterializeTemp on the real filesystem.
func MaterializeTemp(n tree.Node) (*tempdir.Dir, error) {
	return New(&writer.OSFileWriter{}).MaterializeTemp(n)
}
