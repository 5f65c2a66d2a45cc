// Package tempdir provisions scratch directories whose lifetime is tied to a
// handle.
package tempdir

import (
	"sync"

	"github.com/cbout22/filetree/internal/logger"
	"github.com/cbout22/filetree/internal/writer"
)

// DefaultPattern names directories created by New when no pattern is given.
const DefaultPattern = "ftree-*"

var log = logger.Logger.WithField("logger", "TempDir")

// Dir is a provisioned temporary directory. Close removes it and
// everything under it.
type Dir struct {
	fs   writer.TempCreator
	path string

	once     sync.Once
	closeErr error
	kept     bool
}

// New creates a uniquely named directory in the host's default temporary
// location.
func New(fs writer.TempCreator, pattern string) (*Dir, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	path, err := fs.MkdirTemp("", pattern)
	if err != nil {
		return nil, err
	}
	log.Debugf("provisioned %s", path)
	return &Dir{fs: fs, path: path}, nil
}

// Path returns the directory's location. It lets a Dir be used directly as
// a computed tree key.
func (d *Dir) Path() string {
	return d.path
}

// Keep detaches the directory from the handle: Close will leave it on disk.
func (d *Dir) Keep() {
	d.kept = true
}

// Close removes the directory recursively. Calling it more than once is
// safe and returns the first result.
func (d *Dir) Close() error {
	d.once.Do(func() {
		if d.kept {
			log.Debugf("keeping %s", d.path)
			return
		}
		log.Debugf("removing %s", d.path)
		d.closeErr = d.fs.RemoveAll(d.path)
	})
	return d.closeErr
}
