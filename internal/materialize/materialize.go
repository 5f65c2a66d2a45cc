// Package materialize turns a tree description into directories and files.
//
// The walk is depth-first in insertion order. A directory is created before
// anything under it, siblings never interleave, and the first failing
// operation ends the walk. Its error is returned exactly as the host produced
// it. Nothing created before the failure is rolled back.
package materialize

import (
	"fmt"

	"github.com/cbout22/filetree/internal/logger"
	"github.com/cbout22/filetree/internal/tree"
	"github.com/cbout22/filetree/internal/writer"
)

var log = logger.Logger.WithField("logger", "Materializer")

// Materializer applies trees to a filesystem.
type Materializer struct {
	fs writer.FileWriter
}

// New creates a Materializer that performs its operations through fs.
func New(fs writer.FileWriter) *Materializer {
	return &Materializer{fs: fs}
}

// Materialize creates n at root. A directory root is created first unless
// root is empty, which stands for the working directory.
func (m *Materializer) Materialize(root string, n tree.Node) error {
	return tree.Walk(root, n, func(path string, node tree.Node) error {
		switch v := node.(type) {
		case *tree.Dir:
			if path == "" {
				return nil
			}
			log.Debugf("mkdir %s", path)
			return m.fs.MkdirAll(path)
		case *tree.File:
			data, err := v.Data()
			if err != nil {
				return err
			}
			log.Debugf("write %s (%d bytes)", path, len(data))
			return m.fs.Write(path, data)
		default:
			return fmt.Errorf("unsupported tree node %T at %q", node, path)
		}
	})
}

// Materialize applies n at root using the real filesystem.
func Materialize(root string, n tree.Node) error {
	return New(&writer.OSFileWriter{}).Materialize(root, n)
}
