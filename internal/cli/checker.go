package cli

import (
	"bytes"
	"errors"
	"io/fs"

	"github.com/cbout22/filetree/internal/tree"
	"github.com/cbout22/filetree/internal/writer"
)

// CheckStatus describes how one tree node compares with the disk.
type CheckStatus int

const (
	CheckOK              CheckStatus = iota // Exists with the right type and content
	CheckMissing                            // Nothing at the path
	CheckWrongType                          // A file where a directory belongs, or the reverse
	CheckContentMismatch                    // File exists but holds different bytes
	CheckError                              // Could not be inspected
)

// CheckResult holds the outcome of checking one node.
type CheckResult struct {
	Path   string
	Dir    bool
	Status CheckStatus
	Err    error // set for CheckError
}

// CheckTree compares every node of t, anchored at root, with what fsys
// reports. It reads state through its arguments only and never stops early.
func CheckTree(root string, t tree.Node, fsys writer.FileReader) []CheckResult {
	var results []CheckResult

	_ = tree.Walk(root, t, func(path string, n tree.Node) error {
		if path == "" {
			return nil
		}
		_, isDir := n.(*tree.Dir)
		results = append(results, checkNode(path, n, isDir, fsys))
		return nil
	})

	return results
}

func checkNode(path string, n tree.Node, isDir bool, fsys writer.FileReader) CheckResult {
	r := CheckResult{Path: path, Dir: isDir}

	info, err := fsys.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		r.Status = CheckMissing
		return r
	case err != nil:
		r.Status, r.Err = CheckError, err
		return r
	case info.IsDir() != isDir:
		r.Status = CheckWrongType
		return r
	}

	f, ok := n.(*tree.File)
	if !ok {
		r.Status = CheckOK
		return r
	}

	want, err := f.Data()
	if err != nil {
		r.Status, r.Err = CheckError, err
		return r
	}
	got, err := fsys.ReadFile(path)
	if err != nil {
		r.Status, r.Err = CheckError, err
		return r
	}
	if !bytes.Equal(got, want) {
		r.Status = CheckContentMismatch
		return r
	}
	r.Status = CheckOK
	return r
}
