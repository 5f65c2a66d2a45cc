package tree

import "path/filepath"

// Pather is any value that already denotes a location on disk, such as a
// temporary directory handle.
type Pather interface {
	Path() string
}

// Key labels a child within its parent. It is either a literal name or a
// computed path value.
type Key struct {
	name string
	path Pather
}

// Name returns a literal key. The name may contain separators, in which case
// it expands to several path components. An absolute name replaces the
// parent path when joined.
func Name(s string) Key {
	return Key{name: s}
}

// PathKey returns a key backed by a computed path value. The path is read
// when the key is joined, not when it is built.
func PathKey(p Pather) Key {
	return Key{path: p}
}

// Computed reports whether the key is a computed path value.
func (k Key) Computed() bool {
	return k.path != nil
}

// Segment returns the text that is joined onto the parent path.
func (k Key) Segment() string {
	if k.path != nil {
		return k.path.Path()
	}
	return k.name
}

func (k Key) String() string {
	return k.Segment()
}

// Join composes the path of a child keyed by k under base.
//
// An absolute key, literal or computed, replaces base. Everything else is
// appended with filepath.Join, so an empty base leaves the key relative to
// the working directory.
func Join(base string, k Key) string {
	seg := k.Segment()
	if filepath.IsAbs(seg) {
		return seg
	}
	return filepath.Join(base, seg)
}
