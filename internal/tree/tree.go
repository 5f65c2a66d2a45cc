// Package tree holds the in-memory description of a directory layout.
//
// A tree is built once by a front-end (a decoder or Go code using the
// constructors below), handed to a materializer, and read exactly once.
package tree

// Node is either a *Dir or a *File. The set of implementations is closed.
type Node interface {
	isNode()
}

// Entry is one child of a directory: the key it is joined under and the
// node found there.
type Entry struct {
	Key  Key
	Node Node
}

// Dir is an interior node. Entries are visited in the order they were added.
type Dir struct {
	Entries []Entry
}

// File is a leaf node whose content is resolved when the walk reaches it.
type File struct {
	Content Content
}

func (*Dir) isNode()  {}
func (*File) isNode() {}

// NewDir returns a directory with the given children, in order.
func NewDir(entries ...Entry) *Dir {
	return &Dir{Entries: entries}
}

// Add appends a child. Duplicate keys are kept; both are materialized.
func (d *Dir) Add(key Key, n Node) *Dir {
	d.Entries = append(d.Entries, Entry{Key: key, Node: n})
	return d
}

// Len returns the number of direct children.
func (d *Dir) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Entries)
}

// Child builds an entry keyed by a literal path segment.
func Child(name string, n Node) Entry {
	return Entry{Key: Name(name), Node: n}
}

// ChildAt builds an entry keyed by a computed path value.
func ChildAt(p Pather, n Node) Entry {
	return Entry{Key: PathKey(p), Node: n}
}

// TextFile returns a file holding s.
func TextFile(s string) *File {
	return &File{Content: Text(s)}
}

// BytesFile returns a file holding b.
func BytesFile(b []byte) *File {
	return &File{Content: Bytes(b)}
}

// EmptyFile returns a zero-length file.
func EmptyFile() *File {
	return &File{Content: Bytes(nil)}
}

// LazyFile returns a file whose content is produced by fn at visit time.
func LazyFile(fn func() ([]byte, error)) *File {
	return &File{Content: ContentFunc(fn)}
}

// Data resolves the file's content. A nil file or nil Content is empty.
func (f *File) Data() ([]byte, error) {
	if f == nil || f.Content == nil {
		return nil, nil
	}
	return f.Content.Resolve()
}

// Content is the payload of a File.
type Content interface {
	Resolve() ([]byte, error)
}

// Text is string content.
type Text string

// Resolve implements Content.
func (t Text) Resolve() ([]byte, error) { return []byte(t), nil }

// Bytes is raw content.
type Bytes []byte

// Resolve implements Content.
func (b Bytes) Resolve() ([]byte, error) { return b, nil }

// ContentFunc defers producing content until the file is written.
type ContentFunc func() ([]byte, error)

// Resolve implements Content.
func (f ContentFunc) Resolve() ([]byte, error) { return f() }

// Count returns the number of directories and files under n, n included.
func Count(n Node) (dirs, files int) {
	switch v := n.(type) {
	case *Dir:
		dirs = 1
		if v == nil {
			return dirs, 0
		}
		for _, e := range v.Entries {
			d, f := Count(e.Node)
			dirs += d
			files += f
		}
	case *File:
		files = 1
	}
	return dirs, files
}
