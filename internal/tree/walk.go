package tree

// WalkFunc is called once per node with the node's composed path. Returning
// a non-nil error stops the walk; that error is what Walk returns.
type WalkFunc func(path string, n Node) error

// Walk visits n and everything below it depth-first in insertion order,
// starting with n itself at root. A directory is always visited before its
// children, and a child's whole subtree before the next sibling. A nil *Dir
// is visited as an empty directory.
func Walk(root string, n Node, fn WalkFunc) error {
	if err := fn(root, n); err != nil {
		return err
	}
	d, ok := n.(*Dir)
	if !ok || d == nil {
		return nil
	}
	for _, e := range d.Entries {
		if err := Walk(Join(root, e.Key), e.Node, fn); err != nil {
			return err
		}
	}
	return nil
}
