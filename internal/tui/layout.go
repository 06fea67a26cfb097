package tui

import "slices"

// Split is the orientation of an inner node of the window tree.
type Split int

const (
	// SplitRows stacks the two halves on top of each other.
	SplitRows Split = iota
	// SplitColumns places the two halves side by side.
	SplitColumns
)

// node is either a leaf holding a window or a split with two children.
type node struct {
	window   *Window
	split    Split
	children [2]*node
}

func (n *node) leaf() bool { return n.window != nil }

// Layout is the window tree of the terminal. The active window is
// addressed by its index path from the root; there is always exactly one.
type Layout struct {
	root   *node
	active []int
}

// NewLayout returns a layout holding a single active window.
func NewLayout(w *Window) *Layout {
	return &Layout{root: &node{window: w}}
}

// Active returns the focused window.
func (l *Layout) Active() *Window {
	return l.at(l.active).window
}

// ActivePath returns a copy of the index path of the focused window.
func (l *Layout) ActivePath() []int {
	return slices.Clone(l.active)
}

// Leaves returns all windows in depth-first order.
func (l *Layout) Leaves() []*Window {
	var out []*Window
	for _, p := range l.paths() {
		out = append(out, l.at(p).window)
	}
	return out
}

// Len returns the number of windows.
func (l *Layout) Len() int {
	return len(l.paths())
}

// Split divides the focused window in two, placing w in the second half.
// Focus stays on the window that was split.
func (l *Layout) Split(s Split, w *Window) {
	n := l.at(l.active)
	old := &node{window: n.window}
	n.window = nil
	n.split = s
	n.children = [2]*node{old, {window: w}}
	l.active = append(l.active, 0)
}

// FocusNext moves focus to the next window in depth-first order, wrapping
// around after the last one.
func (l *Layout) FocusNext() {
	paths := l.paths()
	i := slices.IndexFunc(paths, func(p []int) bool { return slices.Equal(p, l.active) })
	l.active = paths[(i+1)%len(paths)]
}

// Close removes the focused window; its sibling takes the place of the
// parent split and receives focus. The last window cannot be closed.
func (l *Layout) Close() bool {
	if len(l.active) == 0 {
		return false
	}
	parentPath := l.active[:len(l.active)-1]
	parent := l.at(parentPath)
	sibling := parent.children[1-l.active[len(l.active)-1]]
	*parent = *sibling

	l.active = append(slices.Clone(parentPath), firstLeaf(parent)...)
	return true
}

// at follows an index path from the root.
func (l *Layout) at(path []int) *node {
	n := l.root
	for _, i := range path {
		n = n.children[i]
	}
	return n
}

// paths lists the index paths of all leaves in depth-first order.
func (l *Layout) paths() [][]int {
	var out [][]int
	var walk func(n *node, prefix []int)
	walk = func(n *node, prefix []int) {
		if n.leaf() {
			out = append(out, slices.Clone(prefix))
			return
		}
		for i, c := range n.children {
			walk(c, append(prefix, i))
		}
	}
	walk(l.root, nil)
	return out
}

// firstLeaf returns the path of the first leaf below n, relative to n.
func firstLeaf(n *node) []int {
	var path []int
	for !n.leaf() {
		path = append(path, 0)
		n = n.children[0]
	}
	return path
}
