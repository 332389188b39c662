package ast

import "github.com/rand/ananke-sub006/internal/queue"

// Visit is called once per node during a traversal. Returning false stops
// the traversal early.
type Visit func(n *Node) bool

// PreOrder walks root and its descendants depth-first, visiting a node
// before its children, using only named children (anonymous tokens carry
// no extraction-relevant information — spec.md §4.1). A false return from
// visit aborts the whole walk, not only the current subtree.
func PreOrder(root *Node, visit Visit) {
	var walk func(n *Node) bool
	walk = func(n *Node) bool {
		if n.IsNil() {
			return true
		}
		if !visit(n) {
			return false
		}
		count := n.NamedChildCount()
		for i := uint(0); i < count; i++ {
			if !walk(n.NamedChild(i)) {
				return false
			}
		}
		return true
	}
	walk(root)
}

// PostOrder walks root and its descendants depth-first, visiting a node
// after all of its children have been visited. Unlike PreOrder, a false
// return from visit stops the remainder of the walk but does not undo
// children already visited.
func PostOrder(root *Node, visit Visit) bool {
	if root.IsNil() {
		return true
	}
	n := root.NamedChildCount()
	for i := uint(0); i < n; i++ {
		child := root.NamedChild(i)
		if child.IsNil() {
			continue
		}
		if !PostOrder(child, visit) {
			return false
		}
	}
	return visit(root)
}

// BFS walks root breadth-first, backed by internal/queue's ring buffer so
// wide trees don't pay the O(n) cost of a slice-shift queue. Every node is
// visited exactly once.
func BFS(root *Node, visit Visit) {
	if root.IsNil() {
		return
	}
	q := queue.New[*Node]()
	q.Enqueue(root)
	for {
		n, ok := q.Dequeue()
		if !ok {
			break
		}
		if !visit(n) {
			return
		}
		count := n.NamedChildCount()
		for i := uint(0); i < count; i++ {
			child := n.NamedChild(i)
			if child.IsNil() {
				continue
			}
			q.Enqueue(child)
		}
	}
}

// FindFirst returns the first node (pre-order) for which match returns
// true, or nil if none match.
func FindFirst(root *Node, match func(n *Node) bool) *Node {
	var found *Node
	PreOrder(root, func(n *Node) bool {
		if match(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindAll returns every node (pre-order) for which match returns true.
func FindAll(root *Node, match func(n *Node) bool) []*Node {
	var out []*Node
	PreOrder(root, func(n *Node) bool {
		if match(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// FindByType returns every node whose Kind() equals kind.
func FindByType(root *Node, kind string) []*Node {
	return FindAll(root, func(n *Node) bool { return n.Kind() == kind })
}

// FindByTypes collects every node whose Kind() is in kinds, in a single
// pass over the tree, keyed by node kind. This replaces calling FindByType
// once per kind (spec.md §9: extraction walks the tree once and classifies
// nodes as it goes, rather than re-walking per node type).
func FindByTypes(root *Node, kinds []string) map[string][]*Node {
	set := make(map[string]bool, len(kinds))
	for _, k := range kinds {
		set[k] = true
	}
	out := make(map[string][]*Node, len(kinds))
	PreOrder(root, func(n *Node) bool {
		if set[n.Kind()] {
			out[n.Kind()] = append(out[n.Kind()], n)
		}
		return true
	})
	return out
}
