package ast

import tree_sitter "github.com/tree-sitter/go-tree-sitter"

// Tree exclusively owns the parsed AST and the C resources behind it
// (spec.md §3's ownership summary). Close must be called on every exit
// path once the Tree is no longer needed.
type Tree struct {
	inner  *tree_sitter.Tree
	source []byte
}

// Root returns the Tree's root Node. Root's validity is bounded by the
// lifetime of Tree — callers must not retain a Node after calling Close.
func (t *Tree) Root() *Node {
	if t == nil || t.inner == nil {
		return nil
	}
	root := t.inner.RootNode()
	if root == nil {
		return nil
	}
	return &Node{inner: root, source: t.source}
}

// Close releases the underlying tree-sitter C resources. Safe to call
// multiple times.
func (t *Tree) Close() {
	if t == nil || t.inner == nil {
		return
	}
	t.inner.Close()
	t.inner = nil
}

// Node is a lightweight handle borrowed from a Tree. It must never be
// handed to a caller outside the extraction run that parsed its Tree
// (spec.md §9).
type Node struct {
	inner  *tree_sitter.Node
	source []byte
}

// IsNil reports whether this Node wraps no underlying tree-sitter node.
func (n *Node) IsNil() bool {
	return n == nil || n.inner == nil
}

// Kind returns the grammar-defined node type string (e.g.
// "function_declaration", "FnProto").
func (n *Node) Kind() string {
	if n.IsNil() {
		return ""
	}
	return n.inner.Kind()
}

// NamedChildCount returns the number of named children, skipping anonymous
// tokens (spec.md §4.1).
func (n *Node) NamedChildCount() uint {
	if n.IsNil() {
		return 0
	}
	return n.inner.NamedChildCount()
}

// NamedChild returns the i-th named child, or nil if out of range.
func (n *Node) NamedChild(i uint) *Node {
	if n.IsNil() {
		return nil
	}
	child := n.inner.NamedChild(i)
	if child == nil {
		return nil
	}
	return &Node{inner: child, source: n.source}
}

// ChildCount returns the number of children, named and anonymous.
func (n *Node) ChildCount() uint {
	if n.IsNil() {
		return 0
	}
	return n.inner.ChildCount()
}

// Child returns the i-th child (named or anonymous), or nil if out of
// range.
func (n *Node) Child(i uint) *Node {
	if n.IsNil() {
		return nil
	}
	child := n.inner.Child(i)
	if child == nil {
		return nil
	}
	return &Node{inner: child, source: n.source}
}

// ChildByFieldName returns the child bound to the given grammar field
// (e.g. "name", "body"), or nil if absent.
func (n *Node) ChildByFieldName(field string) *Node {
	if n.IsNil() {
		return nil
	}
	child := n.inner.ChildByFieldName(field)
	if child == nil {
		return nil
	}
	return &Node{inner: child, source: n.source}
}

// StartByte returns the byte offset where this node begins.
func (n *Node) StartByte() uint {
	if n.IsNil() {
		return 0
	}
	return n.inner.StartByte()
}

// EndByte returns the byte offset where this node ends, clipped to the
// source length by Text (spec.md §4.1's text extraction policy).
func (n *Node) EndByte() uint {
	if n.IsNil() {
		return 0
	}
	return n.inner.EndByte()
}

// Point is a 0-based (row, column) position, as tree-sitter reports it.
type Point struct {
	Row    uint
	Column uint
}

// StartPoint returns the 0-based row/column of the node's start.
func (n *Node) StartPoint() Point {
	if n.IsNil() {
		return Point{}
	}
	p := n.inner.StartPosition()
	return Point{Row: p.Row, Column: p.Column}
}

// EndPoint returns the 0-based row/column of the node's end.
func (n *Node) EndPoint() Point {
	if n.IsNil() {
		return Point{}
	}
	p := n.inner.EndPosition()
	return Point{Row: p.Row, Column: p.Column}
}

// HasError reports recoverable structural damage anywhere under this node.
func (n *Node) HasError() bool {
	if n.IsNil() {
		return false
	}
	return n.inner.HasError()
}

// Text returns a byte-range view into the original source. EndByte is
// clipped to the source length rather than panicking or failing, per
// spec.md §4.1.
func (n *Node) Text() string {
	if n.IsNil() {
		return ""
	}
	start := int(n.inner.StartByte())
	end := int(n.inner.EndByte())
	if start > len(n.source) {
		return ""
	}
	if end > len(n.source) {
		end = len(n.source)
	}
	if start > end {
		return ""
	}
	return string(n.source[start:end])
}
