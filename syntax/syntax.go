// Package syntax implements the cursor layer (component C8): a
// mutable-reference-free navigation handle over a green tree. A
// cursor is (green node, parent cursor, offset in source); cursors
// are cheap to copy and become stale only when the tree they point
// into is replaced wholesale (see (*Node).ReplaceWith).
package syntax

import (
	"github.com/alexispurslane/orgcst/green"
	"github.com/alexispurslane/orgcst/kind"
)

// Range is a half-open byte range [Start, End) into the source text.
type Range struct {
	Start, End int
}

func (r Range) Len() int { return r.End - r.Start }

// Node is a cursor over a green *Node: the node itself, a pointer to
// its parent cursor (nil at the root), and the node's byte offset
// into the source.
type Node struct {
	green  *green.Node
	parent *Node
	offset int
	index  int // this node's position among its parent's node children
}

// NewRoot wraps a green root node as the cursor for offset zero, with
// no parent.
func NewRoot(g *green.Node) *Node {
	return &Node{green: g, parent: nil, offset: 0, index: 0}
}

func (n *Node) Kind() kind.Kind { return n.green.Kind() }
func (n *Node) Green() *green.Node { return n.green }
func (n *Node) Parent() *Node { return n.parent }

// Text returns the exact source text this node covers.
func (n *Node) Text() string { return green.Text(n.green) }

// TextRange returns this node's byte range in the source.
func (n *Node) TextRange() Range {
	return Range{Start: n.offset, End: n.offset + n.green.Len()}
}

// ChildrenWithTokens returns every direct child -- nodes wrapped as
// *Node and tokens wrapped as Token -- in document order.
func (n *Node) ChildrenWithTokens() []Element {
	children := n.green.Children()
	out := make([]Element, 0, len(children))
	offset := n.offset
	nodeIndex := 0
	for _, c := range children {
		switch g := c.(type) {
		case *green.Node:
			child := &Node{green: g, parent: n, offset: offset, index: nodeIndex}
			out = append(out, child)
			nodeIndex++
		case green.Token:
			out = append(out, Token{green: g, parent: n, offset: offset})
		}
		offset += c.Len()
	}
	return out
}

// Children returns only the node children, in document order (token
// children are skipped).
func (n *Node) Children() []*Node {
	children := n.green.Children()
	out := make([]*Node, 0, len(children))
	offset := n.offset
	idx := 0
	for _, c := range children {
		if g, ok := c.(*green.Node); ok {
			out = append(out, &Node{green: g, parent: n, offset: offset, index: idx})
			idx++
		}
		offset += c.Len()
	}
	return out
}

// FirstChild returns the first node child, or nil if n has none.
func (n *Node) FirstChild() *Node {
	children := n.Children()
	if len(children) == 0 {
		return nil
	}
	return children[0]
}

// LastChild returns the last node child, or nil if n has none.
func (n *Node) LastChild() *Node {
	children := n.Children()
	if len(children) == 0 {
		return nil
	}
	return children[len(children)-1]
}

// NextSibling returns the node immediately following n among their
// shared parent's node children, or nil if n is last or has no
// parent.
func (n *Node) NextSibling() *Node {
	if n.parent == nil {
		return nil
	}
	siblings := n.parent.Children()
	if n.index+1 >= len(siblings) {
		return nil
	}
	return siblings[n.index+1]
}

// PrevSibling returns the node immediately preceding n, or nil if n
// is first or has no parent.
func (n *Node) PrevSibling() *Node {
	if n.parent == nil || n.index == 0 {
		return nil
	}
	siblings := n.parent.Children()
	return siblings[n.index-1]
}

// ReplaceWith produces a new root node with the subtree rooted at n
// replaced by newGreen; every sibling of n (and of n's ancestors) is
// shared unchanged with the original tree. This is O(depth). Any
// cursor obtained before the call, including n itself, is stale
// afterward.
func (n *Node) ReplaceWith(newGreen *green.Node) *Node {
	if n.parent == nil {
		return NewRoot(newGreen)
	}
	oldChildren := n.parent.green.Children()
	newChildren := make([]green.Element, len(oldChildren))
	copy(newChildren, oldChildren)

	// node children interleave with token children in the slice, so
	// find the exact slot by counting only the node children seen.
	slot := -1
	nodeSeen := 0
	for idx, c := range oldChildren {
		if _, ok := c.(*green.Node); ok {
			if nodeSeen == n.index {
				slot = idx
				break
			}
			nodeSeen++
		}
	}
	if slot < 0 {
		return nil
	}
	newChildren[slot] = newGreen

	newParentGreen := green.NewNode(n.parent.green.Kind(), newChildren)
	newParent := n.parent.ReplaceWith(newParentGreen)
	return newParent.Children()[n.index]
}

// Token is a cursor over a green token leaf.
type Token struct {
	green  green.Token
	parent *Node
	offset int
}

func (t Token) Kind() kind.Kind  { return t.green.Kind() }
func (t Token) Text() string     { return t.green.Text() }
func (t Token) Parent() *Node    { return t.parent }
func (t Token) TextRange() Range { return Range{Start: t.offset, End: t.offset + t.green.Len()} }

// Element is either a *Node or a Token, as returned by
// (*Node).ChildrenWithTokens.
type Element interface {
	Kind() kind.Kind
	TextRange() Range
}
