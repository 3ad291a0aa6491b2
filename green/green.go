// Package green implements the immutable structural layer of the
// syntax tree (component C7 of the parser design): kind-tagged nodes
// and tokens whose children never change once built, and whose equal
// subtrees are free to share the same underlying storage.
//
// A green tree carries no position information — just shape and
// bytes. Source offsets are computed by the cursor layer in package
// syntax by walking the tree and summing lengths.
package green

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/alexispurslane/orgcst/kind"
)

// Element is either a *Node or a Token. It is the unit of a node's
// child list.
type Element interface {
	Kind() kind.Kind
	Len() int
}

// Token is a terminal: a kind tag plus the exact source text it
// covers. Token texts are substrings of the original source buffer,
// so constructing one never copies.
type Token struct {
	kind kind.Kind
	text string
}

// NewToken returns a token of the given kind covering text.
func NewToken(k kind.Kind, text string) Token {
	if interned, ok := internToken(k, text); ok {
		return interned
	}
	return Token{kind: k, text: text}
}

func (t Token) Kind() kind.Kind { return t.kind }
func (t Token) Len() int        { return len(t.text) }
func (t Token) Text() string    { return t.text }

// Node is a nonterminal: a kind tag plus an ordered list of children,
// each either another *Node or a Token. Nodes are only ever
// constructed via NewNode, which interns structurally-equal subtrees
// so that identical fragments (a lone space token, an empty
// paragraph, ...) share one allocation.
type Node struct {
	kind     kind.Kind
	children []Element
	len      int
}

func (n *Node) Kind() kind.Kind     { return n.kind }
func (n *Node) Len() int            { return n.len }
func (n *Node) Children() []Element { return n.children }

// NewNode builds a node of the given kind from children, reusing an
// existing structurally-equal *Node when one has already been built
// in this process. children must not be mutated after the call.
func NewNode(k kind.Kind, children []Element) *Node {
	total := 0
	for _, c := range children {
		total += c.Len()
	}
	candidate := &Node{kind: k, children: children, len: total}
	return internNode(candidate)
}

// Text concatenates the text of every token reachable from elem, in
// document order. For a well-formed tree this equals the exact source
// slice the element covers (invariant I1).
func Text(elem Element) string {
	var b strings.Builder
	b.Grow(elem.Len())
	writeText(&b, elem)
	return b.String()
}

func writeText(b *strings.Builder, elem Element) {
	switch e := elem.(type) {
	case Token:
		b.WriteString(e.text)
	case *Node:
		for _, c := range e.children {
			writeText(b, c)
		}
	}
}

// Equal reports whether two elements have the same kind and, if
// nodes, structurally equal children. Because NewNode interns, two
// *Node values built from equal children are always the same pointer,
// so this is cheap; it still performs a full structural comparison
// for nodes built by callers that bypass the interner (tests).
func Equal(a, b Element) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	at, aTok := a.(Token)
	bt, bTok := b.(Token)
	if aTok != bTok {
		return false
	}
	if aTok {
		return at.text == bt.text
	}
	an, bn := a.(*Node), b.(*Node)
	if an == bn {
		return true
	}
	if len(an.children) != len(bn.children) {
		return false
	}
	for i := range an.children {
		if !Equal(an.children[i], bn.children[i]) {
			return false
		}
	}
	return true
}

// interning

var (
	nodeInternMu sync.Mutex
	nodeIntern   = map[string]*Node{}

	tokenInternMu sync.Mutex
	tokenIntern   = map[string]Token{}
)

// internToken only caches tokens whose text is short and likely to
// repeat (single punctuation, a run of spaces, a bare newline) --
// interning arbitrary TEXT tokens would just grow the map without
// ever seeing a repeat.
func internToken(k kind.Kind, text string) (Token, bool) {
	if len(text) > 2 {
		return Token{}, false
	}
	key := tokenKey(k, text)
	tokenInternMu.Lock()
	defer tokenInternMu.Unlock()
	if t, ok := tokenIntern[key]; ok {
		return t, true
	}
	t := Token{kind: k, text: text}
	tokenIntern[key] = t
	return t, true
}

func tokenKey(k kind.Kind, text string) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(int(k)))
	b.WriteByte(0)
	b.WriteString(text)
	return b.String()
}

func internNode(n *Node) *Node {
	key := nodeKey(n)
	nodeInternMu.Lock()
	defer nodeInternMu.Unlock()
	if existing, ok := nodeIntern[key]; ok {
		return existing
	}
	nodeIntern[key] = n
	return n
}

// nodeKey builds a structural fingerprint for n. Child *Node pointers
// are themselves canonical (they came out of internNode), so
// comparing pointer identity here is sufficient and avoids re-hashing
// already-shared subtrees.
func nodeKey(n *Node) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(int(n.kind)))
	for _, c := range n.children {
		b.WriteByte(0)
		b.WriteString(strconv.Itoa(int(c.Kind())))
		b.WriteByte(0)
		switch e := c.(type) {
		case Token:
			b.WriteString(e.text)
		case *Node:
			fmt.Fprintf(&b, "%p", e)
		}
	}
	return b.String()
}
