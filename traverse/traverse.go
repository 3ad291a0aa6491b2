// Package traverse implements the depth-first visitor protocol
// (component C10): container kinds emit a matched Enter/Leave pair,
// leaf kinds emit a single event, and the visitor can stop traversal
// entirely, skip a container's children, or finish a container early
// and skip its remaining siblings.
package traverse

import (
	"github.com/alexispurslane/orgcst/syntax"
)

// EventKind distinguishes the three shapes of event a visitor
// receives.
type EventKind int

const (
	// Enter fires when a container node is first reached, before any
	// of its children's events.
	Enter EventKind = iota
	// Leave fires after a container node's last child event.
	Leave
	// Single fires once for a leaf node or token and has no paired
	// Leave.
	Single
)

// Event is one step of a traversal.
type Event struct {
	Kind EventKind
	Node *syntax.Node  // set for Enter, Leave, and node-shaped Single events
	Tok  *syntax.Token // set for token-shaped Single events (e.g. TEXT)
}

// action is the control decision a Visitor made for the event just
// delivered.
type action int

const (
	actionContinue action = iota
	actionStop
	actionSkip
	actionUp
)

// Context lets a Visitor control the remainder of the walk from
// inside its Visit call.
type Context struct {
	act action
}

// Stop aborts traversal entirely; no further events are delivered.
func (c *Context) Stop() { c.act = actionStop }

// Skip, valid only in response to an Enter event, skips the just-
// entered container's children; no Leave event fires for it either.
func (c *Context) Skip() { c.act = actionSkip }

// Up finishes the current container (its Leave event still fires)
// and skips the remaining siblings at that level, resuming at the
// grandparent's next child.
func (c *Context) Up() { c.act = actionUp }

// Visitor receives every event of a Walk in document order.
type Visitor interface {
	Visit(ev Event, ctx *Context)
}

// VisitorFunc adapts a plain function to the Visitor interface.
type VisitorFunc func(ev Event, ctx *Context)

func (f VisitorFunc) Visit(ev Event, ctx *Context) { f(ev, ctx) }

// Walk performs a depth-first traversal of root, delivering events to
// v in document order, until v calls Context.Stop or the tree is
// exhausted.
func Walk(root *syntax.Node, v Visitor) {
	ctx := &Context{}
	walk(root, v, ctx)
}

// walk returns true if the caller should keep going (false means
// Stop was requested and the caller must unwind immediately).
func walk(n *syntax.Node, v Visitor, ctx *Context) bool {
	if n.Kind().IsContainer() {
		ctx.act = actionContinue
		v.Visit(Event{Kind: Enter, Node: n}, ctx)
		switch ctx.act {
		case actionStop:
			return false
		case actionSkip:
			return true
		}
		skipRemaining := ctx.act == actionUp

		if !skipRemaining {
			for _, el := range n.ChildrenWithTokens() {
				switch e := el.(type) {
				case *syntax.Node:
					if !walk(e, v, ctx) {
						return false
					}
					if ctx.act == actionUp {
						skipRemaining = true
					}
				case syntax.Token:
					ctx.act = actionContinue
					v.Visit(Event{Kind: Single, Tok: &e}, ctx)
					if ctx.act == actionStop {
						return false
					}
					if ctx.act == actionUp {
						skipRemaining = true
					}
				}
				if skipRemaining {
					break
				}
			}
		}

		ctx.act = actionContinue
		v.Visit(Event{Kind: Leave, Node: n}, ctx)
		if ctx.act == actionStop {
			return false
		}
		return true
	}

	ctx.act = actionContinue
	v.Visit(Event{Kind: Single, Node: n}, ctx)
	return ctx.act != actionStop
}
