// Package org is the document driver (component C6): it assembles
// the other packages in this module -- the element and object
// recognizers, the green tree, the cursor layer, and the traversal
// protocol -- into a single Parse entry point and the Document handle
// returned from it.
package org

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/alexispurslane/orgcst/green"
	"github.com/alexispurslane/orgcst/internal/combinator"
	"github.com/alexispurslane/orgcst/internal/element"
	"github.com/alexispurslane/orgcst/internal/input"
	"github.com/alexispurslane/orgcst/kind"
	"github.com/alexispurslane/orgcst/syntax"
	"github.com/alexispurslane/orgcst/traverse"
)

// Document is the result of a Parse call: the green tree, the cursor
// rooted on it, the configuration it was parsed with, and any
// diagnostics accumulated along the way.
type Document struct {
	config *Configuration
	green  *green.Node
	root   *syntax.Node
	errs   error
}

// Parse builds a Document from source. Malformed Org syntax is never
// an error -- every recognizer falls back to raw TEXT rather than
// failing -- so the only diagnostic Document.Err can return is one
// recorded when Parse recovers from an internal panic.
func Parse(source string, config *Configuration) (d *Document) {
	if config == nil {
		config = New()
	}
	d = &Document{config: config}

	defer func() {
		if r := recover(); r != nil {
			d.addError(&ParseError{
				Type:    ErrorTypeValidation,
				Message: fmt.Sprintf("recovered from panic: %v", r),
			})
			d.green = green.NewNode(kind.Document, nil)
			d.root = syntax.NewRoot(d.green)
		}
	}()

	i := input.New(source, config.inputConfig())
	var children []green.Element

	for !i.IsEmpty() {
		if blanks, ws := combinator.BlankLines(i); len(ws) > 0 {
			children = append(children, ws...)
			i = blanks
			continue
		}

		if element.HeadlineStars(i.S) > 0 {
			elem, n, ok := element.Node(i)
			if !ok {
				break
			}
			children = append(children, elem)
			i = i.From(n)
			continue
		}

		rest, elems := element.Nodes(i, true)
		children = append(children, elems...)
		i = rest
	}

	d.green = green.NewNode(kind.Document, children)
	d.root = syntax.NewRoot(d.green)
	return d
}

func (d *Document) addError(e *ParseError) {
	d.errs = multierr.Append(d.errs, e)
}

// Err returns the combined diagnostics recorded during Parse, or nil
// if there were none.
func (d *Document) Err() error { return d.errs }

// Config returns the configuration this document was parsed with.
func (d *Document) Config() *Configuration { return d.config }

// Green returns the document's root green node.
func (d *Document) Green() *green.Node { return d.green }

// Root returns the document's root cursor.
func (d *Document) Root() *syntax.Node { return d.root }

// ToOrg reproduces the exact source text this document was parsed
// from (invariant I1).
func (d *Document) ToOrg() string { return green.Text(d.green) }

// Traverse runs v over the document's tree in document order.
func (d *Document) Traverse(v traverse.Visitor) { traverse.Walk(d.root, v) }
