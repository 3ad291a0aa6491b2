package green

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexispurslane/orgcst/kind"
)

// snapshot projects an Element onto plain maps/slices so go-cmp can
// walk it without tripping over Node's unexported fields.
func snapshot(e Element) any {
	switch v := e.(type) {
	case Token:
		return map[string]string{"kind": v.Kind().String(), "text": v.Text()}
	case *Node:
		children := make([]any, len(v.Children()))
		for i, c := range v.Children() {
			children[i] = snapshot(c)
		}
		return map[string]any{"kind": v.Kind().String(), "children": children}
	default:
		return nil
	}
}

func TestTextReproducesSource(t *testing.T) {
	n := NewNode(kind.Paragraph, []Element{
		NewToken(kind.Text, "hello "),
		NewToken(kind.Text, "world"),
	})
	assert.Equal(t, "hello world", Text(n))
	assert.Equal(t, len("hello world"), n.Len())
}

func TestEqualStructural(t *testing.T) {
	a := NewNode(kind.Bold, []Element{NewToken(kind.Star, "*"), NewToken(kind.Text, "x"), NewToken(kind.Star, "*")})
	b := NewNode(kind.Bold, []Element{NewToken(kind.Star, "*"), NewToken(kind.Text, "x"), NewToken(kind.Star, "*")})
	assert.True(t, Equal(a, b))

	c := NewNode(kind.Bold, []Element{NewToken(kind.Star, "*"), NewToken(kind.Text, "y"), NewToken(kind.Star, "*")})
	assert.False(t, Equal(a, c))
}

func TestNewNodeInternsStructurallyEqualTrees(t *testing.T) {
	build := func() *Node {
		return NewNode(kind.Italic, []Element{NewToken(kind.Slash, "/"), NewToken(kind.Text, "hi"), NewToken(kind.Slash, "/")})
	}
	a, b := build(), build()
	require.True(t, Equal(a, b))
	assert.Same(t, a, b)
}

func TestNewTokenInternsShortText(t *testing.T) {
	a := NewToken(kind.Star, "*")
	b := NewToken(kind.Star, "*")
	assert.Equal(t, a, b)
}

// TestSnapshotMatchesGoCmp cross-checks Equal against an independent
// structural comparison (go-cmp over a plain-value projection), so a
// future change to Equal's traversal can't silently drift from what
// the tree actually looks like.
func TestSnapshotMatchesGoCmp(t *testing.T) {
	a := NewNode(kind.Bold, []Element{NewToken(kind.Star, "*"), NewToken(kind.Text, "x"), NewToken(kind.Star, "*")})
	b := NewNode(kind.Bold, []Element{NewToken(kind.Star, "*"), NewToken(kind.Text, "x"), NewToken(kind.Star, "*")})
	if diff := cmp.Diff(snapshot(a), snapshot(b)); diff != "" {
		t.Errorf("structurally equal trees diverge under go-cmp (-want +got):\n%s", diff)
	}

	c := NewNode(kind.Bold, []Element{NewToken(kind.Star, "*"), NewToken(kind.Text, "y"), NewToken(kind.Star, "*")})
	if diff := cmp.Diff(snapshot(a), snapshot(c)); diff == "" {
		t.Error("expected go-cmp to report a difference for unequal trees")
	}
	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
}
