package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexispurslane/orgcst/green"
	"github.com/alexispurslane/orgcst/internal/element"
	"github.com/alexispurslane/orgcst/internal/input"
	"github.com/alexispurslane/orgcst/kind"
	"github.com/alexispurslane/orgcst/syntax"
)

func parseDocument(t *testing.T, src string) Document {
	t.Helper()
	cfg := &input.Config{TodoKeywords: []string{"TODO"}, DoneKeywords: []string{"DONE"}}
	i := input.New(src, cfg)

	var children []green.Element
	for !i.IsEmpty() {
		if element.HeadlineStars(i.S) > 0 {
			elem, n, ok := element.Node(i)
			require.True(t, ok)
			children = append(children, elem)
			i = i.From(n)
			continue
		}
		rest, elems := element.Nodes(i, true)
		children = append(children, elems...)
		i = rest
	}

	root := syntax.NewRoot(green.NewNode(kind.Document, children))
	doc, ok := NewDocument(root)
	require.True(t, ok)
	return doc
}

func TestDocumentPreBlank(t *testing.T) {
	doc := parseDocument(t, "\n\n* Headline\n")
	assert.Equal(t, 2, doc.PreBlank())
}

func TestHeadlineAccessors(t *testing.T) {
	doc := parseDocument(t, "** TODO [#A] Write docs :work:urgent:\nDEADLINE: <2026-08-01 Sat>\nbody text\n")
	headlines := doc.Headlines()
	require.Len(t, headlines, 1)

	h := headlines[0]
	assert.Equal(t, 2, h.Level())
	assert.Equal(t, "TODO", h.TodoKeyword())
	assert.Equal(t, Todo, h.TodoTypeOf())
	assert.Equal(t, byte('A'), h.Priority())
	assert.Equal(t, "Write docs", h.TitleText())
	assert.Equal(t, []string{"work", "urgent"}, h.Tags())
	assert.False(t, h.IsCommented())
	assert.False(t, h.IsArchived())

	dl, ok := h.Deadline()
	require.True(t, ok)
	year, ok := dl.YearStart()
	require.True(t, ok)
	assert.Equal(t, 2026, year)

	section, ok := h.Section()
	require.True(t, ok)
	assert.Contains(t, section.Text(), "body text")
}

func TestHeadlineArchivedAndCommented(t *testing.T) {
	doc := parseDocument(t, "* COMMENT old note :ARCHIVE:\n")
	h := doc.Headlines()[0]
	assert.True(t, h.IsCommented())
	assert.True(t, h.IsArchived())
}

func TestNestedHeadlines(t *testing.T) {
	doc := parseDocument(t, "* Parent\n** Child one\n** Child two\n")
	parent := doc.Headlines()[0]
	children := parent.Children()
	require.Len(t, children, 2)
	assert.Equal(t, "Child one", children[0].TitleText())
	assert.Equal(t, "Child two", children[1].TitleText())
}

func TestKeywordAccessors(t *testing.T) {
	i := input.New("#+TITLE: My Title\n", &input.Config{})
	elem, _, ok := element.Node(i)
	require.True(t, ok)
	kw, ok := NewKeyword(syntax.NewRoot(elem.(*green.Node)))
	require.True(t, ok)
	assert.Equal(t, "TITLE", kw.Key())
	assert.Equal(t, " My Title", kw.Value())
}

func TestAffiliatedKeywordValuePreservesLeadingSpace(t *testing.T) {
	cfg := &input.Config{AffiliatedKeywords: []string{"CAPTION"}}
	i := input.New("#+CAPTION: cap\n| a | b |\n", cfg)
	elem, _, ok := element.Node(i)
	require.True(t, ok)

	node := elem.(*green.Node)
	require.Equal(t, kind.AffiliatedKeyword, node.Children()[0].Kind())

	kw, ok := NewKeyword(syntax.NewRoot(node.Children()[0].(*green.Node)))
	require.True(t, ok)
	assert.Equal(t, "CAPTION", kw.Key())
	assert.Equal(t, " cap", kw.Value())
}

func TestSourceBlockLanguageAndHeaderArgs(t *testing.T) {
	src := "#+BEGIN_SRC go :tangle out.go :mkdir yes\nfunc main() {}\n#+END_SRC\n"
	i := input.New(src, &input.Config{})
	elem, n, ok := element.Node(i)
	require.True(t, ok)
	assert.Equal(t, len(src), n)

	sb, ok := NewSourceBlock(syntax.NewRoot(elem.(*green.Node)))
	require.True(t, ok)
	assert.Equal(t, "go", sb.Language())

	tangle, ok := sb.Tangle()
	require.True(t, ok)
	assert.Equal(t, "out.go", tangle)

	mkdir, ok := sb.Mkdir()
	require.True(t, ok)
	assert.Equal(t, "yes", mkdir)

	assert.Contains(t, sb.Content(), "func main")
}

func TestOrgTableHasHeader(t *testing.T) {
	src := "| a | b |\n|---+---|\n| 1 | 2 |\n"
	i := input.New(src, &input.Config{})
	elem, _, ok := element.Node(i)
	require.True(t, ok)
	tbl, ok := NewOrgTable(syntax.NewRoot(elem.(*green.Node)))
	require.True(t, ok)
	assert.True(t, tbl.HasHeader())
	assert.Len(t, tbl.Rows(), 3)
}

func TestLinkPath(t *testing.T) {
	i := input.New("[[https://example.com][desc]]\n", &input.Config{})
	_, elems := element.Nodes(i, false)
	require.Len(t, elems, 1)

	var linkNode *green.Node
	findKind(elems[0].(*green.Node), kind.Link, &linkNode)
	require.NotNil(t, linkNode)

	link, ok := NewLink(syntax.NewRoot(linkNode))
	require.True(t, ok)
	assert.Equal(t, "https://example.com", link.Path())
}

func findKind(n *green.Node, k kind.Kind, out **green.Node) {
	if n.Kind() == k {
		*out = n
		return
	}
	for _, c := range n.Children() {
		if cn, ok := c.(*green.Node); ok {
			findKind(cn, k, out)
			if *out != nil {
				return
			}
		}
	}
}
