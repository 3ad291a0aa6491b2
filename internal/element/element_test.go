package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexispurslane/orgcst/green"
	"github.com/alexispurslane/orgcst/internal/input"
	"github.com/alexispurslane/orgcst/kind"
)

func in(s string) input.Input {
	return input.New(s, &input.Config{
		TodoKeywords:       []string{"TODO"},
		DoneKeywords:       []string{"DONE"},
		AffiliatedKeywords: []string{"CAPTION", "HEADER", "NAME", "PLOT", "RESULTS"},
	})
}

func assertRoundTrips(t *testing.T, src string, elem green.Element, n int) {
	t.Helper()
	assert.Equal(t, len(src), n)
	assert.Equal(t, src, green.Text(elem))
}

func TestRule(t *testing.T) {
	elem, n, ok := Node(in("-----\n"))
	require.True(t, ok)
	assert.Equal(t, kind.Rule, elem.Kind())
	assertRoundTrips(t, "-----\n", elem, n)
}

func TestRuleRejectsShortDashRun(t *testing.T) {
	_, _, ok := Node(in("---\n"))
	assert.False(t, ok)
}

func TestFixedWidthRunOfLines(t *testing.T) {
	src := ": foo\n: bar\n"
	elem, n, ok := Node(in(src))
	require.True(t, ok)
	assert.Equal(t, kind.FixedWidth, elem.Kind())
	assertRoundTrips(t, src, elem, n)
}

func TestCommentLines(t *testing.T) {
	src := "# hello\n# world\n"
	elem, n, ok := Node(in(src))
	require.True(t, ok)
	assert.Equal(t, kind.Comment, elem.Kind())
	assertRoundTrips(t, src, elem, n)
}

func TestCommentDoesNotSwallowKeyword(t *testing.T) {
	_, _, ok := Node(in("#+TITLE: hi\n"))
	require.True(t, ok)
	// a "#+" line is a keyword, never a comment.
	elem, _, _ := Node(in("#+TITLE: hi\n"))
	assert.NotEqual(t, kind.Comment, elem.Kind())
}

func TestClockWithDuration(t *testing.T) {
	src := "CLOCK: [2026-07-29 Wed 09:00] => 1:00\n"
	elem, n, ok := Node(in(src))
	require.True(t, ok)
	assert.Equal(t, kind.Clock, elem.Kind())
	assertRoundTrips(t, src, elem, n)
}

func TestClockWithoutDuration(t *testing.T) {
	src := "CLOCK: [2026-07-29 Wed 09:00]\n"
	elem, n, ok := Node(in(src))
	require.True(t, ok)
	assert.Equal(t, kind.Clock, elem.Kind())
	assertRoundTrips(t, src, elem, n)
}

func TestOrgTableWithRuleAndTblfm(t *testing.T) {
	src := "| a | b |\n|---+---|\n| 1 | 2 |\n#+TBLFM: @2$1=1\n"
	elem, n, ok := Node(in(src))
	require.True(t, ok)
	assert.Equal(t, kind.OrgTable, elem.Kind())
	assertRoundTrips(t, src, elem, n)

	node := elem.(*green.Node)
	require.Len(t, node.Children(), 4)
	assert.Equal(t, kind.OrgTableStandardRow, node.Children()[0].Kind())
	assert.Equal(t, kind.OrgTableRuleRow, node.Children()[1].Kind())
	assert.Equal(t, kind.OrgTableStandardRow, node.Children()[2].Kind())
	assert.Equal(t, kind.Keyword, node.Children()[3].Kind())
}

func TestTableElBlock(t *testing.T) {
	src := "+----+\n| a  |\n+----+\n"
	elem, n, ok := Node(in(src))
	require.True(t, ok)
	assert.Equal(t, kind.TableEl, elem.Kind())
	assertRoundTrips(t, src, elem, n)
}

func TestListUnordered(t *testing.T) {
	src := "- first\n- second\n"
	elem, n, ok := Node(in(src))
	require.True(t, ok)
	assert.Equal(t, kind.List, elem.Kind())
	assertRoundTrips(t, src, elem, n)

	node := elem.(*green.Node)
	require.Len(t, node.Children(), 2)
	assert.Equal(t, kind.ListItem, node.Children()[0].Kind())
}

func TestListOrderedWithCheckbox(t *testing.T) {
	src := "1. [X] done item\n2. [ ] pending item\n"
	elem, n, ok := Node(in(src))
	require.True(t, ok)
	assert.Equal(t, kind.List, elem.Kind())
	assertRoundTrips(t, src, elem, n)
}

func TestListItemWithTag(t *testing.T) {
	src := "- term :: definition text\n"
	elem, _, ok := Node(in(src))
	require.True(t, ok)
	node := elem.(*green.Node)
	item := node.Children()[0].(*green.Node)
	var sawTag bool
	for _, c := range item.Children() {
		if c.Kind() == kind.ListItemTag {
			sawTag = true
			assert.Equal(t, "term", green.Text(c))
		}
	}
	assert.True(t, sawTag)
}

func TestLatexEnvironmentBlock(t *testing.T) {
	src := "\\begin{equation}\nx = y\n\\end{equation}\n"
	elem, n, ok := Node(in(src))
	require.True(t, ok)
	assert.Equal(t, kind.LatexEnvironment, elem.Kind())
	assertRoundTrips(t, src, elem, n)
}

func TestFootnoteDefinition(t *testing.T) {
	src := "[fn:1] Some note text.\n"
	elem, n, ok := Node(in(src))
	require.True(t, ok)
	assert.Equal(t, kind.FnDef, elem.Kind())
	assertRoundTrips(t, src, elem, n)
}

func TestGenericDrawer(t *testing.T) {
	src := ":LOGBOOK:\nsome content\n:END:\n"
	elem, n, ok := Node(in(src))
	require.True(t, ok)
	assert.Equal(t, kind.Drawer, elem.Kind())
	assertRoundTrips(t, src, elem, n)
}

func TestPropertyDrawer(t *testing.T) {
	src := ":PROPERTIES:\n:CUSTOM_ID: my-id\n:END:\n"
	elem, n, ok := Node(in(src))
	require.True(t, ok)
	assert.Equal(t, kind.PropertyDrawer, elem.Kind())
	assertRoundTrips(t, src, elem, n)

	node := elem.(*green.Node)
	var sawProp bool
	for _, c := range node.Children() {
		if c.Kind() == kind.NodeProperty {
			sawProp = true
		}
	}
	assert.True(t, sawProp)
}

func TestGreaterBlockQuote(t *testing.T) {
	src := "#+BEGIN_QUOTE\nsome *bold* text\n#+END_QUOTE\n"
	elem, n, ok := Node(in(src))
	require.True(t, ok)
	assert.Equal(t, kind.QuoteBlock, elem.Kind())
	assertRoundTrips(t, src, elem, n)
}

func TestLesserBlockSource(t *testing.T) {
	src := "#+BEGIN_SRC go\nfunc main() {}\n#+END_SRC\n"
	elem, n, ok := Node(in(src))
	require.True(t, ok)
	assert.Equal(t, kind.SourceBlock, elem.Kind())
	assertRoundTrips(t, src, elem, n)
}

func TestLesserBlockEscapesLeadingComma(t *testing.T) {
	src := "#+BEGIN_EXAMPLE\n,* not a headline\n#+END_EXAMPLE\n"
	elem, n, ok := Node(in(src))
	require.True(t, ok)
	assertRoundTrips(t, src, elem, n)

	node := elem.(*green.Node)
	var sawComma bool
	for _, c := range node.Children() {
		if c.Kind() != kind.BlockContent {
			continue
		}
		content := c.(*green.Node)
		for _, cc := range content.Children() {
			if cc.Kind() == kind.Comma {
				sawComma = true
			}
		}
	}
	assert.True(t, sawComma)
}

func TestDynBlock(t *testing.T) {
	src := "#+BEGIN: clocktable :scope subtree\nsome content\n#+END:\n"
	elem, n, ok := Node(in(src))
	require.True(t, ok)
	assert.Equal(t, kind.DynBlock, elem.Kind())
	assertRoundTrips(t, src, elem, n)
}

func TestAffiliatedKeywordAttachesToFollowingBlock(t *testing.T) {
	src := "#+NAME: fig1\n#+BEGIN_SRC go\nfunc f() {}\n#+END_SRC\n"
	elem, n, ok := Node(in(src))
	require.True(t, ok)
	assert.Equal(t, kind.SourceBlock, elem.Kind())
	assertRoundTrips(t, src, elem, n)

	node := elem.(*green.Node)
	assert.Equal(t, kind.AffiliatedKeyword, node.Children()[0].Kind())
}

func TestAffiliatedKeywordStandaloneEmitsOrdinaryKeyword(t *testing.T) {
	src := "#+NAME: orphan\n\nParagraph after a blank line.\n"
	elem, n, ok := Node(in(src))
	require.True(t, ok)
	assert.Equal(t, kind.Keyword, elem.Kind())
	assertRoundTrips(t, "#+NAME: orphan\n", elem, n)
}

func TestAffiliatedKeywordRunStandaloneEmitsEachLine(t *testing.T) {
	src := "#+NAME: one\n#+CAPTION: two\nParagraph, not attachable since it's not a table/block.\n"
	elem, n, ok := Node(in(src))
	require.True(t, ok)
	assert.Equal(t, kind.Keyword, elem.Kind())
	assertRoundTrips(t, "#+NAME: one\n", elem, n)

	rest := in(src[n:])
	elem2, n2, ok := Node(rest)
	require.True(t, ok)
	assert.Equal(t, kind.Keyword, elem2.Kind())
	assertRoundTrips(t, "#+CAPTION: two\n", elem2, n2)
}

func TestPlanningLine(t *testing.T) {
	src := "SCHEDULED: <2026-08-01 Sat>\n"
	elem, n, ok := Node(in(src))
	require.True(t, ok)
	assert.Equal(t, kind.Planning, elem.Kind())
	assertRoundTrips(t, src, elem, n)
}

func TestNodesFallsBackToParagraph(t *testing.T) {
	rest, elems := Nodes(in("just a paragraph\nwith two lines\n"), true)
	assert.True(t, rest.IsEmpty())
	require.Len(t, elems, 1)
	assert.Equal(t, kind.Paragraph, elems[0].Kind())
}

func TestNodesStopsAtHeadline(t *testing.T) {
	rest, elems := Nodes(in("body text\n* Headline\n"), true)
	require.Len(t, elems, 1)
	assert.Equal(t, "* Headline\n", rest.S)
}

func TestHeadlineWithNestedChildrenRoundTrips(t *testing.T) {
	src := "* Parent\nintro text\n** Child\nchild text\n"
	elem, n, ok := Node(in(src))
	require.True(t, ok)
	assert.Equal(t, kind.Headline, elem.Kind())
	assertRoundTrips(t, src, elem, n)
}
