package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexispurslane/orgcst/green"
	"github.com/alexispurslane/orgcst/internal/input"
	"github.com/alexispurslane/orgcst/kind"
)

func in(s string) input.Input { return input.New(s, &input.Config{}) }

func firstNode(t *testing.T, elems []green.Element) *green.Node {
	t.Helper()
	require.NotEmpty(t, elems)
	n, ok := elems[0].(*green.Node)
	require.True(t, ok)
	return n
}

func TestNodesRoundTripsPlainText(t *testing.T) {
	elems := Nodes(in("just plain text"))
	require.Len(t, elems, 1)
	assert.Equal(t, "just plain text", green.Text(elems[0]))
}

func TestNodesInterleavesTextAndObjects(t *testing.T) {
	elems := Nodes(in("before *bold* after"))
	require.Len(t, elems, 3)
	assert.Equal(t, kind.Text, elems[0].Kind())
	assert.Equal(t, "before ", green.Text(elems[0]))
	assert.Equal(t, kind.Bold, elems[1].Kind())
	assert.Equal(t, "*bold*", green.Text(elems[1]))
	assert.Equal(t, kind.Text, elems[2].Kind())
	assert.Equal(t, " after", green.Text(elems[2]))
}

func TestEmphasisNested(t *testing.T) {
	n := firstNode(t, Nodes(in("*bold /italic/ end*")))
	assert.Equal(t, kind.Bold, n.Kind())
	assert.Equal(t, "*bold /italic/ end*", green.Text(n))

	var foundItalic bool
	for _, c := range n.Children() {
		if c.Kind() == kind.Italic {
			foundItalic = true
			assert.Equal(t, "/italic/", green.Text(c))
		}
	}
	assert.True(t, foundItalic)
}

func TestEmphasisRejectsMarkerWithLeadingSpace(t *testing.T) {
	_, n, ok := Node(in("* not emphasis"), "")
	assert.False(t, ok)
	assert.Equal(t, 0, n)
}

func TestVerbatimIsFlatText(t *testing.T) {
	n := firstNode(t, Nodes(in("=code here=")))
	assert.Equal(t, kind.Verbatim, n.Kind())
	require.Len(t, n.Children(), 3)
	assert.Equal(t, kind.Text, n.Children()[1].Kind())
	assert.Equal(t, "code here", green.Text(n.Children()[1]))
}

func TestCookieFractionAndPercent(t *testing.T) {
	elem, n, ok := tryCookie(in("[3/10] rest"))
	require.True(t, ok)
	assert.Equal(t, 6, n)
	assert.Equal(t, kind.Cookie, elem.Kind())
	assert.Equal(t, "[3/10]", green.Text(elem))

	elem, n, ok = tryCookie(in("[50%]"))
	require.True(t, ok)
	assert.Equal(t, 5, n)
	assert.Equal(t, "[50%]", green.Text(elem))

	_, _, ok = tryCookie(in("[not a cookie]"))
	assert.False(t, ok)
}

func TestEntityWithAndWithoutBraces(t *testing.T) {
	elem, n, ok := tryEntity(in(`\alpha rest`))
	require.True(t, ok)
	assert.Equal(t, 6, n)
	assert.Equal(t, kind.Entity, elem.Kind())

	elem, n, ok = tryEntity(in(`\alpha{}`))
	require.True(t, ok)
	assert.Equal(t, 8, n)
	assert.Equal(t, `\alpha{}`, green.Text(elem))

	_, _, ok = tryEntity(in(`\begin{center}`))
	assert.False(t, ok)
}

func TestMacroWithArgs(t *testing.T) {
	elem, n, ok := tryMacro(in("{{{name(a,b)}}}"))
	require.True(t, ok)
	assert.Equal(t, len("{{{name(a,b)}}}"), n)
	assert.Equal(t, kind.Macros, elem.Kind())

	elem, n, ok = tryMacro(in("{{{keyword}}}"))
	require.True(t, ok)
	assert.Equal(t, "{{{keyword}}}", green.Text(elem))
}

func TestFootnoteRefLabelOnly(t *testing.T) {
	elem, n, ok := tryFootnoteRef(in("[fn:1] rest"))
	require.True(t, ok)
	assert.Equal(t, 6, n)
	assert.Equal(t, kind.FnRef, elem.Kind())
	assert.Equal(t, "[fn:1]", green.Text(elem))
}

func TestFootnoteRefInlineDefinition(t *testing.T) {
	elem, n, ok := tryFootnoteRef(in("[fn:lbl:some *def*]"))
	require.True(t, ok)
	assert.Equal(t, len("[fn:lbl:some *def*]"), n)
	assert.Equal(t, "[fn:lbl:some *def*]", green.Text(elem))
}

func TestFootnoteRefAnonymousRequiresColon(t *testing.T) {
	_, _, ok := tryFootnoteRef(in("[fn:]"))
	assert.False(t, ok)

	elem, n, ok := tryFootnoteRef(in("[fn::anon def]"))
	require.True(t, ok)
	assert.Equal(t, len("[fn::anon def]"), n)
	assert.Equal(t, "[fn::anon def]", green.Text(elem))
}

func TestTimestampActiveWithTimeRange(t *testing.T) {
	elem, n, ok := tryTimestamp(in("<2026-08-01 Sat 09:00-10:30>"), kind.TimestampActive)
	require.True(t, ok)
	assert.Equal(t, len("<2026-08-01 Sat 09:00-10:30>"), n)
	assert.Equal(t, kind.TimestampActive, elem.Kind())

	var years, hours, minutes []string
	node := elem.(*green.Node)
	for _, c := range node.Children() {
		switch c.Kind() {
		case kind.TimestampYear:
			years = append(years, green.Text(c))
		case kind.TimestampHour:
			hours = append(hours, green.Text(c))
		case kind.TimestampMinute:
			minutes = append(minutes, green.Text(c))
		}
	}
	assert.Equal(t, []string{"2026"}, years)
	assert.Equal(t, []string{"09", "10"}, hours)
	assert.Equal(t, []string{"00", "30"}, minutes)
}

func TestTimestampDiary(t *testing.T) {
	elem, n, ok := tryTimestamp(in("<%%(diary-float t 1 1)>"), kind.TimestampActive)
	require.True(t, ok)
	assert.Equal(t, len("<%%(diary-float t 1 1)>"), n)
	assert.Equal(t, kind.TimestampDiary, elem.Kind())
}

func TestTimestampInactive(t *testing.T) {
	elem, n, ok := tryTimestamp(in("[2026-08-01 Sat]"), kind.TimestampInactive)
	require.True(t, ok)
	assert.Equal(t, len("[2026-08-01 Sat]"), n)
	assert.Equal(t, kind.TimestampInactive, elem.Kind())
}

func TestInlineSrcWithOptionsAndBody(t *testing.T) {
	src := "before src_python[:exports code]{print(1)} after"
	elems := Nodes(in(src))
	require.Len(t, elems, 3)
	n := elems[1].(*green.Node)
	assert.Equal(t, kind.InlineSrc, n.Kind())
	assert.Equal(t, "src_python[:exports code]{print(1)}", green.Text(n))
}

func TestInlineCallWithHeadersAndArgs(t *testing.T) {
	src := "before call_foo[:results silent](1,2)[:exports none] after"
	elems := Nodes(in(src))
	require.Len(t, elems, 3)
	n := elems[1].(*green.Node)
	assert.Equal(t, kind.InlineCall, n.Kind())
	assert.Equal(t, "call_foo[:results silent](1,2)[:exports none]", green.Text(n))
}

func TestNodesDispatchesBareSAndCAsText(t *testing.T) {
	elems := Nodes(in("s and c are plain text"))
	require.Len(t, elems, 1)
	assert.Equal(t, kind.Text, elems[0].Kind())
	assert.Equal(t, "s and c are plain text", green.Text(elems[0]))
}

func TestSubSupBracedAndSimple(t *testing.T) {
	elem, n, ok := trySubSup(in("_{sub text}"), '_')
	require.True(t, ok)
	assert.Equal(t, len("_{sub text}"), n)
	assert.Equal(t, kind.Subscript, elem.Kind())

	elem, n, ok = trySubSup(in("^2"), '^')
	require.True(t, ok)
	assert.Equal(t, 2, n)
	assert.Equal(t, kind.Superscript, elem.Kind())
}

func TestSnippet(t *testing.T) {
	elem, n, ok := trySnippet(in("@@html:<b>@@"))
	require.True(t, ok)
	assert.Equal(t, len("@@html:<b>@@"), n)
	assert.Equal(t, kind.Snippet, elem.Kind())
}

func TestTargetAndRadioTarget(t *testing.T) {
	elem, n, ok := tryTarget(in("<<my-target>>"))
	require.True(t, ok)
	assert.Equal(t, len("<<my-target>>"), n)
	assert.Equal(t, kind.Target, elem.Kind())

	elem, n, ok = tryRadioTarget(in("<<<radio>>>"))
	require.True(t, ok)
	assert.Equal(t, len("<<<radio>>>"), n)
	assert.Equal(t, kind.RadioTarget, elem.Kind())
}

func TestLatexFragmentParens(t *testing.T) {
	elem, n, ok := tryLatexFragment(in(`\(x^2\)`))
	require.True(t, ok)
	assert.Equal(t, len(`\(x^2\)`), n)
	assert.Equal(t, kind.LatexEnvironment, elem.Kind())
}

func TestLatexDollarSingleAndDouble(t *testing.T) {
	elem, n, ok := tryLatexDollar(in("$x+1$ rest"))
	require.True(t, ok)
	assert.Equal(t, 5, n)
	assert.Equal(t, kind.LatexEnvironment, elem.Kind())

	elem, n, ok = tryLatexDollar(in("$$x+1$$"))
	require.True(t, ok)
	assert.Equal(t, len("$$x+1$$"), n)

	// rejects content with leading/trailing whitespace for the single form.
	_, _, ok = tryLatexDollar(in("$ x$"))
	assert.False(t, ok)
}

func TestLineBreakWithVerticalSpacing(t *testing.T) {
	elem, n, ok := tryLineBreak(in(`\\[2mm]` + "\n"))
	require.True(t, ok)
	assert.Equal(t, len(`\\[2mm]`), n)
	assert.Equal(t, kind.LineBreak, elem.Kind())
}

func TestLineBreakRejectsTrailingContent(t *testing.T) {
	_, _, ok := tryLineBreak(in(`\\not at end`))
	assert.False(t, ok)
}
