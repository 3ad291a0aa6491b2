package combinator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexispurslane/orgcst/green"
	"github.com/alexispurslane/orgcst/internal/input"
	"github.com/alexispurslane/orgcst/kind"
)

func cfg() *input.Config { return &input.Config{} }

func TestLiteral(t *testing.T) {
	i := input.New("* Headline", cfg())
	rest, tok, ok := Literal(i, "*", kind.Star)
	require.True(t, ok)
	assert.Equal(t, kind.Star, tok.Kind())
	assert.Equal(t, " Headline", rest.S)

	_, _, ok = Literal(i, "#", kind.Hash)
	assert.False(t, ok)
}

func TestBlankLines(t *testing.T) {
	i := input.New("  \n\t\n\nnot blank\n", cfg())
	rest, lines := BlankLines(i)
	require.Len(t, lines, 3)
	for _, l := range lines {
		assert.Equal(t, kind.BlankLine, l.Kind())
	}
	assert.Equal(t, "not blank\n", rest.S)
}

func TestBlankLinesNoneConsumesNothing(t *testing.T) {
	i := input.New("text\n", cfg())
	rest, lines := BlankLines(i)
	assert.Nil(t, lines)
	assert.Equal(t, i.S, rest.S)
}

func TestTrimLineEnd(t *testing.T) {
	cases := []struct {
		in                               string
		content, trailingWS, terminator string
	}{
		{"abc  \n", "abc", "  ", "\n"},
		{"abc\r\n", "abc", "", "\r\n"},
		{"abc\r", "abc", "", "\r"},
		{"abc", "abc", "", ""},
		{"   \n", "", "   ", "\n"},
	}
	for _, c := range cases {
		_, content, trailingWS, terminator := TrimLineEnd(input.New(c.in, cfg()))
		assert.Equal(t, c.content, content.S, "content for %q", c.in)
		assert.Equal(t, c.trailingWS, trailingWS.S, "trailingWS for %q", c.in)
		assert.Equal(t, c.terminator, terminator.S, "terminator for %q", c.in)
	}
}

func TestEOLOrEOF(t *testing.T) {
	rest, consumed, ok := EOLOrEOF(input.New("\r\nrest", cfg()))
	require.True(t, ok)
	assert.Equal(t, "\r\n", consumed.S)
	assert.Equal(t, "rest", rest.S)

	rest, consumed, ok = EOLOrEOF(input.New("", cfg()))
	require.True(t, ok)
	assert.Equal(t, "", consumed.S)
	assert.Equal(t, "", rest.S)

	_, _, ok = EOLOrEOF(input.New("x", cfg()))
	assert.False(t, ok)
}

func TestLineStartsAndEnds(t *testing.T) {
	s := "a\nbb\r\nc"
	assert.Equal(t, []int{0, 2, 6}, LineStarts(s))
	assert.Equal(t, []int{2, 6, 7}, LineEnds(s))
}

func TestBuilderRoundTrips(t *testing.T) {
	i := input.New("  text\n", cfg())
	b := NewBuilder()
	b.WS(i.Take(2))
	b.Text(i.Slice(2, 6))
	b.NL(i.Slice(6, 7))
	node := b.Finish(kind.Paragraph)
	assert.Equal(t, i.S, green.Text(node))
}
