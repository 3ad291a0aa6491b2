package element

import (
	"github.com/alexispurslane/orgcst/green"
	"github.com/alexispurslane/orgcst/internal/combinator"
	"github.com/alexispurslane/orgcst/internal/input"
	"github.com/alexispurslane/orgcst/kind"
)

// commentLines recognizes a maximal run of consecutive "^#[ |$]"
// lines (but never "#+...", which is a keyword/block/babel-call).
func commentLines(i input.Input) (green.Element, int, bool) {
	off := 0
	for off < len(i.S) {
		lineEnd := indexLineEnd(i.S, off)
		line := i.S[off:lineEnd]
		if !isCommentLine(line) {
			break
		}
		off = lineEnd
	}
	if off == 0 {
		return nil, 0, false
	}

	b := combinator.NewBuilder()
	body := i.Take(off)
	pos := 0
	for pos < len(body.S) {
		_, content, trailingWS, terminator := combinator.TrimLineEnd(body.From(pos))
		b.Token(kind.Hash, content.Take(1))
		if content.Len() > 1 {
			b.Text(content.From(1))
		}
		b.WS(trailingWS)
		if !terminator.IsEmpty() {
			b.NL(terminator)
		}
		pos += len(content.S) + len(trailingWS.S) + len(terminator.S)
	}
	return b.Finish(kind.Comment), off, true
}

func isCommentLine(line string) bool {
	if len(line) == 0 || line[0] != '#' {
		return false
	}
	if len(line) == 1 {
		return true
	}
	c := line[1]
	if c == '+' {
		return false
	}
	return c == ' ' || c == '\n' || c == '\r'
}
