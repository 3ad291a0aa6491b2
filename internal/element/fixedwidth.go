package element

import (
	"github.com/alexispurslane/orgcst/green"
	"github.com/alexispurslane/orgcst/internal/combinator"
	"github.com/alexispurslane/orgcst/internal/input"
	"github.com/alexispurslane/orgcst/kind"
)

// fixedWidthRun reports the byte length of a maximal run of
// consecutive "^:[ |$]" lines at the start of s, or ok=false if s
// does not start with one.
func fixedWidthRun(s string) (int, bool) {
	off := 0
	matched := false
	for off < len(s) {
		lineEnd := indexLineEnd(s, off)
		line := s[off:lineEnd]
		if !isFixedWidthLine(line) {
			break
		}
		matched = true
		off = lineEnd
	}
	return off, matched
}

func isFixedWidthLine(line string) bool {
	if len(line) == 0 || line[0] != ':' {
		return false
	}
	if len(line) == 1 {
		return true
	}
	c := line[1]
	return c == ' ' || c == '\n' || c == '\r'
}

func fixedWidth(i input.Input, n int) (green.Element, int, bool) {
	b := combinator.NewBuilder()
	body := i.Take(n)
	off := 0
	for off < len(body.S) {
		_, content, trailingWS, terminator := combinator.TrimLineEnd(body.From(off))
		b.Token(kind.Colon, content.Take(1))
		if content.Len() > 1 {
			b.Text(content.From(1))
		}
		b.WS(trailingWS)
		if !terminator.IsEmpty() {
			b.NL(terminator)
		}
		off += len(content.S) + len(trailingWS.S) + len(terminator.S)
	}
	return b.Finish(kind.FixedWidth), n, true
}
