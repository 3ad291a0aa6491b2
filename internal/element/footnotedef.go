package element

import (
	"strings"

	"github.com/alexispurslane/orgcst/green"
	"github.com/alexispurslane/orgcst/internal/combinator"
	"github.com/alexispurslane/orgcst/internal/input"
	"github.com/alexispurslane/orgcst/internal/object"
	"github.com/alexispurslane/orgcst/kind"
)

// footnoteDefinition recognizes "^[fn:label] body..." (the body
// extends, like a paragraph, until a blank line or the next element).
func footnoteDefinition(i input.Input) (green.Element, int, bool) {
	if !strings.HasPrefix(i.S, "[fn:") {
		return nil, 0, false
	}
	rest := i.S[len("[fn:"):]
	labelEnd := 0
	for labelEnd < len(rest) && isLabelRune(rest[labelEnd]) {
		labelEnd++
	}
	if labelEnd == 0 || labelEnd >= len(rest) || rest[labelEnd] != ']' {
		return nil, 0, false
	}
	label := rest[:labelEnd]
	headerLen := len("[fn:") + labelEnd + 1

	b := combinator.NewBuilder()
	b.Token(kind.LBracket, i.Take(1))
	b.Token(kind.Text, i.Slice(1, 4))
	b.Token(kind.Text, i.Slice(4, 4+labelEnd))
	_ = label
	b.Token(kind.RBracket, i.Slice(headerLen-1, headerLen))

	bodyEnd := paragraphLikeEnd(i, headerLen)
	body := i.S[headerLen:bodyEnd]
	bodyElems := object.Nodes(i.Of(body))
	b.PushAll(bodyElems)

	return b.Finish(kind.FnDef), bodyEnd, true
}

func isLabelRune(c byte) bool {
	return c == '-' || c == '_' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// paragraphLikeEnd scans forward from `from` for the end of a
// paragraph-shaped run: up to (but not including) a blank line, a later
// line that a fresh element recognizer would claim, or end of input.
func paragraphLikeEnd(i input.Input, from int) int {
	s := i.S
	off := from
	for off < len(s) {
		lineEnd := indexLineEnd(s, off)
		line := s[off:lineEnd]
		if isBlankLine(line) {
			break
		}
		if off > from {
			if _, _, ok := Node(i.From(off)); ok {
				break
			}
		}
		off = lineEnd
	}
	return off
}
