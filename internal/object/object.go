// Package object implements the inline/object-level grammar (component
// C4): emphasis, links, timestamps, cookies, macros, footnote
// references, inline source/call, sub/superscript, LaTeX fragments and
// entities, snippets, and targets.
//
// All of orgize's object-level Rust modules are mutually recursive
// (emphasis content recurses into object_nodes, which dispatches back
// into emphasis) and are kept in one Go package for the same reason
// the element recognizers are: splitting them across packages would
// force an import cycle.
package object

import (
	"strings"

	"github.com/alexispurslane/orgcst/green"
	"github.com/alexispurslane/orgcst/internal/input"
	"github.com/alexispurslane/orgcst/kind"
)

// interesting is the byte set object recognition ever starts on. Scans
// over long plain-text runs use this to jump straight to the next
// candidate instead of attempting every recognizer at every byte.
const interesting = "@<[{*/_+=~$\\^sc"

// Nodes parses the whole of i as a maximal run of inline objects and
// interleaved TEXT, returning the resulting elements in document
// order. It always succeeds and always consumes all of i (I1: nothing
// is dropped).
func Nodes(i input.Input) []green.Element {
	var out []green.Element
	textStart := 0
	pos := 0
	s := i.S

	flushText := func(end int) {
		if end > textStart {
			out = append(out, green.NewToken(kind.Text, s[textStart:end]))
		}
	}

	for pos < len(s) {
		c := s[pos]
		if !strings.ContainsRune(interesting, rune(c)) {
			pos++
			continue
		}
		if c == '^' && !validSubSupPre(s, pos) {
			pos++
			continue
		}
		rest := i.From(pos)
		if elem, n, ok := Node(rest, s[:pos]); ok {
			flushText(pos)
			out = append(out, elem)
			pos += n
			textStart = pos
			continue
		}
		pos++
	}
	flushText(len(s))

	return out
}

// Node attempts every object recognizer applicable to i.S[0], trying
// them in the order spec.md §4.3 lists for that byte. before is the
// text of the line so far, used by recognizers that need to inspect
// the preceding byte (emphasis pre-character, sub/superscript
// validity). It returns the built element, the number of bytes of
// i.S it consumed, and whether any recognizer matched.
func Node(i input.Input, before string) (green.Element, int, bool) {
	if i.IsEmpty() {
		return nil, 0, false
	}

	switch i.S[0] {
	case '*':
		return tryEmphasis(i, before, '*', kind.Bold)
	case '/':
		return tryEmphasis(i, before, '/', kind.Italic)
	case '_':
		if elem, n, ok := tryEmphasis(i, before, '_', kind.Underline); ok {
			return elem, n, ok
		}
		if !validSubSupPre(before, len(before)) {
			return nil, 0, false
		}
		return trySubSup(i, '_')
	case '+':
		return tryEmphasis(i, before, '+', kind.Strike)
	case '=':
		return tryVerbatimLike(i, before, '=', kind.Verbatim)
	case '~':
		return tryVerbatimLike(i, before, '~', kind.Code)
	case '@':
		return trySnippet(i)
	case '{':
		return tryMacro(i)
	case '<':
		if elem, n, ok := tryRadioTarget(i); ok {
			return elem, n, ok
		}
		if elem, n, ok := tryTarget(i); ok {
			return elem, n, ok
		}
		return tryTimestamp(i, kind.TimestampActive)
	case '[':
		if elem, n, ok := tryCookie(i); ok {
			return elem, n, ok
		}
		if elem, n, ok := tryLink(i); ok {
			return elem, n, ok
		}
		if elem, n, ok := tryFootnoteRef(i); ok {
			return elem, n, ok
		}
		return tryTimestamp(i, kind.TimestampInactive)
	case '\\':
		if elem, n, ok := tryLineBreak(i); ok {
			return elem, n, ok
		}
		if elem, n, ok := tryEntity(i); ok {
			return elem, n, ok
		}
		return tryLatexFragment(i)
	case '$':
		return tryLatexDollar(i)
	case 's':
		return tryInlineSrc(i)
	case 'c':
		return tryInlineCall(i)
	case '^':
		return trySubSup(i, '^')
	}

	return nil, 0, false
}

func validSubSupPre(s string, pos int) bool {
	if pos == 0 {
		return false
	}
	c := s[pos-1]
	return c != ' ' && c != '\t' && c != '\n'
}
