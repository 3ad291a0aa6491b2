// Package element implements the block/element-level grammar
// (component C5): headlines, sections, paragraphs, lists, tables,
// drawers, blocks, keywords, clocks, planning, rules, fixed-width,
// LaTeX environments, comments, and footnote definitions.
//
// Headline and section recognition lives here too, alongside the
// generic element dispatcher, because orgize's Rust split (element.rs
// importing headline.rs importing back into element_nodes for section
// bodies) would otherwise force an import cycle in Go.
package element

import (
	"strings"

	"github.com/alexispurslane/orgcst/green"
	"github.com/alexispurslane/orgcst/internal/combinator"
	"github.com/alexispurslane/orgcst/internal/input"
	"github.com/alexispurslane/orgcst/internal/object"
	"github.com/alexispurslane/orgcst/kind"
)

// Nodes parses the whole of i as a maximal run of elements, stopping
// only at end of input or (when stopAtHeadline is true) at a line
// that begins a headline of any level -- the case when building a
// section's content, which must hand control back to the headline
// forest builder. It always consumes everything it is given up to
// that stopping point.
func Nodes(i input.Input, stopAtHeadline bool) (rest input.Input, elems []green.Element) {
	for !i.IsEmpty() {
		if stopAtHeadline && HeadlineStars(i.S) > 0 {
			break
		}

		if blanks, ws := combinator.BlankLines(i); len(ws) > 0 {
			elems = append(elems, ws...)
			i = blanks
			continue
		}

		elem, n, ok := Node(i)
		if !ok {
			elem, n = paragraph(i)
		}
		elems = append(elems, elem)
		i = i.From(n)
	}
	return i, elems
}

// Node attempts every element recognizer applicable to the first
// non-whitespace byte of the current line, in the cascade order
// spec.md §4.4 describes. It returns the element, how many bytes of
// i.S it consumed, and whether any recognizer matched a whole line.
// The count does not include blank lines following the element; Nodes
// emits those as BLANK_LINE tokens beside the element, not inside it.
func Node(i input.Input) (green.Element, int, bool) {
	if i.IsEmpty() {
		return nil, 0, false
	}

	line := firstLine(i.S)
	firstByte, ok := firstNonSpace(line)
	if !ok {
		return nil, 0, false
	}

	switch firstByte {
	case '*':
		if HeadlineStars(i.S) > 0 {
			return headline(i)
		}
	case '-':
		if n, ok := ruleLen(line); ok {
			return rule(i, n)
		}
	case ':':
		if n, ok := fixedWidthRun(i.S); ok {
			return fixedWidth(i, n)
		}
		if elem, n, ok := drawer(i); ok {
			return elem, n, true
		}
	case '|':
		return orgTable(i)
	case '+':
		if n, ok := tableElLen(i.S); ok {
			return tableEl(i, n)
		}
		if elem, n, ok := listNode(i); ok {
			return elem, n, true
		}
	case '#':
		if elem, n, ok := affiliatedOrKeywordOrBlock(i); ok {
			return elem, n, true
		}
	case '\\':
		if elem, n, ok := latexEnvironment(i); ok {
			return elem, n, true
		}
	case 'C':
		if elem, n, ok := clock(i); ok {
			return elem, n, true
		}
	case '[':
		if elem, n, ok := footnoteDefinition(i); ok {
			return elem, n, true
		}
	}

	if elem, n, ok := listNode(i); ok {
		return elem, n, true
	}
	if elem, n, ok := commentLines(i); ok {
		return elem, n, true
	}
	if elem, n, ok := planning(i); ok {
		return elem, n, true
	}

	return nil, 0, false
}

// paragraph consumes the maximal run of non-blank lines not claimed by
// any element recognizer, parsing their concatenated text as inline
// objects. Paragraphs always consume at least one line (I3).
func paragraph(i input.Input) (green.Element, int) {
	end := 0
	for end < len(i.S) {
		lineEnd := indexLineEnd(i.S, end)
		line := i.S[end:lineEnd]
		if isBlankLine(line) {
			break
		}
		if end > 0 {
			// a paragraph stops before any line a fresh element
			// recognizer would claim.
			if _, _, ok := Node(i.From(end)); ok {
				break
			}
		}
		end = lineEnd
	}
	if end == 0 {
		end = indexLineEnd(i.S, 0)
	}

	content := i.S[:end]
	children := object.Nodes(i.Of(content))
	return green.NewNode(kind.Paragraph, children), end
}

func indexLineEnd(s string, from int) int {
	rel := strings.IndexByte(s[from:], '\n')
	if rel < 0 {
		return len(s)
	}
	return from + rel + 1
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx+1]
	}
	return s
}

func firstNonSpace(line string) (byte, bool) {
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c == ' ' || c == '\t' {
			continue
		}
		return c, true
	}
	return 0, false
}

func isBlankLine(line string) bool {
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c != ' ' && c != '\t' && c != '\n' && c != '\r' {
			return false
		}
	}
	return true
}

func leadingWhitespace(s string) int {
	n := 0
	for n < len(s) && (s[n] == ' ' || s[n] == '\t') {
		n++
	}
	return n
}
