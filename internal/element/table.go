package element

import (
	"strings"

	"github.com/alexispurslane/orgcst/green"
	"github.com/alexispurslane/orgcst/internal/combinator"
	"github.com/alexispurslane/orgcst/internal/input"
	"github.com/alexispurslane/orgcst/internal/object"
	"github.com/alexispurslane/orgcst/kind"
)

// orgTable recognizes a contiguous run of lines whose first
// non-whitespace byte is '|', plus any trailing "#+TBLFM:" lines,
// which attach to the table.
func orgTable(i input.Input) (green.Element, int, bool) {
	off := 0
	var rows []green.Element

	for off < len(i.S) {
		lineEnd := indexLineEnd(i.S, off)
		line := i.S[off:lineEnd]
		lead := leadingWhitespace(line)
		if lead >= len(line) || line[lead] != '|' {
			break
		}
		row, n := tableRow(i.From(off))
		rows = append(rows, row)
		off += n
	}
	if len(rows) == 0 {
		return nil, 0, false
	}

	for off < len(i.S) {
		lineEnd := indexLineEnd(i.S, off)
		line := i.S[off:lineEnd]
		trimmed := strings.TrimRight(strings.TrimRight(strings.TrimSuffix(line, "\n"), "\r"), " \t")
		if !strings.HasPrefix(strings.ToUpper(trimmed), "#+TBLFM:") {
			break
		}
		elem, n, ok := oneLineKeyword(i.From(off), len("#+TBLFM:"), kind.Keyword)
		if !ok {
			break
		}
		rows = append(rows, elem)
		off += n
	}

	return green.NewNode(kind.OrgTable, rows), off, true
}

func tableRow(i input.Input) (green.Element, int) {
	_, content, trailingWS, terminator := combinator.TrimLineEnd(i)
	lead := leadingWhitespace(content.S)

	b := combinator.NewBuilder()
	b.WS(content.Take(lead))

	body := content.From(lead)
	if strings.HasPrefix(body.S, "|-") {
		b.Token(kind.Pipe, body.Take(1))
		b.Token(kind.Minus, body.From(1))
		b.WS(trailingWS)
		if !terminator.IsEmpty() {
			b.NL(terminator)
		}
		return b.Finish(kind.OrgTableRuleRow), len(content.S) + len(trailingWS.S) + len(terminator.S)
	}

	// Scan '|'-delimited segments by byte position so every pipe and
	// every cell's exact bytes (including a final cell with no
	// closing pipe) round-trip, rather than reconstructing from a
	// strings.Split result.
	pos := 0
	for pos < len(body.S) {
		if body.S[pos] != '|' {
			break
		}
		b.Token(kind.Pipe, body.Slice(pos, pos+1))
		pos++
		cellStart := pos
		for pos < len(body.S) && body.S[pos] != '|' {
			pos++
		}
		cell := body.S[cellStart:pos]
		if cell != "" {
			b.Push(tableCellNode(body.Slice(cellStart, pos)))
		}
	}

	b.WS(trailingWS)
	if !terminator.IsEmpty() {
		b.NL(terminator)
	}
	return b.Finish(kind.OrgTableStandardRow), len(content.S) + len(trailingWS.S) + len(terminator.S)
}

// tableCellNode wraps one cell's raw span (whitespace and all) into
// an OrgTableCell node, splitting surrounding whitespace into its own
// tokens and parsing the core text for inline objects -- whitespace
// inside a cell is never discarded (spec.md §4.4).
func tableCellNode(cell input.Input) green.Element {
	s := cell.S
	lead := leadingWhitespace(s)
	trail := trailingWhitespaceLen(s)
	if lead+trail > len(s) {
		trail = len(s) - lead
	}
	core := s[lead : len(s)-trail]

	b := combinator.NewBuilder()
	if lead > 0 {
		b.WS(cell.Take(lead))
	}
	if core != "" {
		b.PushAll(object.Nodes(cell.Slice(lead, len(s)-trail)))
	}
	if trail > 0 {
		b.WS(cell.From(len(s) - trail))
	}
	return b.Finish(kind.OrgTableCell)
}

func trailingWhitespaceLen(s string) int {
	n := 0
	for n < len(s) && (s[len(s)-1-n] == ' ' || s[len(s)-1-n] == '\t') {
		n++
	}
	return n
}

// tableElLen reports the byte length of a table.el block: a line
// starting "+-" made only of '+'/'-', through subsequent lines
// starting '|' or '+', stored verbatim.
func tableElLen(s string) (int, bool) {
	lineEnd := indexLineEnd(s, 0)
	first := strings.TrimRight(strings.TrimSuffix(s[:lineEnd], "\n"), "\r")
	if !strings.HasPrefix(first, "+-") || !isPlusMinusOnly(first) {
		return 0, false
	}
	off := lineEnd
	for off < len(s) {
		le := indexLineEnd(s, off)
		line := s[off:le]
		if len(line) == 0 || (line[0] != '|' && line[0] != '+') {
			break
		}
		off = le
	}
	return off, true
}

func isPlusMinusOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '+' && s[i] != '-' {
			return false
		}
	}
	return true
}

func tableEl(i input.Input, n int) (green.Element, int, bool) {
	return green.NewNode(kind.TableEl, []green.Element{green.NewToken(kind.Text, i.S[:n])}), n, true
}
