package element

import (
	"strings"

	"github.com/alexispurslane/orgcst/green"
	"github.com/alexispurslane/orgcst/internal/combinator"
	"github.com/alexispurslane/orgcst/internal/input"
	"github.com/alexispurslane/orgcst/kind"
)

// affiliatedOrKeywordOrBlock is the entry point for every line
// starting with '#': blocks ("#+BEGIN_..."), dynamic blocks
// ("#+BEGIN:"), babel calls ("#+CALL:"), plain keywords
// ("#+KEY: value"), and runs of affiliated keywords that attach to
// the element immediately following them (I6).
func affiliatedOrKeywordOrBlock(i input.Input) (green.Element, int, bool) {
	if elem, n, ok := greaterOrLesserBlock(i); ok {
		return elem, n, true
	}
	if elem, n, ok := dynBlock(i); ok {
		return elem, n, true
	}

	key, optArg, headerLen, ok := keywordHeader(i.S)
	if !ok {
		return nil, 0, false
	}

	if strings.EqualFold(key, "CALL") {
		return oneLineKeyword(i, headerLen, kind.BabelCall)
	}

	if !i.C.IsAffiliatedKeyword(strings.ToUpper(key)) {
		return oneLineKeyword(i, headerLen, kind.Keyword)
	}
	_ = optArg

	return affiliatedRun(i)
}

// affiliatedRun consumes one or more consecutive "#+KEY: value" lines
// whose KEY is affiliated, with no intervening blank line, then tries
// to parse the element that follows. If that element exists and is
// not a PARAGRAPH, the keyword lines become its leading
// AFFILIATED_KEYWORD children. Otherwise the run does not attach to
// anything (I6/P6): the lines are ordinary keywords, and only the
// first is built here -- the driver's loop re-enters affiliatedRun for
// the rest, one line at a time, since the attach decision is the same
// for every suffix of the run.
func affiliatedRun(i input.Input) (green.Element, int, bool) {
	var headerLens []int
	rest := i

	for {
		key, _, headerLen, ok := keywordHeader(rest.S)
		if !ok || strings.EqualFold(key, "CALL") || !rest.C.IsAffiliatedKeyword(strings.ToUpper(key)) {
			break
		}
		_, n, ok := oneLineKeyword(rest, headerLen, kind.AffiliatedKeyword)
		if !ok {
			break
		}
		headerLens = append(headerLens, headerLen)
		rest = rest.From(n)
	}

	if len(headerLens) == 0 {
		return nil, 0, false
	}

	nextElem, n, ok := Node(rest)
	if ok && nextElem.Kind() != kind.Paragraph {
		var kwLines []green.Element
		consumed := 0
		re := i
		for _, headerLen := range headerLens {
			elem, lineLen, _ := oneLineKeyword(re, headerLen, kind.AffiliatedKeyword)
			kwLines = append(kwLines, elem)
			re = re.From(lineLen)
			consumed += lineLen
		}
		children := append(append([]green.Element{}, kwLines...), elementChildrenOf(nextElem)...)
		merged := green.NewNode(nextElem.Kind(), children)
		return merged, consumed + n, true
	}

	elem, lineLen, _ := oneLineKeyword(i, headerLens[0], kind.Keyword)
	return elem, lineLen, true
}

func elementChildrenOf(e green.Element) []green.Element {
	if n, ok := e.(*green.Node); ok {
		return n.Children()
	}
	return nil
}

// oneLineKeyword builds a single-line node of kind k from the header
// ("#+KEY[opt]: ") plus the rest of the line as its value.
func oneLineKeyword(i input.Input, headerLen int, k kind.Kind) (green.Element, int, bool) {
	head := i.Take(headerLen)
	afterHeader := i.From(headerLen)
	_, content, trailingWS, terminator := combinator.TrimLineEnd(afterHeader)

	b := combinator.NewBuilder()
	b.Token(kind.Text, head)
	b.Text(content)
	b.WS(trailingWS)
	if !terminator.IsEmpty() {
		b.NL(terminator)
	}

	total := headerLen + len(content.S) + len(trailingWS.S) + len(terminator.S)
	return b.Finish(k), total, true
}

// keywordHeader matches "#+KEY[opt]: " (the colon and at most one
// following space are part of the header) at the start of s. KEY may
// contain letters, digits, '-', and '_'; opt, the bracketed optional
// argument, is returned without its brackets.
func keywordHeader(s string) (key, opt string, headerLen int, ok bool) {
	if !strings.HasPrefix(s, "#+") {
		return "", "", 0, false
	}
	rest := s[2:]
	end := 0
	for end < len(rest) && (isDrawerName(rest[end:end+1]) || (rest[end] >= '0' && rest[end] <= '9')) {
		end++
	}
	if end == 0 {
		return "", "", 0, false
	}
	key = rest[:end]
	pos := end

	if pos < len(rest) && rest[pos] == '[' {
		close := strings.IndexByte(rest[pos:], ']')
		if close < 0 {
			return "", "", 0, false
		}
		opt = rest[pos+1 : pos+close]
		pos += close + 1
	}

	if pos >= len(rest) || rest[pos] != ':' {
		return "", "", 0, false
	}
	pos++
	if pos < len(rest) && rest[pos] == ' ' {
		pos++
	}

	return key, opt, 2 + pos, true
}
