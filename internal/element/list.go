package element

import (
	"strings"

	"github.com/alexispurslane/orgcst/green"
	"github.com/alexispurslane/orgcst/internal/combinator"
	"github.com/alexispurslane/orgcst/internal/input"
	"github.com/alexispurslane/orgcst/internal/object"
	"github.com/alexispurslane/orgcst/kind"
)

// listNode recognizes a maximal run of list items sharing the same
// indentation and ordered/unordered flavor as a single LIST node.
func listNode(i input.Input) (green.Element, int, bool) {
	indent, ordered, ok := bulletLine(i.S)
	if !ok {
		return nil, 0, false
	}

	var items []green.Element
	rest := i
	for {
		thisIndent, thisOrdered, ok := bulletLine(rest.S)
		if !ok || thisIndent != indent || thisOrdered != ordered {
			break
		}
		item, n := listItem(rest, indent)
		items = append(items, item)
		rest = rest.From(n)
	}

	if len(items) == 0 {
		return nil, 0, false
	}
	consumed := len(i.S) - len(rest.S)
	return green.NewNode(kind.List, items), consumed, true
}

// bulletLine reports the indentation and ordered/unordered flavor of
// the bullet starting the first line of s, or ok=false if the line
// does not start a list item. '*' bullets require indent > 0 so they
// cannot be mistaken for a headline.
func bulletLine(s string) (indent int, ordered bool, ok bool) {
	line := firstLine(s)
	indent = leadingWhitespace(line)
	rest := line[indent:]
	if rest == "" {
		return 0, false, false
	}

	switch rest[0] {
	case '-', '+':
		if len(rest) > 1 && rest[1] != ' ' && rest[1] != '\t' && rest[1] != '\n' && rest[1] != '\r' {
			return 0, false, false
		}
		return indent, false, true
	case '*':
		if indent == 0 {
			return 0, false, false
		}
		if len(rest) > 1 && rest[1] != ' ' && rest[1] != '\t' {
			return 0, false, false
		}
		return indent, false, true
	}

	n := 0
	for n < len(rest) && rest[n] >= '0' && rest[n] <= '9' {
		n++
	}
	if n == 0 || n >= len(rest) {
		return 0, false, false
	}
	if rest[n] != '.' && rest[n] != ')' {
		return 0, false, false
	}
	return indent, true, true
}

// listItem parses one item at the given indentation: its header line
// (indent, bullet, optional counter/checkbox/tag, content start) plus
// every following line indented strictly more than indent, stopping
// at two consecutive blank lines or a line at indent <= indent that
// is not a continuation.
func listItem(i input.Input, indent int) (green.Element, int) {
	line := firstLine(i.S)
	rest := line[indent:]

	b := combinator.NewBuilder()
	if indent > 0 {
		b.Push(green.NewNode(kind.ListItemIndent, []green.Element{green.NewToken(kind.Whitespace, i.S[:indent])}))
	}

	bulletLen := 0
	switch rest[0] {
	case '-', '+', '*':
		bulletLen = 1
	default:
		for bulletLen < len(rest) && rest[bulletLen] >= '0' && rest[bulletLen] <= '9' {
			bulletLen++
		}
		bulletLen++ // the '.' or ')'
	}
	b.Push(green.NewNode(kind.ListItemBullet, []green.Element{green.NewToken(kind.Text, i.S[indent:indent+bulletLen])}))

	pos := indent + bulletLen
	ws := leadingWhitespace(i.S[pos:])
	if ws > 0 {
		b.WS(i.Slice(pos, pos+ws))
		pos += ws
	}

	lineEnd := indexLineEnd(i.S, 0)
	headerRest := i.S[pos:lineEnd]

	if strings.HasPrefix(headerRest, "[@") {
		if end := strings.IndexByte(headerRest, ']'); end > 0 {
			b.Push(green.NewNode(kind.ListItemCounter, []green.Element{green.NewToken(kind.Text, headerRest[:end+1])}))
			consumed := end + 1
			pos += consumed
			headerRest = headerRest[consumed:]
			if n := leadingWhitespace(headerRest); n > 0 {
				b.WS(i.Slice(pos, pos+n))
				pos += n
				headerRest = headerRest[n:]
			}
		}
	}

	if strings.HasPrefix(headerRest, "[") && len(headerRest) >= 3 && headerRest[2] == ']' {
		c := headerRest[1]
		if c == ' ' || c == 'X' || c == '-' {
			b.Push(green.NewNode(kind.ListItemCheckbox, []green.Element{green.NewToken(kind.Text, headerRest[:3])}))
			pos += 3
			headerRest = headerRest[3:]
			if n := leadingWhitespace(headerRest); n > 0 {
				b.WS(i.Slice(pos, pos+n))
				pos += n
				headerRest = headerRest[n:]
			}
		}
	}

	tagEnd := strings.Index(headerRest, " :: ")
	contentStartsAt := pos
	if tagEnd >= 0 {
		b.Push(green.NewNode(kind.ListItemTag, object.Nodes(i.Slice(pos, pos+tagEnd))))
		b.WS(i.Slice(pos+tagEnd, pos+tagEnd+1))
		b.Token(kind.Colon2, i.Slice(pos+tagEnd+1, pos+tagEnd+3))
		b.WS(i.Slice(pos+tagEnd+3, pos+tagEnd+4))
		contentStartsAt = pos + tagEnd + 4
	}

	bodyEnd := itemBodyEnd(i.S, lineEnd, indent)
	content := i.Of(i.S[contentStartsAt:bodyEnd])
	if content.Len() > 0 {
		_, contentElems := Nodes(content, false)
		if len(contentElems) > 0 {
			b.Push(green.NewNode(kind.ListItemContent, contentElems))
		}
	}

	return b.Finish(kind.ListItem), bodyEnd
}

// itemBodyEnd finds the end of an item's body, starting the scan
// right after its header line (lineEnd), given the item's own
// indentation. The body ends at: two consecutive blank lines, a line
// whose indentation is <= indent and which is not itself blank, or
// end of input.
func itemBodyEnd(s string, from int, indent int) int {
	off := from
	blankRun := 0
	for off < len(s) {
		lineEnd := indexLineEnd(s, off)
		line := s[off:lineEnd]
		if isBlankLine(line) {
			blankRun++
			if blankRun >= 2 {
				return off
			}
			off = lineEnd
			continue
		}
		blankRun = 0
		lead := leadingWhitespace(line)
		if lead <= indent {
			return off
		}
		off = lineEnd
	}
	return off
}
