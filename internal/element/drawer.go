package element

import (
	"strings"

	"github.com/alexispurslane/orgcst/green"
	"github.com/alexispurslane/orgcst/internal/combinator"
	"github.com/alexispurslane/orgcst/internal/input"
	"github.com/alexispurslane/orgcst/kind"
)

// drawer recognizes "^:NAME:$" ... "^:END:$", where NAME is
// [A-Za-z_-]+. A drawer named PROPERTIES is built as a PROPERTY_DRAWER
// node whose lines are each a NODE_PROPERTY; any other name is built
// as a generic DRAWER whose content is parsed recursively as elements.
func drawer(i input.Input) (green.Element, int, bool) {
	name, headerLen, ok := drawerHeader(i.S)
	if !ok {
		return nil, 0, false
	}

	if strings.EqualFold(name, "PROPERTIES") {
		return propertyDrawer(i)
	}

	rest := i.From(headerLen)
	endOff, ok := findDrawerEnd(rest.S)
	if !ok {
		return nil, 0, false
	}

	begin := green.NewNode(kind.DrawerBegin, []green.Element{green.NewToken(kind.Text, i.S[:headerLen])})
	_, contentElems := Nodes(rest.Take(endOff), false)
	endContent := rest.From(endOff)
	endLineLen := drawerEndLineLen(endContent.S)
	end := green.NewNode(kind.DrawerEnd, []green.Element{green.NewToken(kind.Text, endContent.S[:endLineLen])})

	children := append([]green.Element{begin}, contentElems...)
	children = append(children, end)

	return green.NewNode(kind.Drawer, children), headerLen + endOff + endLineLen, true
}

// propertyDrawer recognizes "^:PROPERTIES:$" ... "^:END:$" whose
// content lines are each "^:name[+]: value$".
func propertyDrawer(i input.Input) (green.Element, int, bool) {
	name, headerLen, ok := drawerHeader(i.S)
	if !ok || !strings.EqualFold(name, "PROPERTIES") {
		return nil, 0, false
	}

	rest := i.From(headerLen)
	endOff, ok := findDrawerEnd(rest.S)
	if !ok {
		return nil, 0, false
	}

	begin := green.NewNode(kind.DrawerBegin, []green.Element{green.NewToken(kind.Text, i.S[:headerLen])})

	var props []green.Element
	body := rest.Take(endOff)
	for !body.IsEmpty() {
		_, content, trailingWS, terminator := combinator.TrimLineEnd(body)
		if prop, ok := nodeProperty(content); ok {
			b := combinator.NewBuilder()
			b.Push(prop)
			b.WS(trailingWS)
			if !terminator.IsEmpty() {
				b.NL(terminator)
			}
			props = append(props, b.Finish(kind.NodeProperty))
		} else if !isBlankLine(content.S) {
			b := combinator.NewBuilder()
			b.Text(content)
			b.WS(trailingWS)
			if !terminator.IsEmpty() {
				b.NL(terminator)
			}
			props = append(props, b.Finish(kind.FixedWidth))
		} else {
			b := combinator.NewBuilder()
			b.WS(trailingWS)
			if !terminator.IsEmpty() {
				b.NL(terminator)
			}
			props = append(props, b.Finish(kind.BlankLine))
		}
		body = body.From(len(content.S) + len(trailingWS.S) + len(terminator.S))
	}

	endContent := rest.From(endOff)
	endLineLen := drawerEndLineLen(endContent.S)
	end := green.NewNode(kind.DrawerEnd, []green.Element{green.NewToken(kind.Text, endContent.S[:endLineLen])})

	children := append([]green.Element{begin}, props...)
	children = append(children, end)

	return green.NewNode(kind.PropertyDrawer, children), headerLen + endOff + endLineLen, true
}

// nodeProperty recognizes "^:name[+]: value$" (trailing "+" preserved
// literally -- spec.md §9(a) leaves merge semantics to consumers).
func nodeProperty(content input.Input) (green.Element, bool) {
	s := content.S
	if len(s) == 0 || s[0] != ':' {
		return nil, false
	}
	end := strings.IndexByte(s[1:], ':')
	if end < 0 {
		return nil, false
	}
	end++ // index within s of the closing ':'
	name := s[1:end]
	if name == "" || !isPropertyName(name) {
		return nil, false
	}
	valueStart := end + 1
	for valueStart < len(s) && (s[valueStart] == ' ' || s[valueStart] == '\t') {
		valueStart++
	}
	value := s[valueStart:]

	b := combinator.NewBuilder()
	b.Token(kind.Colon, content.Take(1))
	b.Token(kind.Text, content.Slice(1, end))
	b.Token(kind.Colon, content.Slice(end, end+1))
	if valueStart > end+1 {
		b.WS(content.Slice(end+1, valueStart))
	}
	if value != "" {
		b.Token(kind.Text, content.From(valueStart))
	}
	return b.Finish(kind.NodeProperty), true
}

func isPropertyName(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '+' && i == len(s)-1 {
			continue
		}
		if c == '-' || c == '_' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			continue
		}
		return false
	}
	return true
}

// drawerHeader matches "^:NAME:[ \t]*$" at the start of s, returning
// NAME and the byte length of the header line including its
// terminator.
func drawerHeader(s string) (name string, lineLen int, ok bool) {
	if len(s) == 0 || s[0] != ':' {
		return "", 0, false
	}
	end := strings.IndexByte(s[1:], ':')
	if end < 0 {
		return "", 0, false
	}
	end++
	candidate := s[1:end]
	if candidate == "" || !isDrawerName(candidate) {
		return "", 0, false
	}
	lineEnd := indexLineEnd(s, 0)
	trailing := s[end+1 : lineEnd]
	if strings.TrimRight(strings.TrimSuffix(trailing, "\n"), " \t\r") != "" {
		return "", 0, false
	}
	return candidate, lineEnd, true
}

func isDrawerName(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '-' || c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			continue
		}
		return false
	}
	return true
}

// findDrawerEnd locates a line consisting only of "^:END:[ \t]*$" in
// s, returning its byte offset (not including the line itself).
func findDrawerEnd(s string) (int, bool) {
	off := 0
	for off < len(s) {
		lineEnd := indexLineEnd(s, off)
		line := s[off:lineEnd]
		trimmed := strings.TrimRight(strings.TrimRight(strings.TrimSuffix(line, "\n"), "\r"), " \t")
		if strings.EqualFold(trimmed, ":END:") {
			return off, true
		}
		off = lineEnd
	}
	return 0, false
}

func drawerEndLineLen(s string) int {
	return indexLineEnd(s, 0)
}
