package element

import (
	"strings"

	"github.com/alexispurslane/orgcst/green"
	"github.com/alexispurslane/orgcst/internal/combinator"
	"github.com/alexispurslane/orgcst/internal/input"
	"github.com/alexispurslane/orgcst/internal/object"
	"github.com/alexispurslane/orgcst/kind"
)

// HeadlineStars reports the number of leading '*' characters at the
// start of s, provided the run is immediately followed by a space,
// tab, line terminator, or end of input -- the only context in which
// a run of stars begins a headline rather than, say, emphasis text
// at column zero. It returns 0 if s does not start a headline.
func HeadlineStars(s string) int {
	n := 0
	for n < len(s) && s[n] == '*' {
		n++
	}
	if n == 0 {
		return 0
	}
	if n == len(s) {
		return n
	}
	c := s[n]
	if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
		return n
	}
	return 0
}

// headline parses one HEADLINE node: its own line (stars, keyword,
// priority, title, tags), then planning / property drawer / section,
// then recursively absorbs child headlines of strictly greater level
// (I4).
func headline(i input.Input) (green.Element, int, bool) {
	level := HeadlineStars(i.S)
	if level == 0 {
		return nil, 0, false
	}

	b := combinator.NewBuilder()
	b.Token(kind.HeadlineStars, i.Take(level))
	rest := i.From(level)

	rest2, content, trailingWS, terminator := combinator.TrimLineEnd(rest)
	b.WS(leadingWS(content, &content))

	// keyword: a run of non-space characters followed by a space,
	// matched against the configured TODO/DONE families. A headline
	// whose content is a single word has no keyword.
	if word, after, ok := takeWord(content); ok {
		if i.C.IsTodoKeyword(word) {
			b.Token(kind.HeadlineKeywordTodo, content.Take(len(word)))
			content = after
			b.WS(leadingWS(content, &content))
		} else if i.C.IsDoneKeyword(word) {
			b.Token(kind.HeadlineKeywordDone, content.Take(len(word)))
			content = after
			b.WS(leadingWS(content, &content))
		}
	}

	// priority: "[#X]"
	if strings.HasPrefix(content.S, "[#") && len(content.S) >= 4 && content.S[3] == ']' {
		x := content.S[2]
		if x >= 'A' && x <= 'Z' {
			b.Token(kind.HeadlinePriority, content.Take(4))
			content = content.From(4)
			b.WS(leadingWS(content, &content))
		}
	}

	// tags: a colon-delimited run at the end of content, preceded by
	// whitespace.
	title, tags := splitTrailingTags(content.S)

	if strings.TrimSpace(title) != "" {
		titleChildren := object.Nodes(content.Of(strings.TrimRight(title, " \t")))
		tws := title[len(strings.TrimRight(title, " \t")):]
		b.Push(green.NewNode(kind.HeadlineTitle, titleChildren))
		if tws != "" {
			b.WS(content.Of(tws))
		}
	}

	if tags != "" {
		b.Push(tagsNode(content.Of(tags)))
	}

	b.WS(trailingWS)
	if !terminator.IsEmpty() {
		b.NL(terminator)
	}

	remaining := rest2

	if plan, n, ok := planning(remaining); ok {
		b.Push(plan)
		remaining = remaining.From(n)
	}

	if pd, n, ok := propertyDrawer(remaining); ok {
		b.Push(pd)
		remaining = remaining.From(n)
	}

	if sec, n := section(remaining); sec != nil {
		b.Push(sec)
		remaining = remaining.From(n)
	}

	for {
		childLevel := HeadlineStars(remaining.S)
		if childLevel <= level {
			break
		}
		child, n, ok := headline(remaining)
		if !ok {
			break
		}
		b.Push(child)
		remaining = remaining.From(n)
	}

	consumed := len(i.S) - len(remaining.S)
	return b.Finish(kind.Headline), consumed, true
}

// leadingWS peeks the leading run of spaces/tabs off content,
// returning it as its own Input and writing the remainder back
// through the out pointer.
func leadingWS(content input.Input, out *input.Input) input.Input {
	n := leadingWhitespace(content.S)
	*out = content.From(n)
	return content.Take(n)
}

func takeWord(content input.Input) (word string, after input.Input, ok bool) {
	s := content.S
	end := 0
	for end < len(s) && s[end] != ' ' && s[end] != '\t' {
		end++
	}
	if end == 0 || end == len(s) {
		return "", content, false
	}
	return s[:end], content.From(end), true
}

// splitTrailingTags separates s (which by construction here carries
// no trailing whitespace of its own -- TrimLineEnd already peeled
// that off) into (title, tags), where tags is a ":tag1:tag2:"-shaped
// run at the end of s, preceded by whitespace (or occupying the whole
// line), with every segment alphanumeric plus "_@#%".
func splitTrailingTags(s string) (title, tags string) {
	if !strings.HasSuffix(s, ":") {
		return s, ""
	}

	colons := []int{len(s) - 1}
	j := len(s) - 2
	for j >= 0 {
		segStart := j
		for segStart >= 0 && s[segStart] != ':' {
			segStart--
		}
		if segStart < 0 {
			break
		}
		seg := s[segStart+1 : j+1]
		if seg == "" || !isTagSegment(seg) {
			break
		}
		colons = append(colons, segStart)
		j = segStart - 1
	}
	if len(colons) < 2 {
		return s, ""
	}

	start := colons[len(colons)-1]
	if start > 0 {
		c := s[start-1]
		if c != ' ' && c != '\t' {
			return s, ""
		}
	}
	return s[:start], s[start:]
}

func isTagSegment(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '_' || c == '@' || c == '#' || c == '%' ||
			(c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			continue
		}
		return false
	}
	return true
}

// tagsNode builds a HEADLINE_TAGS node from a ":tag1:tag2:" span,
// tokenizing the colons and segments individually so the literal text
// is preserved exactly.
func tagsNode(i input.Input) green.Element {
	b := combinator.NewBuilder()
	s := i.S
	pos := 0
	for pos < len(s) {
		if s[pos] != ':' {
			break
		}
		b.Token(kind.Colon, i.Slice(pos, pos+1))
		pos++
		start := pos
		for pos < len(s) && s[pos] != ':' {
			pos++
		}
		if pos > start {
			b.Token(kind.Text, i.Slice(start, pos))
		}
	}
	return b.Finish(kind.HeadlineTags)
}

// section parses a maximal element run not starting a new headline
// into a SECTION node, for the body of a headline between its
// planning/property-drawer lines and its first child headline. Returns
// a nil element (and 0) if the run is empty, so callers can skip
// pushing an empty SECTION.
func section(i input.Input) (green.Element, int) {
	rest, elems := Nodes(i, true)
	consumed := len(i.S) - len(rest.S)
	if len(elems) == 0 {
		return nil, 0
	}
	return green.NewNode(kind.Section, elems), consumed
}
