// Package ast implements the typed view layer (component C9): newtype
// wrappers over syntax cursors that restrict operations to those
// valid for a given kind. Constructing a view is a cheap downcast
// that fails if the underlying cursor's kind doesn't match; it never
// copies the tree.
package ast

import (
	"strconv"
	"strings"

	"github.com/alexispurslane/orgcst/kind"
	"github.com/alexispurslane/orgcst/syntax"
)

// Document wraps a DOCUMENT cursor.
type Document struct{ n *syntax.Node }

// NewDocument casts n to a Document view, or returns ok=false if n is
// not a DOCUMENT node.
func NewDocument(n *syntax.Node) (Document, bool) {
	if n.Kind() != kind.Document {
		return Document{}, false
	}
	return Document{n}, true
}

func (d Document) Node() *syntax.Node { return d.n }

// PreBlank counts the BLANK_LINE tokens at the very start of the
// document, before any section or headline content.
func (d Document) PreBlank() int {
	count := 0
	for _, el := range d.n.ChildrenWithTokens() {
		tok, ok := el.(syntax.Token)
		if !ok || tok.Kind() != kind.BlankLine {
			break
		}
		count++
	}
	return count
}

// Headlines returns the document's top-level headline forest, in
// order.
func (d Document) Headlines() []Headline {
	var out []Headline
	for _, c := range d.n.Children() {
		if h, ok := NewHeadline(c); ok {
			out = append(out, h)
		}
	}
	return out
}

// TodoType classifies a headline keyword as belonging to the TODO or
// DONE family.
type TodoType int

const (
	NoTodo TodoType = iota
	Todo
	Done
)

// Headline wraps a HEADLINE cursor.
type Headline struct{ n *syntax.Node }

func NewHeadline(n *syntax.Node) (Headline, bool) {
	if n.Kind() != kind.Headline {
		return Headline{}, false
	}
	return Headline{n}, true
}

func (h Headline) Node() *syntax.Node { return h.n }

// Level is the headline's star count.
func (h Headline) Level() int {
	for _, el := range h.n.ChildrenWithTokens() {
		if tok, ok := el.(syntax.Token); ok && tok.Kind() == kind.HeadlineStars {
			return len(tok.Text())
		}
	}
	return 0
}

// TodoKeyword returns the literal TODO/DONE-family keyword text, or
// "" if the headline has none.
func (h Headline) TodoKeyword() string {
	for _, el := range h.n.ChildrenWithTokens() {
		if tok, ok := el.(syntax.Token); ok {
			if tok.Kind() == kind.HeadlineKeywordTodo || tok.Kind() == kind.HeadlineKeywordDone {
				return tok.Text()
			}
		}
	}
	return ""
}

// TodoTypeOf classifies TodoKeyword() without needing the caller to
// inspect token kinds directly.
func (h Headline) TodoTypeOf() TodoType {
	for _, el := range h.n.ChildrenWithTokens() {
		if tok, ok := el.(syntax.Token); ok {
			switch tok.Kind() {
			case kind.HeadlineKeywordTodo:
				return Todo
			case kind.HeadlineKeywordDone:
				return Done
			}
		}
	}
	return NoTodo
}

// Priority returns the single priority letter ('A'-'Z'), or 0 if
// absent.
func (h Headline) Priority() byte {
	for _, el := range h.n.ChildrenWithTokens() {
		if tok, ok := el.(syntax.Token); ok && tok.Kind() == kind.HeadlinePriority {
			t := tok.Text()
			if len(t) == 4 {
				return t[2]
			}
		}
	}
	return 0
}

// Title returns the elements (nodes and tokens) of the headline's
// title, i.e. the children of its HEADLINE_TITLE node, or nil if the
// headline has no title.
func (h Headline) Title() []syntax.Element {
	for _, c := range h.n.Children() {
		if c.Kind() == kind.HeadlineTitle {
			return c.ChildrenWithTokens()
		}
	}
	return nil
}

// TitleText concatenates the title's source text.
func (h Headline) TitleText() string {
	for _, c := range h.n.Children() {
		if c.Kind() == kind.HeadlineTitle {
			return c.Text()
		}
	}
	return ""
}

// Tags returns the headline's tag names (without the surrounding
// colons).
func (h Headline) Tags() []string {
	for _, c := range h.n.Children() {
		if c.Kind() != kind.HeadlineTags {
			continue
		}
		var tags []string
		for _, el := range c.ChildrenWithTokens() {
			if tok, ok := el.(syntax.Token); ok && tok.Kind() == kind.Text {
				tags = append(tags, tok.Text())
			}
		}
		return tags
	}
	return nil
}

// IsCommented reports whether the title begins with "COMMENT ".
func (h Headline) IsCommented() bool {
	return strings.HasPrefix(h.TitleText(), "COMMENT ")
}

// IsArchived reports whether the headline carries the ARCHIVE tag.
func (h Headline) IsArchived() bool {
	for _, t := range h.Tags() {
		if t == "ARCHIVE" {
			return true
		}
	}
	return false
}

func (h Headline) planning() (Planning, bool) {
	for _, c := range h.n.Children() {
		if p, ok := NewPlanning(c); ok {
			return p, true
		}
	}
	return Planning{}, false
}

func (h Headline) Deadline() (Timestamp, bool) {
	if p, ok := h.planning(); ok {
		return p.Deadline()
	}
	return Timestamp{}, false
}

func (h Headline) Scheduled() (Timestamp, bool) {
	if p, ok := h.planning(); ok {
		return p.Scheduled()
	}
	return Timestamp{}, false
}

func (h Headline) Closed() (Timestamp, bool) {
	if p, ok := h.planning(); ok {
		return p.Closed()
	}
	return Timestamp{}, false
}

// Section returns the headline's own section (the content before its
// first child headline), if any.
func (h Headline) Section() (*syntax.Node, bool) {
	for _, c := range h.n.Children() {
		if c.Kind() == kind.Section {
			return c, true
		}
	}
	return nil, false
}

// Children returns the headlines nested directly inside h.
func (h Headline) Children() []Headline {
	var out []Headline
	for _, c := range h.n.Children() {
		if ch, ok := NewHeadline(c); ok {
			out = append(out, ch)
		}
	}
	return out
}

// Planning wraps a PLANNING cursor.
type Planning struct{ n *syntax.Node }

func NewPlanning(n *syntax.Node) (Planning, bool) {
	if n.Kind() != kind.Planning {
		return Planning{}, false
	}
	return Planning{n}, true
}

func (p Planning) planningKind(k kind.Kind) (Timestamp, bool) {
	for _, c := range p.n.Children() {
		if c.Kind() != k {
			continue
		}
		for _, gc := range c.Children() {
			if ts, ok := NewTimestamp(gc); ok {
				return ts, true
			}
		}
	}
	return Timestamp{}, false
}

func (p Planning) Deadline() (Timestamp, bool)  { return p.planningKind(kind.PlanningDeadline) }
func (p Planning) Scheduled() (Timestamp, bool) { return p.planningKind(kind.PlanningScheduled) }
func (p Planning) Closed() (Timestamp, bool)    { return p.planningKind(kind.PlanningClosed) }

// Timestamp wraps a TIMESTAMP_ACTIVE/INACTIVE/DIARY cursor.
type Timestamp struct{ n *syntax.Node }

func NewTimestamp(n *syntax.Node) (Timestamp, bool) {
	switch n.Kind() {
	case kind.TimestampActive, kind.TimestampInactive, kind.TimestampDiary:
		return Timestamp{n}, true
	}
	return Timestamp{}, false
}

func (t Timestamp) tokenText(k kind.Kind, nth int) (string, bool) {
	seen := 0
	for _, el := range t.n.ChildrenWithTokens() {
		tok, ok := el.(syntax.Token)
		if !ok || tok.Kind() != k {
			continue
		}
		if seen == nth {
			return tok.Text(), true
		}
		seen++
	}
	return "", false
}

func (t Timestamp) YearStart() (int, bool)  { return atoiOk(t.tokenText(kind.TimestampYear, 0)) }
func (t Timestamp) MonthStart() (int, bool) { return atoiOk(t.tokenText(kind.TimestampMonth, 0)) }
func (t Timestamp) DayStart() (int, bool)   { return atoiOk(t.tokenText(kind.TimestampDay, 0)) }
func (t Timestamp) HourStart() (int, bool)  { return atoiOk(t.tokenText(kind.TimestampHour, 0)) }
func (t Timestamp) MinuteStart() (int, bool) {
	return atoiOk(t.tokenText(kind.TimestampMinute, 0))
}
func (t Timestamp) HourEnd() (int, bool)   { return atoiOk(t.tokenText(kind.TimestampHour, 1)) }
func (t Timestamp) MinuteEnd() (int, bool) { return atoiOk(t.tokenText(kind.TimestampMinute, 1)) }

func atoiOk(s string, ok bool) (int, bool) {
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

// Keyword wraps a KEYWORD or AFFILIATED_KEYWORD cursor.
type Keyword struct{ n *syntax.Node }

func NewKeyword(n *syntax.Node) (Keyword, bool) {
	if n.Kind() != kind.Keyword && n.Kind() != kind.AffiliatedKeyword {
		return Keyword{}, false
	}
	return Keyword{n}, true
}

// Key returns the "#+KEY" portion's name (without the leading "#+" or
// any bracketed optional argument).
func (k Keyword) Key() string {
	text := k.n.Text()
	if !strings.HasPrefix(text, "#+") {
		return ""
	}
	rest := text[2:]
	end := 0
	for end < len(rest) && rest[end] != ':' && rest[end] != '[' {
		end++
	}
	return rest[:end]
}

// Optional returns the bracketed argument after the key, if any.
func (k Keyword) Optional() (string, bool) {
	text := k.n.Text()
	start := 2 + len(k.Key())
	if !strings.HasPrefix(text, "#+") || start >= len(text) || text[start] != '[' {
		return "", false
	}
	end := strings.IndexByte(text[start:], ']')
	if end < 0 {
		return "", false
	}
	return text[start+1 : start+end], true
}

// Value returns everything after the header's colon, trimmed only of
// its trailing line terminator. Leading whitespace is part of the
// value verbatim -- this grammar does not normalize it away.
func (k Keyword) Value() string {
	text := k.n.Text()
	colon := strings.IndexByte(text, ':')
	if colon < 0 {
		return ""
	}
	v := text[colon+1:]
	v = strings.TrimRight(v, "\r\n")
	return v
}

// Link wraps a LINK cursor.
type Link struct{ n *syntax.Node }

func NewLink(n *syntax.Node) (Link, bool) {
	if n.Kind() != kind.Link {
		return Link{}, false
	}
	return Link{n}, true
}

func (l Link) Path() string {
	for _, c := range l.n.Children() {
		if c.Kind() == kind.LinkPath {
			return c.Text()
		}
	}
	return ""
}

// SourceBlock wraps a SOURCE_BLOCK cursor.
type SourceBlock struct{ n *syntax.Node }

func NewSourceBlock(n *syntax.Node) (SourceBlock, bool) {
	if n.Kind() != kind.SourceBlock {
		return SourceBlock{}, false
	}
	return SourceBlock{n}, true
}

// argLine returns the BLOCK_BEGIN header text with the
// "#+BEGIN_SRC" prefix (case preserved) stripped.
func (s SourceBlock) argLine() string {
	for _, c := range s.n.Children() {
		if c.Kind() == kind.BlockBegin {
			text := c.Text()
			if idx := strings.IndexByte(text, '\n'); idx >= 0 {
				text = text[:idx]
			}
			text = strings.TrimRight(text, "\r")
			if len(text) >= len("#+BEGIN_SRC") {
				return strings.TrimSpace(text[len("#+BEGIN_SRC"):])
			}
			return ""
		}
	}
	return ""
}

// Language is the first whitespace-delimited word of the argument
// line.
func (s SourceBlock) Language() string {
	arg := s.argLine()
	fields := strings.Fields(arg)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// headerArg reads a ":key value" pair from the argument line.
func (s SourceBlock) headerArg(key string) (string, bool) {
	fields := strings.Fields(s.argLine())
	for i := 0; i < len(fields); i++ {
		if fields[i] == key && i+1 < len(fields) {
			return fields[i+1], true
		}
	}
	return "", false
}

func (s SourceBlock) Tangle() (string, bool)     { return s.headerArg(":tangle") }
func (s SourceBlock) Mkdir() (string, bool)      { return s.headerArg(":mkdir") }
func (s SourceBlock) Comments() (string, bool)   { return s.headerArg(":comments") }
func (s SourceBlock) Padline() (string, bool)    { return s.headerArg(":padline") }
func (s SourceBlock) TangleMode() (string, bool) { return s.headerArg(":tangle-mode") }

// Content returns the block's verbatim body text (between BEGIN and
// END, exclusive).
func (s SourceBlock) Content() string {
	for _, c := range s.n.Children() {
		if c.Kind() == kind.BlockContent {
			return c.Text()
		}
	}
	return ""
}

// OrgTable wraps an ORG_TABLE cursor.
type OrgTable struct{ n *syntax.Node }

func NewOrgTable(n *syntax.Node) (OrgTable, bool) {
	if n.Kind() != kind.OrgTable {
		return OrgTable{}, false
	}
	return OrgTable{n}, true
}

// Rows returns the table's rule and standard rows, in order.
func (t OrgTable) Rows() []*syntax.Node {
	var out []*syntax.Node
	for _, c := range t.n.Children() {
		if c.Kind() == kind.OrgTableRuleRow || c.Kind() == kind.OrgTableStandardRow {
			out = append(out, c)
		}
	}
	return out
}

// HasHeader reports whether the table's second row is a rule row
// (Org's convention for marking the first row as a header).
func (t OrgTable) HasHeader() bool {
	rows := t.Rows()
	return len(rows) >= 2 && rows[1].Kind() == kind.OrgTableRuleRow
}

// PostBlank counts the BLANK_LINE tokens at the end of the table node.
// The element recognizers emit blank lines after a table beside the
// ORG_TABLE node rather than inside it, so for a parsed table this is 0.
func (t OrgTable) PostBlank() int {
	children := t.n.ChildrenWithTokens()
	count := 0
	for i := len(children) - 1; i >= 0; i-- {
		tok, ok := children[i].(syntax.Token)
		if !ok || tok.Kind() != kind.BlankLine {
			break
		}
		count++
	}
	return count
}
