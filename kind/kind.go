// Package kind enumerates the closed set of syntax tags used by every
// layer of the tree: tokens produced by the combinators, and nodes
// produced by the object and element recognizers.
//
// The set is closed and ordered; consumers outside this module must
// not rely on the numeric values being stable across releases, only on
// their names.
package kind

// Kind tags a green node or green token. It is the only thing a node
// carries besides its children (or, for a token, its text).
type Kind uint16

const (
	// Bad is the zero value and never appears in a well-formed tree;
	// it exists so an unset Kind is easy to spot in tests.
	Bad Kind = iota

	//
	// token kinds
	//
	LBracket    // [
	RBracket    // ]
	LBracket2   // [[
	RBracket2   // ]]
	LParen      // (
	RParen      // )
	LAngle      // <
	RAngle      // >
	LCurly      // {
	RCurly      // }
	LCurly3     // {{{
	RCurly3     // }}}
	LAngle2     // <<
	RAngle2     // >>
	LAngle3     // <<<
	RAngle3     // >>>
	At          // @
	At2         // @@
	Percent     // %
	Percent2    // %%
	Slash       // /
	Underscore  // _
	Star        // *
	Plus        // +
	Minus       // -
	Minus2      // --
	Colon       // :
	Colon2      // ::
	Equal       // =
	Tilde       // ~
	Hash        // #
	HashPlus    // #+
	DoubleArrow // =>
	Pipe        // |
	Comma       // ,
	Backslash   // \
	Dollar      // $
	Dollar2     // $$
	Caret       // ^
	NewLine     // \n, \r\n or \r
	Whitespace  // run of spaces/tabs
	BlankLine   // a whole blank line, terminator included
	Text        // anything else: the catch-all lossless leftover

	//
	// structural nodes
	//
	Document
	Section
	Paragraph

	Headline
	HeadlineStars
	HeadlineKeywordTodo
	HeadlineKeywordDone
	HeadlinePriority
	HeadlineTitle
	HeadlineTags

	PropertyDrawer
	NodeProperty
	Planning
	PlanningDeadline
	PlanningScheduled
	PlanningClosed

	//
	// elements
	//
	OrgTable
	OrgTableRuleRow
	OrgTableStandardRow
	OrgTableCell
	TableEl

	List
	ListItem
	ListItemIndent
	ListItemBullet
	ListItemCounter
	ListItemCheckbox
	ListItemTag
	ListItemContent

	Drawer
	DrawerBegin
	DrawerEnd

	Keyword
	BabelCall
	AffiliatedKeyword

	Clock
	FnDef
	Comment
	Rule
	FixedWidth

	DynBlock
	DynBlockBegin
	DynBlockEnd

	SpecialBlock
	QuoteBlock
	CenterBlock
	VerseBlock
	CommentBlock
	ExampleBlock
	ExportBlock
	SourceBlock
	SourceBlockLang
	BlockBegin
	BlockEnd
	BlockContent

	LatexEnvironment

	//
	// objects
	//
	InlineCall
	InlineSrc
	Link
	LinkPath
	Cookie
	RadioTarget
	FnRef
	Macros
	MacrosArgument
	Snippet
	Target
	Entity

	Bold
	Strike
	Italic
	Underline
	Verbatim
	Code

	TimestampActive
	TimestampInactive
	TimestampDiary
	TimestampYear
	TimestampMonth
	TimestampDay
	TimestampHour
	TimestampMinute
	TimestampDayname

	Superscript
	Subscript
	LineBreak

	// kindSentinel marks the end of the enumeration; it is never used
	// as a real Kind.
	kindSentinel
)

var names = [...]string{
	Bad:                 "BAD",
	LBracket:            "L_BRACKET",
	RBracket:            "R_BRACKET",
	LBracket2:           "L_BRACKET2",
	RBracket2:           "R_BRACKET2",
	LParen:              "L_PAREN",
	RParen:              "R_PAREN",
	LAngle:              "L_ANGLE",
	RAngle:              "R_ANGLE",
	LCurly:              "L_CURLY",
	RCurly:              "R_CURLY",
	LCurly3:             "L_CURLY3",
	RCurly3:             "R_CURLY3",
	LAngle2:             "L_ANGLE2",
	RAngle2:             "R_ANGLE2",
	LAngle3:             "L_ANGLE3",
	RAngle3:             "R_ANGLE3",
	At:                  "AT",
	At2:                 "AT2",
	Percent:             "PERCENT",
	Percent2:            "PERCENT2",
	Slash:               "SLASH",
	Underscore:          "UNDERSCORE",
	Star:                "STAR",
	Plus:                "PLUS",
	Minus:               "MINUS",
	Minus2:              "MINUS2",
	Colon:               "COLON",
	Colon2:              "COLON2",
	Equal:               "EQUAL",
	Tilde:               "TILDE",
	Hash:                "HASH",
	HashPlus:            "HASH_PLUS",
	DoubleArrow:         "DOUBLE_ARROW",
	Pipe:                "PIPE",
	Comma:               "COMMA",
	Backslash:           "BACKSLASH",
	Dollar:              "DOLLAR",
	Dollar2:             "DOLLAR2",
	Caret:               "CARET",
	NewLine:             "NEW_LINE",
	Whitespace:          "WHITESPACE",
	BlankLine:           "BLANK_LINE",
	Text:                "TEXT",
	Document:            "DOCUMENT",
	Section:             "SECTION",
	Paragraph:           "PARAGRAPH",
	Headline:            "HEADLINE",
	HeadlineStars:       "HEADLINE_STARS",
	HeadlineKeywordTodo: "HEADLINE_KEYWORD_TODO",
	HeadlineKeywordDone: "HEADLINE_KEYWORD_DONE",
	HeadlinePriority:    "HEADLINE_PRIORITY",
	HeadlineTitle:       "HEADLINE_TITLE",
	HeadlineTags:        "HEADLINE_TAGS",
	PropertyDrawer:      "PROPERTY_DRAWER",
	NodeProperty:        "NODE_PROPERTY",
	Planning:            "PLANNING",
	PlanningDeadline:    "PLANNING_DEADLINE",
	PlanningScheduled:   "PLANNING_SCHEDULED",
	PlanningClosed:      "PLANNING_CLOSED",
	OrgTable:            "ORG_TABLE",
	OrgTableRuleRow:     "ORG_TABLE_RULE_ROW",
	OrgTableStandardRow: "ORG_TABLE_STANDARD_ROW",
	OrgTableCell:        "ORG_TABLE_CELL",
	TableEl:             "TABLE_EL",
	List:                "LIST",
	ListItem:            "LIST_ITEM",
	ListItemIndent:      "LIST_ITEM_INDENT",
	ListItemBullet:      "LIST_ITEM_BULLET",
	ListItemCounter:     "LIST_ITEM_COUNTER",
	ListItemCheckbox:    "LIST_ITEM_CHECK_BOX",
	ListItemTag:         "LIST_ITEM_TAG",
	ListItemContent:     "LIST_ITEM_CONTENT",
	Drawer:              "DRAWER",
	DrawerBegin:         "DRAWER_BEGIN",
	DrawerEnd:           "DRAWER_END",
	Keyword:             "KEYWORD",
	BabelCall:           "BABEL_CALL",
	AffiliatedKeyword:   "AFFILIATED_KEYWORD",
	Clock:               "CLOCK",
	FnDef:               "FN_DEF",
	Comment:             "COMMENT",
	Rule:                "RULE",
	FixedWidth:          "FIXED_WIDTH",
	DynBlock:            "DYN_BLOCK",
	DynBlockBegin:       "DYN_BLOCK_BEGIN",
	DynBlockEnd:         "DYN_BLOCK_END",
	SpecialBlock:        "SPECIAL_BLOCK",
	QuoteBlock:          "QUOTE_BLOCK",
	CenterBlock:         "CENTER_BLOCK",
	VerseBlock:          "VERSE_BLOCK",
	CommentBlock:        "COMMENT_BLOCK",
	ExampleBlock:        "EXAMPLE_BLOCK",
	ExportBlock:         "EXPORT_BLOCK",
	SourceBlock:         "SOURCE_BLOCK",
	SourceBlockLang:     "SOURCE_BLOCK_LANG",
	BlockBegin:          "BLOCK_BEGIN",
	BlockEnd:            "BLOCK_END",
	BlockContent:        "BLOCK_CONTENT",
	LatexEnvironment:    "LATEX_ENVIRONMENT",
	InlineCall:          "INLINE_CALL",
	InlineSrc:           "INLINE_SRC",
	Link:                "LINK",
	LinkPath:            "LINK_PATH",
	Cookie:              "COOKIE",
	RadioTarget:         "RADIO_TARGET",
	FnRef:               "FN_REF",
	Macros:              "MACROS",
	MacrosArgument:      "MACROS_ARGUMENT",
	Snippet:             "SNIPPET",
	Target:              "TARGET",
	Entity:              "ENTITY",
	Bold:                "BOLD",
	Strike:              "STRIKE",
	Italic:              "ITALIC",
	Underline:           "UNDERLINE",
	Verbatim:            "VERBATIM",
	Code:                "CODE",
	TimestampActive:     "TIMESTAMP_ACTIVE",
	TimestampInactive:   "TIMESTAMP_INACTIVE",
	TimestampDiary:      "TIMESTAMP_DIARY",
	TimestampYear:       "TIMESTAMP_YEAR",
	TimestampMonth:      "TIMESTAMP_MONTH",
	TimestampDay:        "TIMESTAMP_DAY",
	TimestampHour:       "TIMESTAMP_HOUR",
	TimestampMinute:     "TIMESTAMP_MINUTE",
	TimestampDayname:    "TIMESTAMP_DAYNAME",
	Superscript:         "SUPERSCRIPT",
	Subscript:           "SUBSCRIPT",
	LineBreak:           "LINE_BREAK",
}

// String returns the canonical, upper-snake-case name of k.
func (k Kind) String() string {
	if int(k) < len(names) && names[k] != "" {
		return names[k]
	}
	return "UNKNOWN_KIND"
}

// IsToken reports whether k belongs to the token block declared before
// Document. Some kinds declared after Document (HeadlineStars, the
// timestamp parts, SourceBlockLang and others) are also emitted as
// tokens; IsToken reports false for them.
func (k Kind) IsToken() bool {
	return k < Document
}

// containerKinds are the node kinds whose traversal emits a matched
// Enter/Leave pair rather than a single event. Everything else that
// isn't a token is a "leaf node" (single event).
var containerKinds = map[Kind]bool{
	Document:            true,
	Section:              true,
	Paragraph:            true,
	Headline:             true,
	HeadlineTitle:        true,
	PropertyDrawer:       true,
	Planning:             true,
	OrgTable:             true,
	OrgTableStandardRow:  true,
	OrgTableCell:         true,
	List:                 true,
	ListItem:             true,
	Drawer:               true,
	DynBlock:             true,
	SpecialBlock:         true,
	QuoteBlock:           true,
	CenterBlock:          true,
	VerseBlock:           true,
	CommentBlock:         true,
	ExampleBlock:         true,
	ExportBlock:          true,
	SourceBlock:          true,
	LatexEnvironment:     true,
	Link:                 true,
	Macros:               true,
	Bold:                 true,
	Strike:               true,
	Italic:               true,
	Underline:            true,
	FnRef:                true,
	FnDef:                true,
	InlineCall:           true,
	InlineSrc:            true,
	TimestampActive:      true,
	TimestampInactive:    true,
	TimestampDiary:       true,
}

// IsContainer reports whether k's traversal events are a matched
// Enter/Leave pair (see traverse.Event).
func (k Kind) IsContainer() bool {
	return containerKinds[k]
}
