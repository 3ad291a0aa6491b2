package element

import (
	"strings"

	"github.com/alexispurslane/orgcst/green"
	"github.com/alexispurslane/orgcst/internal/combinator"
	"github.com/alexispurslane/orgcst/internal/input"
	"github.com/alexispurslane/orgcst/kind"
)

var greaterBlockKinds = map[string]kind.Kind{
	"SPECIAL": kind.SpecialBlock,
	"QUOTE":   kind.QuoteBlock,
	"CENTER":  kind.CenterBlock,
	"VERSE":   kind.VerseBlock,
}

var lesserBlockKinds = map[string]kind.Kind{
	"COMMENT": kind.CommentBlock,
	"EXAMPLE": kind.ExampleBlock,
	"EXPORT":  kind.ExportBlock,
	"SRC":     kind.SourceBlock,
}

// greaterOrLesserBlock recognizes "#+BEGIN_NAME[ args]" ...
// "#+END_NAME", name matched case-insensitively. Greater-block
// contents (special/quote/center/verse) are parsed recursively as
// elements; lesser-block contents (comment/example/export/source) are
// stored verbatim as TEXT, except that lines beginning ",*" or ",#+"
// have their leading comma split into its own COMMA token (Org's
// escaping convention), preserving the comma on round-trip while
// still marking it as distinct from the line's real content.
func greaterOrLesserBlock(i input.Input) (green.Element, int, bool) {
	if !strings.HasPrefix(i.S, "#+BEGIN_") && !strings.HasPrefix(i.S, "#+begin_") &&
		!strings.HasPrefix(i.S, "#+Begin_") {
		return nil, 0, false
	}

	_, headerContent, headerWS, headerNL := combinator.TrimLineEnd(i)
	header := headerContent.S[len("#+BEGIN_"):]
	nameEnd := 0
	for nameEnd < len(header) && isDrawerName(header[nameEnd:nameEnd+1]) {
		nameEnd++
	}
	if nameEnd == 0 {
		return nil, 0, false
	}
	name := header[:nameEnd]
	upperName := strings.ToUpper(name)
	args := header[nameEnd:]

	greaterKind, isGreater := greaterBlockKinds[upperName]
	lesserKind, isLesser := lesserBlockKinds[upperName]
	if !isGreater && !isLesser {
		return nil, 0, false
	}

	endMarker := "#+END_" + name
	rest := i.From(len(headerContent.S) + len(headerWS.S) + len(headerNL.S))
	bodyEnd, endLineStart, endLineLen, ok := findBlockEnd(rest.S, endMarker)
	if !ok {
		return nil, 0, false
	}

	bBegin := combinator.NewBuilder()
	bBegin.Token(kind.Text, headerContent.Take(len("#+BEGIN_")+nameEnd))
	if args != "" {
		bBegin.Token(kind.Text, headerContent.From(len("#+BEGIN_")+nameEnd))
	}
	bBegin.WS(headerWS)
	if !headerNL.IsEmpty() {
		bBegin.NL(headerNL)
	}
	begin := bBegin.Finish(kind.BlockBegin)

	body := rest.Take(bodyEnd)
	var contentElems []green.Element
	if isGreater {
		_, contentElems = Nodes(body, false)
	} else {
		contentElems = lesserBlockContent(body)
	}

	endLineInput := rest.Slice(endLineStart, endLineStart+endLineLen)
	end := green.NewNode(kind.BlockEnd, []green.Element{green.NewToken(kind.Text, endLineInput.S)})

	var blockChildren []green.Element
	blockChildren = append(blockChildren, begin)
	if isGreater {
		blockChildren = append(blockChildren, contentElems...)
	} else {
		blockChildren = append(blockChildren, green.NewNode(kind.BlockContent, contentElems))
	}
	blockChildren = append(blockChildren, end)

	total := len(headerContent.S) + len(headerWS.S) + len(headerNL.S) + endLineStart + endLineLen

	k := greaterKind
	if isLesser {
		k = lesserKind
	}

	return green.NewNode(k, blockChildren), total, true
}

func lesserBlockContent(body input.Input) []green.Element {
	var out []green.Element
	s := body.S
	off := 0
	for off < len(s) {
		lineEnd := indexLineEnd(s, off)
		line := s[off:lineEnd]
		if strings.HasPrefix(line, ",*") || strings.HasPrefix(line, ",#+") {
			out = append(out, green.NewToken(kind.Comma, s[off:off+1]))
			out = append(out, green.NewToken(kind.Text, s[off+1:lineEnd]))
		} else {
			out = append(out, green.NewToken(kind.Text, line))
		}
		off = lineEnd
	}
	return out
}

// findBlockEnd locates a line consisting only of endMarker (case
// insensitive) possibly followed by trailing whitespace, in s. It
// returns the offset of that line (= content length preceding it),
// the same offset again as endLineStart, and the end line's own
// length including its terminator.
func findBlockEnd(s, endMarker string) (bodyEnd, endLineStart, endLineLen int, ok bool) {
	off := 0
	for off < len(s) {
		lineEnd := indexLineEnd(s, off)
		line := strings.TrimRight(strings.TrimSuffix(s[off:lineEnd], "\n"), "\r")
		trimmed := strings.TrimRight(line, " \t")
		if strings.EqualFold(trimmed, endMarker) {
			return off, off, lineEnd - off, true
		}
		off = lineEnd
	}
	return 0, 0, 0, false
}

// dynBlock recognizes "#+BEGIN: name [args]" ... "#+END:", contents
// parsed recursively as elements.
func dynBlock(i input.Input) (green.Element, int, bool) {
	if !strings.HasPrefix(strings.ToUpper(i.S), "#+BEGIN:") {
		return nil, 0, false
	}
	_, headerContent, headerWS, headerNL := combinator.TrimLineEnd(i)

	rest := i.From(len(headerContent.S) + len(headerWS.S) + len(headerNL.S))
	bodyEnd, endLineStart, endLineLen, ok := findBlockEnd(rest.S, "#+END:")
	if !ok {
		return nil, 0, false
	}

	bBegin := combinator.NewBuilder()
	bBegin.Token(kind.Text, headerContent)
	bBegin.WS(headerWS)
	bBegin.NL(headerNL)
	begin := bBegin.Finish(kind.DynBlockBegin)

	body := rest.Take(bodyEnd)
	_, contentElems := Nodes(body, false)

	endLineInput := rest.Slice(endLineStart, endLineStart+endLineLen)
	end := green.NewNode(kind.DynBlockEnd, []green.Element{green.NewToken(kind.Text, endLineInput.S)})

	children := append([]green.Element{begin}, contentElems...)
	children = append(children, end)

	total := len(headerContent.S) + len(headerWS.S) + len(headerNL.S) + endLineStart + endLineLen
	return green.NewNode(kind.DynBlock, children), total, true
}
