package object

import (
	"strings"

	"github.com/alexispurslane/orgcst/green"
	"github.com/alexispurslane/orgcst/internal/input"
	"github.com/alexispurslane/orgcst/kind"
)

// tryFootnoteRef recognizes an inline footnote reference: "[fn:label]"
// (reference to a standalone definition), "[fn:label:def]" (inline
// definition with a label), or "[fn::def]" (anonymous inline
// definition). def, when present, is parsed recursively.
func tryFootnoteRef(i input.Input) (green.Element, int, bool) {
	if !strings.HasPrefix(i.S, "[fn:") {
		return nil, 0, false
	}
	body := i.S[4:]

	labelEnd := 0
	for labelEnd < len(body) && isLabelByte(body[labelEnd]) {
		labelEnd++
	}
	label := body[:labelEnd]
	rest := body[labelEnd:]

	children := []green.Element{
		green.NewToken(kind.LBracket, "["),
		green.NewToken(kind.Text, "fn:"),
	}
	if label != "" {
		children = append(children, green.NewToken(kind.Text, label))
	}

	switch {
	case strings.HasPrefix(rest, "]"):
		if label == "" {
			return nil, 0, false
		}
		children = append(children, green.NewToken(kind.RBracket, "]"))
		return green.NewNode(kind.FnRef, children), 4 + labelEnd + 1, true

	case strings.HasPrefix(rest, ":"):
		defBody := rest[1:]
		end := strings.IndexByte(defBody, ']')
		if end < 0 {
			return nil, 0, false
		}
		def := defBody[:end]
		children = append(children, green.NewToken(kind.Colon, ":"))
		children = append(children, Nodes(i.Of(def))...)
		children = append(children, green.NewToken(kind.RBracket, "]"))
		total := 4 + labelEnd + 1 + end + 1
		return green.NewNode(kind.FnRef, children), total, true
	}

	return nil, 0, false
}

func isLabelByte(c byte) bool {
	return c == '-' || c == '_' ||
		(c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z')
}
