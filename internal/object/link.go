package object

import (
	"strings"

	"github.com/alexispurslane/orgcst/green"
	"github.com/alexispurslane/orgcst/internal/input"
	"github.com/alexispurslane/orgcst/kind"
)

// tryLink recognizes "[[path]]" or "[[path][description]]". The path
// is stored as a single verbatim LinkPath node around a TEXT token;
// the description, when present, is parsed recursively for inline
// objects since it is ordinary paragraph-like content.
func tryLink(i input.Input) (green.Element, int, bool) {
	if !strings.HasPrefix(i.S, "[[") {
		return nil, 0, false
	}
	rest := i.S[2:]

	pathEnd := strings.IndexByte(rest, ']')
	if pathEnd < 0 || pathEnd == 0 {
		return nil, 0, false
	}
	path := rest[:pathEnd]
	if strings.ContainsAny(path, "\n") {
		return nil, 0, false
	}

	after := rest[pathEnd:]

	children := []green.Element{
		green.NewToken(kind.LBracket2, "[["),
		green.NewNode(kind.LinkPath, []green.Element{green.NewToken(kind.Text, path)}),
	}

	// "]]" immediately: no description.
	if strings.HasPrefix(after, "]]") {
		children = append(children, green.NewToken(kind.RBracket2, "]]"))
		return green.NewNode(kind.Link, children), 2 + pathEnd + 2, true
	}

	// "][" description "]]"
	if !strings.HasPrefix(after, "][") {
		return nil, 0, false
	}
	descBody := after[2:]
	descEnd := strings.Index(descBody, "]]")
	if descEnd < 0 {
		return nil, 0, false
	}
	desc := descBody[:descEnd]
	if strings.Contains(desc, "\n\n") {
		return nil, 0, false
	}

	children = append(children, green.NewToken(kind.LBracket, "]["))
	children = append(children, Nodes(i.Of(desc))...)
	children = append(children, green.NewToken(kind.RBracket2, "]]"))

	total := 2 + pathEnd + 2 + descEnd + 2
	return green.NewNode(kind.Link, children), total, true
}
