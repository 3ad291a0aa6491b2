package object

import (
	"strings"

	"github.com/alexispurslane/orgcst/green"
	"github.com/alexispurslane/orgcst/internal/input"
	"github.com/alexispurslane/orgcst/kind"
)

// tryLineBreak recognizes Org's explicit line break: two backslashes,
// optionally followed by a bracketed vertical-spacing argument
// ("\\[2mm]" in LaTeX-export terms), which must be the last thing on
// the line (only trailing spaces/tabs may follow before the line
// terminator or end-of-input).
func tryLineBreak(i input.Input) (green.Element, int, bool) {
	if !strings.HasPrefix(i.S, `\\`) {
		return nil, 0, false
	}
	children := []green.Element{green.NewToken(kind.Backslash, `\\`)}
	n := 2

	rest := i.S[2:]
	if strings.HasPrefix(rest, "[") {
		end := strings.IndexByte(rest, ']')
		if end > 0 && !strings.ContainsAny(rest[:end], "\n") {
			children = append(children, green.NewToken(kind.Text, rest[:end+1]))
			n += end + 1
			rest = rest[end+1:]
		}
	}

	trail := 0
	for trail < len(rest) && (rest[trail] == ' ' || rest[trail] == '\t') {
		trail++
	}
	if trail < len(rest) && rest[trail] != '\n' && rest[trail] != '\r' {
		return nil, 0, false
	}

	return green.NewNode(kind.LineBreak, children), n, true
}

// tryLatexFragment recognizes the two backslash-delimited inline math
// forms, "\(...\)" and "\[...\]". The environment form
// ("\begin{NAME}...\end{NAME}") is block-level and lives in
// internal/element; tryEntity rejects "\begin", and this recognizer
// then returns ok=false for it because only "\(" and "\[" match here.
func tryLatexFragment(i input.Input) (green.Element, int, bool) {
	if len(i.S) < 2 || i.S[0] != '\\' {
		return nil, 0, false
	}

	var closer string
	switch i.S[1] {
	case '(':
		closer = `\)`
	case '[':
		closer = `\]`
	default:
		return nil, 0, false
	}

	body := i.S[2:]
	end := strings.Index(body, closer)
	if end < 0 {
		return nil, 0, false
	}
	content := body[:end]

	children := []green.Element{
		green.NewToken(kind.Backslash, i.S[0:2]),
		green.NewToken(kind.Text, content),
		green.NewToken(kind.Backslash, closer),
	}
	return green.NewNode(kind.LatexEnvironment, children), 2 + end + 2, true
}

// tryLatexDollar recognizes "$...$" and "$$...$$" inline math. The
// single-dollar form additionally requires the content not start or
// end with whitespace and not span a blank line, matching Org's
// reference implementation's stricter rule for the single-dollar
// marker (to avoid false positives on e.g. "costs $5 and $10").
func tryLatexDollar(i input.Input) (green.Element, int, bool) {
	if strings.HasPrefix(i.S, "$$") {
		body := i.S[2:]
		end := strings.Index(body, "$$")
		if end <= 0 {
			return nil, 0, false
		}
		content := body[:end]
		if strings.Contains(content, "\n\n") {
			return nil, 0, false
		}
		children := []green.Element{
			green.NewToken(kind.Dollar2, "$$"),
			green.NewToken(kind.Text, content),
			green.NewToken(kind.Dollar2, "$$"),
		}
		return green.NewNode(kind.LatexEnvironment, children), 2 + end + 2, true
	}

	if len(i.S) < 2 {
		return nil, 0, false
	}
	body := i.S[1:]
	if body[0] == ' ' || body[0] == '\t' || body[0] == '\n' || body[0] == '$' {
		return nil, 0, false
	}
	end := strings.IndexByte(body, '$')
	if end <= 0 {
		return nil, 0, false
	}
	content := body[:end]
	if strings.Contains(content, "\n\n") {
		return nil, 0, false
	}
	if c := content[len(content)-1]; c == ' ' || c == '\t' || c == '\n' {
		return nil, 0, false
	}

	children := []green.Element{
		green.NewToken(kind.Dollar, "$"),
		green.NewToken(kind.Text, content),
		green.NewToken(kind.Dollar, "$"),
	}
	return green.NewNode(kind.LatexEnvironment, children), 1 + end + 1, true
}
