package object

import (
	"strings"

	"github.com/alexispurslane/orgcst/green"
	"github.com/alexispurslane/orgcst/internal/input"
	"github.com/alexispurslane/orgcst/kind"
)

// tryMacro recognizes "{{{name(args)}}}". args, including its
// parentheses, is stored verbatim in a single MacrosArgument node:
// the argument grammar (comma-separated, backslash-escaped) is a
// consumer concern once the core has handed over the raw text.
func tryMacro(i input.Input) (green.Element, int, bool) {
	if !strings.HasPrefix(i.S, "{{{") {
		return nil, 0, false
	}
	body := i.S[3:]
	end := strings.Index(body, "}}}")
	if end < 0 {
		return nil, 0, false
	}
	content := body[:end]
	if strings.ContainsAny(content, "\n") {
		return nil, 0, false
	}

	nameEnd := 0
	for nameEnd < len(content) && isMacroNameByte(content[nameEnd]) {
		nameEnd++
	}
	if nameEnd == 0 {
		return nil, 0, false
	}
	name := content[:nameEnd]
	argsText := content[nameEnd:]

	children := []green.Element{
		green.NewToken(kind.LCurly3, "{{{"),
		green.NewToken(kind.Text, name),
	}
	if argsText != "" {
		if argsText[0] != '(' || !strings.HasSuffix(argsText, ")") {
			return nil, 0, false
		}
		children = append(children, green.NewNode(kind.MacrosArgument,
			[]green.Element{green.NewToken(kind.Text, argsText)}))
	}
	children = append(children, green.NewToken(kind.RCurly3, "}}}"))

	return green.NewNode(kind.Macros, children), 3 + end + 3, true
}

func isMacroNameByte(c byte) bool {
	return c == '-' || c == '_' ||
		(c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z')
}
