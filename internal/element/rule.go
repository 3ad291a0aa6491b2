package element

import (
	"strings"

	"github.com/alexispurslane/orgcst/green"
	"github.com/alexispurslane/orgcst/internal/combinator"
	"github.com/alexispurslane/orgcst/internal/input"
	"github.com/alexispurslane/orgcst/kind"
)

// ruleLen reports the length, in the given line (terminator
// excluded), of a run of five or more '-' characters and nothing
// else, or ok=false if line is not such a run.
func ruleLen(line string) (int, bool) {
	trimmed := strings.TrimRight(strings.TrimRight(strings.TrimSuffix(line, "\n"), "\r"), " \t")
	if len(trimmed) < 5 {
		return 0, false
	}
	for i := 0; i < len(trimmed); i++ {
		if trimmed[i] != '-' {
			return 0, false
		}
	}
	return len(trimmed), true
}

func rule(i input.Input, dashLen int) (green.Element, int, bool) {
	_, content, trailingWS, terminator := combinator.TrimLineEnd(i)
	if len(content.S) != dashLen {
		return nil, 0, false
	}
	b := combinator.NewBuilder()
	b.Token(kind.Minus2, content.Take(2))
	if dashLen > 2 {
		b.Token(kind.Text, content.From(2))
	}
	b.WS(trailingWS)
	if !terminator.IsEmpty() {
		b.NL(terminator)
	}
	return b.Finish(kind.Rule), len(content.S) + len(trailingWS.S) + len(terminator.S), true
}
