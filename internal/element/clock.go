package element

import (
	"strings"

	"github.com/alexispurslane/orgcst/green"
	"github.com/alexispurslane/orgcst/internal/combinator"
	"github.com/alexispurslane/orgcst/internal/input"
	"github.com/alexispurslane/orgcst/internal/object"
	"github.com/alexispurslane/orgcst/kind"
)

// clock recognizes "CLOCK: <inactive-timestamp>( => H:MM)?". The
// duration suffix, when present, is stored as an opaque TEXT token
// after the DOUBLE_ARROW marker rather than parsed into hours/minutes
// -- doing so would normalize the value, which this module's
// Non-goals forbid (SPEC_FULL.md §4.4).
func clock(i input.Input) (green.Element, int, bool) {
	if !strings.HasPrefix(i.S, "CLOCK:") {
		return nil, 0, false
	}
	_, content, trailingWS, terminator := combinator.TrimLineEnd(i)

	rest := content.From(len("CLOCK:"))
	lead := leadingWhitespace(rest.S)
	ws1 := rest.Take(lead)
	rest = rest.From(lead)

	elems := object.Nodes(rest)
	if len(elems) == 0 || (elems[0].Kind() != kind.TimestampInactive && elems[0].Kind() != kind.TimestampActive) {
		return nil, 0, false
	}
	ts := elems[0]
	tsLen := ts.Len()
	afterTS := rest.From(tsLen)

	b := combinator.NewBuilder()
	b.Token(kind.Text, content.Take(len("CLOCK:")))
	b.WS(ws1)
	b.Push(ts)

	if strings.HasPrefix(afterTS.S, " =>") {
		lead2 := leadingWhitespace(afterTS.S)
		b.WS(afterTS.Take(lead2))
		afterWS := afterTS.From(lead2)
		b.Token(kind.DoubleArrow, afterWS.Take(2))
		durationRest := afterWS.From(2)
		b.Text(durationRest)
	} else if afterTS.Len() > 0 {
		b.Text(afterTS)
	}

	b.WS(trailingWS)
	if !terminator.IsEmpty() {
		b.NL(terminator)
	}

	total := len(content.S) + len(trailingWS.S) + len(terminator.S)
	return b.Finish(kind.Clock), total, true
}
