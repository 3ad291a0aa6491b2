package element

import (
	"strings"

	"github.com/alexispurslane/orgcst/green"
	"github.com/alexispurslane/orgcst/internal/combinator"
	"github.com/alexispurslane/orgcst/internal/input"
	"github.com/alexispurslane/orgcst/internal/object"
	"github.com/alexispurslane/orgcst/kind"
)

var planningKeywords = map[string]kind.Kind{
	"DEADLINE":  kind.PlanningDeadline,
	"SCHEDULED": kind.PlanningScheduled,
	"CLOSED":    kind.PlanningClosed,
}

// planning recognizes one line of space-separated
// "KEYWORD: <timestamp>" pairs, each keyword appearing at most once,
// in any order.
func planning(i input.Input) (green.Element, int, bool) {
	_, content, trailingWS, terminator := combinator.TrimLineEnd(i)

	rest := content
	seen := map[string]bool{}
	b := combinator.NewBuilder()
	matchedAny := false

	for {
		lead := leadingWhitespace(rest.S)
		trial := rest.From(lead)
		word, after, ok := takeColonWord(trial.S)
		if !ok || planningKeywords[word] == 0 || seen[word] {
			break
		}
		after2 := strings.TrimLeft(after, " \t")
		ts, n, ok := firstTimestamp(trial.Of(after2))
		if !ok {
			break
		}
		seen[word] = true
		matchedAny = true

		if lead > 0 {
			b.WS(rest.Take(lead))
		}
		wsAfterColon := len(after) - len(after2)
		sub := combinator.NewBuilder()
		sub.Token(kind.Text, trial.Take(len(word)))
		sub.Token(kind.Colon, trial.Slice(len(word), len(word)+1))
		if wsAfterColon > 0 {
			sub.WS(trial.Slice(len(word)+1, len(word)+1+wsAfterColon))
		}
		sub.Push(ts)
		b.Push(sub.Finish(planningKeywords[word]))

		consumedInTrial := len(word) + 1 + wsAfterColon + n
		rest = trial.From(consumedInTrial)
	}

	if !matchedAny {
		return nil, 0, false
	}

	if rest.Len() > 0 {
		// any leftover on the line is preserved losslessly as text
		// rather than silently dropped.
		b.Text(rest)
	}
	b.WS(trailingWS)
	if !terminator.IsEmpty() {
		b.NL(terminator)
	}

	// content, trailingWS and terminator partition the whole line, and
	// rest's leftover text was folded into the builder above, so the
	// planning element consumes exactly one line.
	return b.Finish(kind.Planning), len(content.S) + len(trailingWS.S) + len(terminator.S), true
}

func takeColonWord(s string) (word string, after string, ok bool) {
	end := 0
	for end < len(s) && s[end] != ':' && s[end] != ' ' && s[end] != '\t' {
		end++
	}
	if end == 0 || end >= len(s) || s[end] != ':' {
		return "", s, false
	}
	return s[:end], s[end+1:], true
}

// firstTimestamp recognizes exactly one active or inactive timestamp
// at the start of i, returning the built node and bytes consumed.
func firstTimestamp(i input.Input) (green.Element, int, bool) {
	elems := object.Nodes(i)
	if len(elems) == 0 {
		return nil, 0, false
	}
	k := elems[0].Kind()
	if k != kind.TimestampActive && k != kind.TimestampInactive {
		return nil, 0, false
	}
	return elems[0], elems[0].Len(), true
}
