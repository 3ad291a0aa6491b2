// Package combinator implements the primitive, lossless recognizers
// shared by every object and element recognizer (component C3):
// fixed-string tokens, blank-line runs, line-end trimming, and
// line-start/line-end iteration. None of these ever consume partially
// on failure -- a recognizer either returns the full match or leaves
// the input untouched, so callers can freely try alternatives.
package combinator

import (
	"strings"

	"github.com/alexispurslane/orgcst/green"
	"github.com/alexispurslane/orgcst/internal/input"
	"github.com/alexispurslane/orgcst/kind"
)

// Literal recognizes the exact string s at the start of i and returns
// a token of kind k plus the remaining input. ok is false, and in is
// returned unchanged, if i does not start with s.
func Literal(i input.Input, s string, k kind.Kind) (rest input.Input, tok green.Element, ok bool) {
	if !strings.HasPrefix(i.S, s) {
		return i, nil, false
	}
	return i.From(len(s)), i.Take(len(s)).Token(k), true
}

// Builder accumulates the children of a node under construction. It
// is the Go analogue of orgize's NodeBuilder: a thin wrapper that
// mostly exists so call sites read as "push this kind of thing"
// rather than manual append calls. It performs no checks: WS does not
// verify that its input is actually whitespace.
type Builder struct {
	children []green.Element
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

// WS appends i as a WHITESPACE token, unless i is empty.
func (b *Builder) WS(i input.Input) {
	if i.IsEmpty() {
		return
	}
	b.children = append(b.children, i.WSToken())
}

// NL appends i as a NEW_LINE token, unless i is empty.
func (b *Builder) NL(i input.Input) {
	if i.IsEmpty() {
		return
	}
	b.children = append(b.children, i.NLToken())
}

// Text appends i as a TEXT token, unless i is empty.
func (b *Builder) Text(i input.Input) {
	if i.IsEmpty() {
		return
	}
	b.children = append(b.children, i.TextToken())
}

// Token appends i as a token of kind k.
func (b *Builder) Token(k kind.Kind, i input.Input) {
	b.children = append(b.children, i.Token(k))
}

// Push appends an already-built element.
func (b *Builder) Push(e green.Element) {
	if e != nil {
		b.children = append(b.children, e)
	}
}

// PushAll appends a slice of already-built elements.
func (b *Builder) PushAll(es []green.Element) {
	b.children = append(b.children, es...)
}

// Len returns the number of children accumulated so far.
func (b *Builder) Len() int { return len(b.children) }

// Finish builds a node of kind k from the accumulated children.
func (b *Builder) Finish(k kind.Kind) green.Element {
	return green.NewNode(k, b.children)
}

// BlankLines consumes every consecutive line at the start of i whose
// content is only spaces/tabs up to and including its terminator,
// emitting one BLANK_LINE token per line. It always succeeds,
// possibly with zero lines.
func BlankLines(i input.Input) (rest input.Input, lines []green.Element) {
	if i.IsEmpty() {
		return i, nil
	}

	start := 0
	bytes := i.Bytes()

	for _, end := range LineEnds(i.S) {
		if start == end {
			break
		}
		allBlank := true
		for _, c := range bytes[start:end] {
			if !isASCIIWhitespace(c) {
				allBlank = false
				break
			}
		}
		if !allBlank {
			break
		}
		lines = append(lines, green.NewToken(kind.BlankLine, i.S[start:end]))
		start = end
	}

	return i.From(start), lines
}

// TrimLineEnd splits the remainder of the current line into its
// content, trailing whitespace, and line terminator. It accepts "\n",
// "\r\n", "\r", and end-of-input as terminators, and always succeeds.
func TrimLineEnd(i input.Input) (rest, content, trailingWS, terminator input.Input) {
	idx := strings.IndexAny(i.S, "\r\n")

	var lineEnd, termEnd int
	switch {
	case idx < 0:
		lineEnd, termEnd = len(i.S), len(i.S)
	case i.S[idx] == '\r' && idx+1 < len(i.S) && i.S[idx+1] == '\n':
		lineEnd, termEnd = idx, idx+2
	default:
		lineEnd, termEnd = idx, idx+1
	}

	rest = i.From(termEnd)
	terminator = i.Slice(lineEnd, termEnd)

	line := i.Slice(0, lineEnd)
	wsStart := len(line.S)
	for wsStart > 0 && isASCIIWhitespace(line.S[wsStart-1]) {
		wsStart--
	}
	content = line.Slice(0, wsStart)
	trailingWS = line.From(wsStart)

	return rest, content, trailingWS, terminator
}

// EOLOrEOF recognizes a single line terminator or end-of-input,
// consuming zero, one, or two bytes.
func EOLOrEOF(i input.Input) (rest input.Input, consumed input.Input, ok bool) {
	switch {
	case i.IsEmpty():
		return i, i.Take(0), true
	case i.S[0] == '\n':
		return i.From(1), i.Take(1), true
	case i.S[0] == '\r':
		if len(i.S) > 1 && i.S[1] == '\n' {
			return i.From(2), i.Take(2), true
		}
		return i.From(1), i.Take(1), true
	default:
		return i, input.Input{}, false
	}
}

// LineStarts returns the byte offsets of every line start in s,
// including zero.
func LineStarts(s string) []int {
	starts := []int{0}
	starts = append(starts, lineBreaks(s)...)
	// drop a trailing break that coincides with end-of-string so we
	// don't report a phantom empty final line twice.
	if len(starts) > 1 && starts[len(starts)-1] == len(s) {
		starts = starts[:len(starts)-1]
	}
	return starts
}

// LineEnds returns the byte offsets of every line end in s, including
// len(s) for the final (possibly unterminated) line.
func LineEnds(s string) []int {
	ends := lineBreaks(s)
	if len(ends) == 0 || ends[len(ends)-1] != len(s) {
		ends = append(ends, len(s))
	}
	return ends
}

// lineBreaks returns the offset just past each line terminator in s,
// treating "\r\n" as one terminator.
func lineBreaks(s string) []int {
	var offs []int
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			offs = append(offs, i+1)
		case '\r':
			if i+1 < len(s) && s[i+1] == '\n' {
				offs = append(offs, i+2)
				i++
			} else {
				offs = append(offs, i+1)
			}
		}
	}
	return offs
}

func isASCIIWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f' || b == '\v'
}
