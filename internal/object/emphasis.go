package object

import (
	"strings"

	"github.com/alexispurslane/orgcst/green"
	"github.com/alexispurslane/orgcst/internal/input"
	"github.com/alexispurslane/orgcst/kind"
)

// preChars are the bytes allowed immediately before an opening
// emphasis marker (start-of-input counts as satisfying this too).
const preChars = " \t-({\\\"\n"

// postChars are the bytes allowed immediately after a closing emphasis
// marker (end-of-input counts as satisfying this too). spec.md §9(c)
// fixes this as the union of the two sets the original reference
// implementation uses in different contexts.
const postChars = " \t\n-.,;:!?')}[\r"

func validPre(before string) bool {
	if len(before) == 0 {
		return true
	}
	return strings.IndexByte(preChars, before[len(before)-1]) >= 0
}

func validPost(s string, idx int) bool {
	if idx >= len(s) {
		return true
	}
	return strings.IndexByte(postChars, s[idx]) >= 0
}

// markerKind maps a marker byte to its token kind, for the single
// opening/closing token each emphasis node carries.
func markerKind(m byte) kind.Kind {
	switch m {
	case '*':
		return kind.Star
	case '/':
		return kind.Slash
	case '_':
		return kind.Underscore
	case '+':
		return kind.Plus
	case '=':
		return kind.Equal
	case '~':
		return kind.Tilde
	}
	return kind.Bad
}

// findCloser scans body (the bytes after the opening marker) for the
// first valid closing occurrence of marker, honoring the pre/post
// character contract and the at-most-one-blank-line content limit. It
// returns the byte offset of the closing marker within body, or -1.
func findCloser(body string, marker byte) int {
	newlines := 0
	for idx := 0; idx < len(body); idx++ {
		c := body[idx]
		if c == '\n' {
			newlines++
			if newlines > 1 {
				return -1
			}
			continue
		}
		if c != marker {
			continue
		}
		if idx == 0 {
			// marker immediately after opening marker: empty content,
			// never valid (I3: no empty required children).
			continue
		}
		prev := body[idx-1]
		if prev == ' ' || prev == '\t' || prev == '\n' {
			continue
		}
		if !validPost(body, idx+1) {
			continue
		}
		return idx
	}
	return -1
}

// tryEmphasis recognizes one of the four recursive emphasis forms
// (bold, italic, underline, strike). Content between the markers is
// parsed recursively as inline objects.
func tryEmphasis(i input.Input, before string, marker byte, k kind.Kind) (green.Element, int, bool) {
	if !validPre(before) {
		return nil, 0, false
	}
	if len(i.S) < 2 {
		return nil, 0, false
	}
	// opening marker must be followed by non-whitespace.
	if c := i.S[1]; c == ' ' || c == '\t' || c == '\n' {
		return nil, 0, false
	}

	body := i.S[1:]
	closeIdx := findCloser(body, marker)
	if closeIdx < 0 {
		return nil, 0, false
	}

	content := body[:closeIdx]
	total := 1 + closeIdx + 1

	open := green.NewToken(markerKind(marker), i.S[0:1])
	close_ := green.NewToken(markerKind(marker), i.S[closeIdx+1:closeIdx+2])

	children := []green.Element{open}
	children = append(children, Nodes(i.Of(content))...)
	children = append(children, close_)

	return green.NewNode(k, children), total, true
}

// tryVerbatimLike recognizes verbatim (=) and code (~): same marker
// contract as tryEmphasis, but the content is a single flat TEXT token
// with no recursive object parsing.
func tryVerbatimLike(i input.Input, before string, marker byte, k kind.Kind) (green.Element, int, bool) {
	if !validPre(before) {
		return nil, 0, false
	}
	if len(i.S) < 2 {
		return nil, 0, false
	}
	if c := i.S[1]; c == ' ' || c == '\t' || c == '\n' {
		return nil, 0, false
	}

	body := i.S[1:]
	closeIdx := findCloser(body, marker)
	if closeIdx < 0 {
		return nil, 0, false
	}

	total := 1 + closeIdx + 1
	open := green.NewToken(markerKind(marker), i.S[0:1])
	close_ := green.NewToken(markerKind(marker), i.S[closeIdx+1:closeIdx+2])
	content := green.NewToken(kind.Text, body[:closeIdx])

	return green.NewNode(k, []green.Element{open, content, close_}), total, true
}
