package object

import (
	"strings"

	"github.com/alexispurslane/orgcst/green"
	"github.com/alexispurslane/orgcst/internal/input"
	"github.com/alexispurslane/orgcst/kind"
)

// tryInlineSrc recognizes "src_LANG[OPTIONS]{BODY}" (OPTIONS
// optional). LANG is stored as a SOURCE_BLOCK_LANG token; OPTIONS and
// BODY are each stored as raw TEXT -- they are opaque to this module's
// grammar, consistent with source blocks at the element level.
func tryInlineSrc(i input.Input) (green.Element, int, bool) {
	if !strings.HasPrefix(i.S, "src_") {
		return nil, 0, false
	}
	rest := i.S[4:]
	langEnd := 0
	for langEnd < len(rest) && isMacroNameByte(rest[langEnd]) {
		langEnd++
	}
	if langEnd == 0 {
		return nil, 0, false
	}
	lang := rest[:langEnd]
	rest = rest[langEnd:]
	consumed := 4 + langEnd

	children := []green.Element{
		green.NewToken(kind.Text, "src_"),
		green.NewToken(kind.SourceBlockLang, lang),
	}

	if strings.HasPrefix(rest, "[") {
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return nil, 0, false
		}
		opts := rest[1:end]
		if strings.ContainsAny(opts, "\n{}") {
			return nil, 0, false
		}
		children = append(children,
			green.NewToken(kind.LBracket, "["),
			green.NewToken(kind.Text, opts),
			green.NewToken(kind.RBracket, "]"))
		rest = rest[end+1:]
		consumed += end + 1
	}

	if !strings.HasPrefix(rest, "{") {
		return nil, 0, false
	}
	end := strings.IndexByte(rest, '}')
	if end < 0 {
		return nil, 0, false
	}
	body := rest[1:end]
	if strings.Contains(body, "\n") {
		return nil, 0, false
	}
	children = append(children,
		green.NewToken(kind.LCurly, "{"),
		green.NewToken(kind.Text, body),
		green.NewToken(kind.RCurly, "}"))
	consumed += end + 1

	return green.NewNode(kind.InlineSrc, children), consumed, true
}

// tryInlineCall recognizes "call_NAME[inside-header](args)[end-header]",
// with both header clauses optional, as a single opaque expression
// save for NAME.
func tryInlineCall(i input.Input) (green.Element, int, bool) {
	if !strings.HasPrefix(i.S, "call_") {
		return nil, 0, false
	}
	rest := i.S[5:]
	nameEnd := 0
	for nameEnd < len(rest) && isMacroNameByte(rest[nameEnd]) {
		nameEnd++
	}
	if nameEnd == 0 {
		return nil, 0, false
	}
	name := rest[:nameEnd]
	rest = rest[nameEnd:]
	consumed := 5 + nameEnd

	children := []green.Element{
		green.NewToken(kind.Text, "call_"),
		green.NewToken(kind.Text, name),
	}

	if strings.HasPrefix(rest, "[") {
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return nil, 0, false
		}
		children = append(children, green.NewToken(kind.Text, rest[:end+1]))
		rest = rest[end+1:]
		consumed += end + 1
	}

	if !strings.HasPrefix(rest, "(") {
		return nil, 0, false
	}
	end := strings.IndexByte(rest, ')')
	if end < 0 {
		return nil, 0, false
	}
	args := rest[:end+1]
	if strings.Contains(args, "\n") {
		return nil, 0, false
	}
	children = append(children, green.NewToken(kind.Text, args))
	rest = rest[end+1:]
	consumed += end + 1

	if strings.HasPrefix(rest, "[") {
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return nil, 0, false
		}
		children = append(children, green.NewToken(kind.Text, rest[:end+1]))
		consumed += end + 1
	}

	return green.NewNode(kind.InlineCall, children), consumed, true
}

// trySubSup recognizes "_{...}"/"^{...}" (subscript/superscript with
// braced content) or the brace-less form "_simple"/"^simple" where
// simple is an optional sign followed by a run of alphanumerics. The
// caller has already verified the preceding byte makes this position
// valid (object.Nodes checks validSubSupPre before dispatching '^', and
// object.Node checks it before falling back from underline to
// subscript for '_'). marker
// is '_' or '^'; the node kind and marker token kind follow from it.
func trySubSup(i input.Input, marker byte) (green.Element, int, bool) {
	if len(i.S) < 2 || i.S[0] != marker {
		return nil, 0, false
	}

	nodeKind := kind.Subscript
	markerTok := kind.Underscore
	if marker == '^' {
		nodeKind = kind.Superscript
		markerTok = kind.Caret
	}

	body := i.S[1:]

	if body[0] == '{' {
		end := strings.IndexByte(body, '}')
		if end < 0 {
			return nil, 0, false
		}
		content := body[1:end]
		if strings.Contains(content, "\n") {
			return nil, 0, false
		}
		children := []green.Element{
			green.NewToken(markerTok, i.S[0:1]),
			green.NewToken(kind.LCurly, "{"),
			green.NewToken(kind.Text, content),
			green.NewToken(kind.RCurly, "}"),
		}
		return green.NewNode(nodeKind, children), 1 + end + 1, true
	}

	n := 0
	if body[n] == '+' || body[n] == '-' {
		n++
	}
	simpleStart := n
	for n < len(body) && isMacroNameByte(body[n]) {
		n++
	}
	if n == simpleStart {
		return nil, 0, false
	}
	children := []green.Element{
		green.NewToken(markerTok, i.S[0:1]),
		green.NewToken(kind.Text, body[:n]),
	}
	return green.NewNode(nodeKind, children), 1 + n, true
}
