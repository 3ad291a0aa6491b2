package object

import (
	"strings"

	"github.com/alexispurslane/orgcst/green"
	"github.com/alexispurslane/orgcst/internal/input"
	"github.com/alexispurslane/orgcst/kind"
)

// tryTimestamp recognizes an active "<...>" or inactive "[...]"
// timestamp, including the diary form "<%%(sexp)>". want must be
// TimestampActive or TimestampInactive; it picks the bracket pair and
// node kind.
func tryTimestamp(i input.Input, want kind.Kind) (green.Element, int, bool) {
	var open, close byte
	var openTok, closeTok kind.Kind
	switch want {
	case kind.TimestampActive:
		open, close = '<', '>'
		openTok, closeTok = kind.LAngle, kind.RAngle
	case kind.TimestampInactive:
		open, close = '[', ']'
		openTok, closeTok = kind.LBracket, kind.RBracket
	default:
		return nil, 0, false
	}
	if len(i.S) == 0 || i.S[0] != open {
		return nil, 0, false
	}
	body := i.S[1:]
	end := strings.IndexByte(body, close)
	if end < 0 {
		return nil, 0, false
	}
	content := body[:end]
	if strings.ContainsAny(content, "\n") {
		return nil, 0, false
	}

	total := 1 + end + 1
	openEl := green.NewToken(openTok, i.S[0:1])
	closeEl := green.NewToken(closeTok, i.S[end+1:end+2])

	if want == kind.TimestampActive && strings.HasPrefix(content, "%%") {
		diaryText := green.NewToken(kind.Text, content)
		return green.NewNode(kind.TimestampDiary, []green.Element{openEl, diaryText, closeEl}), total, true
	}

	fields, ok := parseTimestampBody(content)
	if !ok {
		return nil, 0, false
	}

	children := append([]green.Element{openEl}, fields...)
	children = append(children, closeEl)
	return green.NewNode(want, children), total, true
}

// parseTimestampBody parses "YYYY-MM-DD DAYNAME HH:MM-HH:MM +1w" (time
// and repeater/warning optional) into a sequence of sub-tokens. The
// repeater/warning suffix, if present, is kept as one opaque TEXT
// token per spec.md §9(b) -- its normalization is a consumer concern.
func parseTimestampBody(s string) ([]green.Element, bool) {
	// date: YYYY-MM-DD
	if len(s) < 10 {
		return nil, false
	}
	year, month, day := s[0:4], s[5:7], s[8:10]
	if s[4] != '-' || s[7] != '-' || !isDigits(year) || !isDigits(month) || !isDigits(day) {
		return nil, false
	}
	var out []green.Element
	out = append(out,
		green.NewToken(kind.TimestampYear, year),
		green.NewToken(kind.Text, "-"),
		green.NewToken(kind.TimestampMonth, month),
		green.NewToken(kind.Text, "-"),
		green.NewToken(kind.TimestampDay, day),
	)
	rest := s[10:]

	// optional " DAYNAME": a run of non-digit, non-space, non-delimiter
	// characters after a single space.
	if strings.HasPrefix(rest, " ") {
		after := rest[1:]
		dn := 0
		for dn < len(after) && isDaynameByte(after[dn]) {
			dn++
		}
		if dn > 0 {
			out = append(out, green.NewToken(kind.Whitespace, " "), green.NewToken(kind.TimestampDayname, after[:dn]))
			rest = after[dn:]
		}
	}

	// optional " HH:MM" or " HH:MM-HH:MM"
	if strings.HasPrefix(rest, " ") && len(rest) >= 6 && isDigits(rest[1:3]) && rest[3] == ':' && isDigits(rest[4:6]) {
		out = append(out,
			green.NewToken(kind.Whitespace, " "),
			green.NewToken(kind.TimestampHour, rest[1:3]),
			green.NewToken(kind.Text, ":"),
			green.NewToken(kind.TimestampMinute, rest[4:6]),
		)
		rest = rest[6:]
		if strings.HasPrefix(rest, "-") && len(rest) >= 6 && isDigits(rest[1:3]) && rest[3] == ':' && isDigits(rest[4:6]) {
			out = append(out,
				green.NewToken(kind.Minus, "-"),
				green.NewToken(kind.TimestampHour, rest[1:3]),
				green.NewToken(kind.Text, ":"),
				green.NewToken(kind.TimestampMinute, rest[4:6]),
			)
			rest = rest[6:]
		}
	}

	// anything left (repeater/warning, leading space included) is
	// opaque text.
	if rest != "" {
		out = append(out, green.NewToken(kind.Text, rest))
	}

	return out, true
}

func isDaynameByte(c byte) bool {
	if c >= '0' && c <= '9' {
		return false
	}
	return c != ' ' && c != '+' && c != '-' && c != '\n'
}
