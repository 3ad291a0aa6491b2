package object

import (
	"strings"

	"github.com/alexispurslane/orgcst/green"
	"github.com/alexispurslane/orgcst/internal/input"
	"github.com/alexispurslane/orgcst/kind"
)

// tryCookie recognizes a statistics cookie: "[n/m]" or "[p%]", where
// n, m, p may each be empty (Org allows a bare "[/]" or "[%]" as a
// placeholder the user fills in later).
func tryCookie(i input.Input) (green.Element, int, bool) {
	if len(i.S) < 3 || i.S[0] != '[' {
		return nil, 0, false
	}
	body := i.S[1:]
	end := strings.IndexByte(body, ']')
	if end < 0 {
		return nil, 0, false
	}
	content := body[:end]
	if !isCookieBody(content) {
		return nil, 0, false
	}

	text := green.NewToken(kind.Text, content)
	children := []green.Element{
		green.NewToken(kind.LBracket, "["),
		text,
		green.NewToken(kind.RBracket, "]"),
	}
	return green.NewNode(kind.Cookie, children), end + 2, true
}

func isCookieBody(s string) bool {
	if s == "" {
		return false
	}
	if strings.HasSuffix(s, "%") {
		return isDigits(s[:len(s)-1])
	}
	if idx := strings.IndexByte(s, '/'); idx >= 0 {
		return isDigits(s[:idx]) && isDigits(s[idx+1:])
	}
	return false
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
