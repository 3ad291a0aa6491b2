package object

import (
	"strings"

	"github.com/alexispurslane/orgcst/green"
	"github.com/alexispurslane/orgcst/internal/input"
	"github.com/alexispurslane/orgcst/kind"
)

// trySnippet recognizes an export snippet: "@@name:value@@". value
// may contain anything but "@@" and a newline.
func trySnippet(i input.Input) (green.Element, int, bool) {
	if !strings.HasPrefix(i.S, "@@") {
		return nil, 0, false
	}
	body := i.S[2:]
	colon := strings.IndexByte(body, ':')
	if colon <= 0 {
		return nil, 0, false
	}
	name := body[:colon]
	if !isMacroNameNoDigitStart(name) {
		return nil, 0, false
	}
	rest := body[colon+1:]
	end := strings.Index(rest, "@@")
	if end < 0 {
		return nil, 0, false
	}
	value := rest[:end]
	if strings.ContainsAny(value, "\n") {
		return nil, 0, false
	}

	children := []green.Element{
		green.NewToken(kind.At2, "@@"),
		green.NewToken(kind.Text, name),
		green.NewToken(kind.Colon, ":"),
		green.NewToken(kind.Text, value),
		green.NewToken(kind.At2, "@@"),
	}
	total := 2 + colon + 1 + end + 2
	return green.NewNode(kind.Snippet, children), total, true
}

func isMacroNameNoDigitStart(s string) bool {
	if s == "" || (s[0] >= '0' && s[0] <= '9') {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isMacroNameByte(s[i]) {
			return false
		}
	}
	return true
}

// tryRadioTarget recognizes "<<<name>>>".
func tryRadioTarget(i input.Input) (green.Element, int, bool) {
	if !strings.HasPrefix(i.S, "<<<") {
		return nil, 0, false
	}
	body := i.S[3:]
	end := strings.Index(body, ">>>")
	if end <= 0 {
		return nil, 0, false
	}
	name := body[:end]
	if strings.ContainsAny(name, "\n<>") {
		return nil, 0, false
	}
	children := []green.Element{
		green.NewToken(kind.LAngle3, "<<<"),
		green.NewToken(kind.Text, name),
		green.NewToken(kind.RAngle3, ">>>"),
	}
	return green.NewNode(kind.RadioTarget, children), 3 + end + 3, true
}

// tryTarget recognizes "<<name>>".
func tryTarget(i input.Input) (green.Element, int, bool) {
	if !strings.HasPrefix(i.S, "<<") {
		return nil, 0, false
	}
	body := i.S[2:]
	end := strings.Index(body, ">>")
	if end <= 0 {
		return nil, 0, false
	}
	name := body[:end]
	if strings.ContainsAny(name, "\n<>") {
		return nil, 0, false
	}
	children := []green.Element{
		green.NewToken(kind.LAngle2, "<<"),
		green.NewToken(kind.Text, name),
		green.NewToken(kind.RAngle2, ">>"),
	}
	return green.NewNode(kind.Target, children), 2 + end + 2, true
}
