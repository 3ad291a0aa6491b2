package element

import (
	"strings"

	"github.com/alexispurslane/orgcst/green"
	"github.com/alexispurslane/orgcst/internal/input"
	"github.com/alexispurslane/orgcst/kind"
)

// latexEnvironment recognizes "\begin{NAME} ... \end{NAME}" at the
// element level, NAME being alphanumerics plus '*', matched literally
// (case-sensitively, unlike block names).
func latexEnvironment(i input.Input) (green.Element, int, bool) {
	if !strings.HasPrefix(i.S, `\begin{`) {
		return nil, 0, false
	}
	rest := i.S[len(`\begin{`):]
	nameEnd := strings.IndexByte(rest, '}')
	if nameEnd < 0 {
		return nil, 0, false
	}
	name := rest[:nameEnd]
	if name == "" || !isLatexEnvName(name) {
		return nil, 0, false
	}

	endMarker := `\end{` + name + `}`
	bodyStart := len(`\begin{`) + nameEnd + 1
	idx := strings.Index(i.S[bodyStart:], endMarker)
	if idx < 0 {
		return nil, 0, false
	}

	total := bodyStart + idx + len(endMarker)
	// extend to include the rest of the \end line's terminator, if any.
	if total < len(i.S) {
		lineEnd := indexLineEnd(i.S, total)
		rest := i.S[total:lineEnd]
		if strings.TrimRight(strings.TrimSuffix(rest, "\n"), "\r") == "" {
			total = lineEnd
		}
	}

	text := i.S[:total]
	return green.NewNode(kind.LatexEnvironment, []green.Element{green.NewToken(kind.Text, text)}), total, true
}

func isLatexEnvName(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '*' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			continue
		}
		return false
	}
	return true
}
