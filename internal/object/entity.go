package object

import (
	"strings"

	"github.com/alexispurslane/orgcst/green"
	"github.com/alexispurslane/orgcst/internal/input"
	"github.com/alexispurslane/orgcst/kind"
)

// entityNames is the closed set of LaTeX entity names orgcst
// recognizes directly, the common subset of Org's built-in entities
// table (org-entities.el). Unknown backslash-escapes fall through to
// tryLatexFragment instead.
var entityNames = map[string]bool{
	"alpha": true, "beta": true, "gamma": true, "delta": true,
	"epsilon": true, "zeta": true, "eta": true, "theta": true,
	"iota": true, "kappa": true, "lambda": true, "mu": true,
	"nu": true, "xi": true, "omicron": true, "pi": true,
	"rho": true, "sigma": true, "tau": true, "upsilon": true,
	"phi": true, "chi": true, "psi": true, "omega": true,
	"Gamma": true, "Delta": true, "Theta": true, "Lambda": true,
	"Xi": true, "Pi": true, "Sigma": true, "Upsilon": true,
	"Phi": true, "Psi": true, "Omega": true,
	"dots": true, "ldots": true, "hellip": true, "dagger": true,
	"rarr": true, "larr": true, "uarr": true, "darr": true,
	"rArr": true, "lArr": true, "harr": true, "hArr": true,
	"infty": true, "pm": true, "mp": true, "times": true,
	"frac12": true, "frac14": true, "frac34": true,
	"nbsp": true, "ndash": true, "mdash": true,
	"copy": true, "reg": true, "trade": true, "deg": true,
	"star": true, "bullet": true, "checkmark": true,
}

// longestEntityName returns the longest entity name in entityNames
// that prefixes s, following convention for \alpha vs \al (no
// prefix ambiguity in practice since entity names are distinct
// identifiers, but a longest-match keeps this correct in general).
func longestEntityName(s string) string {
	best := ""
	for i := 1; i <= len(s); i++ {
		if i > 1 && !isMacroNameByte(s[i-1]) {
			break
		}
		candidate := s[:i]
		if entityNames[candidate] && len(candidate) > len(best) {
			best = candidate
		}
	}
	return best
}

// tryEntity recognizes "\name" where name is a known entity, with an
// optional trailing empty-brace terminator "{}" that Org users often
// add to disambiguate the entity from following text.
func tryEntity(i input.Input) (green.Element, int, bool) {
	if len(i.S) < 2 || i.S[0] != '\\' {
		return nil, 0, false
	}
	if strings.HasPrefix(i.S[1:], "begin") {
		return nil, 0, false
	}
	name := longestEntityName(i.S[1:])
	if name == "" {
		return nil, 0, false
	}
	total := 1 + len(name)
	children := []green.Element{
		green.NewToken(kind.Backslash, "\\"),
		green.NewToken(kind.Text, name),
	}
	if strings.HasPrefix(i.S[total:], "{}") {
		children = append(children,
			green.NewToken(kind.LCurly, "{"),
			green.NewToken(kind.RCurly, "}"))
		total += 2
	}
	return green.NewNode(kind.Entity, children), total, true
}
