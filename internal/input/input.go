// Package input implements the borrowed-slice input view (component
// C2): the remaining unparsed suffix of the source buffer, paired
// with a pointer to the parse configuration so every recognizer deep
// in the call stack can see the TODO-keyword set and the affiliated
// keyword list without threading them through every signature.
//
// Slicing an Input is O(1): Go string headers already point into the
// same backing array, so Of/Slice/From/Take never copy.
package input

import (
	"github.com/alexispurslane/orgcst/green"
	"github.com/alexispurslane/orgcst/kind"
)

// Config is the subset of parser configuration the recognizers
// consult. It is duplicated here (rather than importing the root org
// package) to avoid an import cycle between the org package and its
// own recognizers.
type Config struct {
	TodoKeywords        []string
	DoneKeywords        []string
	AffiliatedKeywords  []string
}

// IsTodoKeyword reports whether word is a configured TODO-family
// keyword.
func (c *Config) IsTodoKeyword(word string) bool {
	return contains(c.TodoKeywords, word)
}

// IsDoneKeyword reports whether word is a configured DONE-family
// keyword.
func (c *Config) IsDoneKeyword(word string) bool {
	return contains(c.DoneKeywords, word)
}

// IsAffiliatedKeyword reports whether name attaches to the following
// element: either it is in the configured list, or it carries the
// ATTR_ prefix, which is always affiliated regardless of configuration.
func (c *Config) IsAffiliatedKeyword(name string) bool {
	if len(name) >= 5 && name[:5] == "ATTR_" {
		return true
	}
	return contains(c.AffiliatedKeywords, name)
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

// Input is the remaining unparsed suffix of the source, plus the
// configuration in effect for this parse.
type Input struct {
	S string
	C *Config
}

// New wraps a full source string.
func New(s string, c *Config) Input {
	return Input{S: s, C: c}
}

// Of returns a new Input over s carrying the same configuration as i.
// Used whenever a recognizer slices its input.
func (i Input) Of(s string) Input { return Input{S: s, C: i.C} }

// Slice returns the substring [from:to) of i, still carrying i's
// configuration.
func (i Input) Slice(from, to int) Input { return i.Of(i.S[from:to]) }

// From returns the substring [from:] of i.
func (i Input) From(from int) Input { return i.Of(i.S[from:]) }

// Take returns the first n bytes of i.
func (i Input) Take(n int) Input { return i.Of(i.S[:n]) }

func (i Input) Len() int      { return len(i.S) }
func (i Input) IsEmpty() bool { return len(i.S) == 0 }
func (i Input) Bytes() []byte { return []byte(i.S) }

// Token builds a green token of kind k covering the entirety of i.
func (i Input) Token(k kind.Kind) green.Element { return green.NewToken(k, i.S) }

// TextToken is shorthand for Token(kind.Text).
func (i Input) TextToken() green.Element { return green.NewToken(kind.Text, i.S) }

// WSToken is shorthand for Token(kind.Whitespace). The caller is
// responsible for only calling this on runs of spaces/tabs.
func (i Input) WSToken() green.Element { return green.NewToken(kind.Whitespace, i.S) }

// NLToken is shorthand for Token(kind.NewLine).
func (i Input) NLToken() green.Element { return green.NewToken(kind.NewLine, i.S) }
