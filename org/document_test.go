package org

import (
	"io"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertRoundTrip fails with a unified diff if parsing src and writing
// it back out does not reproduce src exactly (invariant I1).
func assertRoundTrip(t *testing.T, src string) {
	t.Helper()
	doc := Parse(src, New())
	require.NoError(t, doc.Err())
	got := doc.ToOrg()
	if got == src {
		return
	}
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(src),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	t.Fatalf("round-trip mismatch:\n%s", diff)
}

func TestRoundTripFixtures(t *testing.T) {
	fixtures := []string{
		"",
		"\n",
		"   \n\n   \n",
		"* Headline\n",
		"* TODO [#A] Write tests :work:urgent:\nDEADLINE: <2026-08-01 Sat>\n:PROPERTIES:\n:CUSTOM_ID: foo\n:END:\n\nSome body text with *bold* and /italic/ and =verbatim=.\n",
		"** Nested\n*** Deeper\nback to section text\n** Sibling\n",
		"#+TITLE: My Document\n#+AUTHOR: Someone\n\nParagraph one.\n\nParagraph two with a [[https://example.com][link]] and a footnote[fn:1].\n\n[fn:1] Footnote body.\n",
		"- item one\n- item two\n  - nested item\n1. ordered one\n2. ordered two\n",
		"| a | b |\n|---+---|\n| 1 | 2 |\n",
		"#+BEGIN_SRC go :tangle out.go\nfunc main() {}\n#+END_SRC\n",
		"CLOCK: [2026-01-01 Thu 09:00]--[2026-01-01 Thu 10:00] =>  1:00\n",
		"-----\n",
		": fixed width line\n",
		"# just a comment\n",
		"\\begin{equation}\nx = y\n\\end{equation}\n",
		"Inline math $x^2$ and \\alpha and a line break\\\\\nnext line.\n",
		"A sub_{script} and a sup^{script}.\n",
		"Run src_python[:exports code]{print(1)} and call_foo(1,2) inline.\n",
	}
	for _, src := range fixtures {
		src := src
		t.Run("", func(t *testing.T) {
			assertRoundTrip(t, src)
		})
	}
}

func TestParseEmptyInput(t *testing.T) {
	doc := Parse("", New())
	require.NoError(t, doc.Err())
	assert.Equal(t, "", doc.ToOrg())
	assert.Empty(t, doc.Root().Children())
}

func TestParseBlankOnlyInput(t *testing.T) {
	src := "\n\n   \n"
	doc := Parse(src, New())
	require.NoError(t, doc.Err())
	assert.Equal(t, src, doc.ToOrg())
}

func TestParseHeadlineWithoutTrailingNewline(t *testing.T) {
	src := "* Last line, no newline"
	doc := Parse(src, New())
	require.NoError(t, doc.Err())
	assert.Equal(t, src, doc.ToOrg())
}

func TestParseIsDeterministic(t *testing.T) {
	src := "* A\n** B\nsome text\n** C\n"
	first := Parse(src, New()).ToOrg()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Parse(src, New()).ToOrg())
	}
}

func TestCRLFPreservedVerbatim(t *testing.T) {
	src := "* Headline\r\nbody line\r\n"
	assertRoundTrip(t, src)
}

func TestSilentSuppressesLogging(t *testing.T) {
	cfg := New().Silent()
	doc := Parse("* H\n", cfg)
	require.NoError(t, doc.Err())
	assert.Equal(t, io.Discard, cfg.Log.Writer())
}
