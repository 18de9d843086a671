// Package identifier normalizes link labels to the canonical form used
// for definition matching: `[ Foo\nBAR ]` and `[foo bar]` refer to the
// same definition.
package identifier

import (
	"strings"

	"golang.org/x/text/cases"
)

// Normalize trims ASCII whitespace from both ends, collapses every
// interior run of ASCII whitespace (including line terminators) to a
// single space, and case-folds the result with Unicode case folding.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inRun := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v' {
			inRun = true
			continue
		}
		if inRun && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inRun = false
		b.WriteByte(c)
	}

	// cases.Caser carries internal state, so a fresh one per call
	// rather than a shared package-level instance.
	return cases.Fold().String(b.String())
}
