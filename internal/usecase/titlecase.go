package usecase

import (
	"strings"
	"unicode"
)

// titleCase uppercases every letter that follows a non-letter and lowers
// the rest, so "machine learning" becomes "Machine Learning" and "node.js"
// becomes "Node.Js". This is the display convention used everywhere a
// vocabulary term is shown to the user; strings.Title is deprecated and
// golang.org/x/text/cases splits on words, not letter runs.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
