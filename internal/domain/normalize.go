package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// NormalizeWord prepares lookup input:
//   - trims leading/trailing whitespace (including full-width spaces)
//   - applies Unicode NFC
//   - compresses interior whitespace runs into a single ASCII space
//
// Case is preserved; pinyin and Latin input are looked up as typed.
func NormalizeWord(word string) string {
	word = strings.TrimSpace(word)
	if word == "" {
		return ""
	}
	word = norm.NFC.String(word)

	var b strings.Builder
	b.Grow(len(word))
	prevSpace := false
	for _, r := range word {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteRune(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// IsSingleCharacter reports whether the normalized word is exactly one rune.
func IsSingleCharacter(word string) bool {
	return utf8.RuneCountInString(NormalizeWord(word)) == 1
}
