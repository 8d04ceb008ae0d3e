package phonology

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Normalize standardizes spacing and casing of Hmong text: whitespace runs
// collapse to single spaces, every token is lower-cased, and the first
// token is capitalized (sentence-initial convention, not proper-noun
// detection). Normalize is idempotent.
func Normalize(text string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	words[0] = capitalize(words[0])
	for i := 1; i < len(words); i++ {
		words[i] = strings.ToLower(words[i])
	}
	return strings.Join(words, " ")
}

// Tokenize splits text into syllable-candidate tokens on whitespace
// boundaries only. Run-together compounds are not separated.
func Tokenize(text string) []string {
	return strings.Fields(text)
}

// CountSyllables counts whitespace-delimited tokens in text.
func CountSyllables(text string) int {
	return len(Tokenize(text))
}

// CountValidSyllables counts the tokens of text that decompose into
// well-formed RPA syllables.
func CountValidSyllables(text string) int {
	n := 0
	for _, tok := range Tokenize(text) {
		if IsValidSyllable(tok) {
			n++
		}
	}
	return n
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(word string) string {
	w := strings.ToLower(word)
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError {
		return w
	}
	return string(unicode.ToUpper(r)) + w[size:]
}
