package grammar

import "strings"

// Substitute replaces whole tokens equal to target with replacement.
// Matching is exact per token; partial matches inside a token are left
// alone.
func Substitute(sentence, target, replacement string) string {
	words := strings.Fields(sentence)
	for i, w := range words {
		if w == target {
			words[i] = replacement
		}
	}
	return strings.Join(words, " ")
}
