package phrase

import "strings"

// Pronunciation drill sets: minimal series that vary one dimension of the
// syllable at a time.
var drills = map[string][]string{
	"tone":      {"pab", "paj", "pav", "pas", "pag", "pad", "pam", "pa"},
	"consonant": {"peb", "keb", "teb", "neb", "meb"},
	"vowel":     {"pa", "pe", "pi", "po", "pu"},
}

var flashcards = map[string]map[string]string{
	"food":   {"mov": "rice", "nqaij": "meat", "zaub": "vegetables"},
	"family": {"niam": "mother", "txiv": "father", "tub": "son"},
	"colors": {"dawb": "white", "dub": "black", "liab": "red"},
}

// Drill returns the pronunciation drill of the given kind (tone,
// consonant, vowel), or nil for unknown kinds.
func Drill(kind string) []string {
	d, ok := drills[strings.ToLower(strings.TrimSpace(kind))]
	if !ok {
		return nil
	}
	out := make([]string, len(d))
	copy(out, d)
	return out
}

// Flashcards returns the word-to-gloss flashcard set for a category
// (food, family, colors), or nil for unknown categories.
func Flashcards(category string) map[string]string {
	set, ok := flashcards[strings.ToLower(strings.TrimSpace(category))]
	if !ok {
		return nil
	}
	out := make(map[string]string, len(set))
	for k, v := range set {
		out[k] = v
	}
	return out
}
